package model

import "time"

const (
	ScheduleDaily        ScheduleType = "DAILY"
	ScheduleWeekly       ScheduleType = "WEEKLY"
	ScheduleSpecificDays ScheduleType = "SPECIFIC_DAYS"
)

type ScheduleType string

type Habit struct {
	ID           int64        `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID       int64        `gorm:"not null;index;constraint:OnDelete:CASCADE;" json:"user_id"`
	Title        string       `gorm:"type:varchar(255);not null" json:"title"`
	Description  string       `gorm:"type:text" json:"description"`
	Difficulty   Difficulty   `gorm:"type:varchar(20);not null;default:'MEDIUM';check:difficulty IN ('EASY', 'MEDIUM', 'HARD', 'VERY_HARD')" json:"difficulty"`
	ScheduleType ScheduleType `gorm:"type:varchar(20);not null;default:'DAILY';check:schedule_type IN ('DAILY', 'WEEKLY', 'SPECIFIC_DAYS')" json:"schedule_type"`

	// Weekday flags are consulted only when ScheduleType is SPECIFIC_DAYS.
	IsOnMonday    bool `gorm:"not null;default:true" json:"is_on_monday"`
	IsOnTuesday   bool `gorm:"not null;default:true" json:"is_on_tuesday"`
	IsOnWednesday bool `gorm:"not null;default:true" json:"is_on_wednesday"`
	IsOnThursday  bool `gorm:"not null;default:true" json:"is_on_thursday"`
	IsOnFriday    bool `gorm:"not null;default:true" json:"is_on_friday"`
	IsOnSaturday  bool `gorm:"not null;default:true" json:"is_on_saturday"`
	IsOnSunday    bool `gorm:"not null;default:true" json:"is_on_sunday"`

	CurrentStreak     int        `gorm:"not null;default:0" json:"current_streak"`
	LastCompletedDate *time.Time `gorm:"type:date" json:"last_completed_date"`
	IsActive          bool       `gorm:"not null;default:true" json:"is_active"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Completions []HabitCompletion `gorm:"foreignKey:HabitID;constraint:OnDelete:CASCADE;" json:"completions,omitempty"`
}

func (Habit) TableName() string {
	return "habits"
}

// IsOnWeekday returns the schedule flag for the given weekday.
func (h *Habit) IsOnWeekday(day time.Weekday) bool {
	switch day {
	case time.Monday:
		return h.IsOnMonday
	case time.Tuesday:
		return h.IsOnTuesday
	case time.Wednesday:
		return h.IsOnWednesday
	case time.Thursday:
		return h.IsOnThursday
	case time.Friday:
		return h.IsOnFriday
	case time.Saturday:
		return h.IsOnSaturday
	case time.Sunday:
		return h.IsOnSunday
	default:
		return false
	}
}
