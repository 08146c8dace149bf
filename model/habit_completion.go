package model

import "time"

// HabitCompletion records one habit done on one calendar date. XpEarned is a
// snapshot of the XP awarded at completion time and is never recomputed.
type HabitCompletion struct {
	ID            int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	HabitID       int64     `gorm:"not null;uniqueIndex:idx_habit_completed_date;constraint:OnDelete:CASCADE;" json:"habit_id"`
	UserID        int64     `gorm:"not null;index;constraint:OnDelete:CASCADE;" json:"user_id"`
	CompletedDate time.Time `gorm:"type:date;not null;uniqueIndex:idx_habit_completed_date" json:"completed_date"`
	XpEarned      int       `gorm:"not null;default:0" json:"xp_earned"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (HabitCompletion) TableName() string {
	return "habit_completions"
}
