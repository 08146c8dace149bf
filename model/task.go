package model

import "time"

const (
	DifficultyEasy     Difficulty = "EASY"
	DifficultyMedium   Difficulty = "MEDIUM"
	DifficultyHard     Difficulty = "HARD"
	DifficultyVeryHard Difficulty = "VERY_HARD"
)

type Difficulty string

type Task struct {
	ID          int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      int64      `gorm:"not null;index;constraint:OnDelete:CASCADE;" json:"user_id"`
	Title       string     `gorm:"type:varchar(255);not null" json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	Difficulty  Difficulty `gorm:"type:varchar(20);not null;default:'MEDIUM';check:difficulty IN ('EASY', 'MEDIUM', 'HARD', 'VERY_HARD')" json:"difficulty"`

	Deadline    *time.Time `gorm:"type:timestamp" json:"deadline"`
	IsCompleted bool       `gorm:"not null;default:false" json:"is_completed"`
	CompletedAt *time.Time `gorm:"type:timestamp" json:"completed_at"`

	// PenaltyApplied is set once when the deadline passes and never cleared,
	// so a task can only ever cost HP one time.
	PenaltyApplied bool `gorm:"not null;default:false" json:"penalty_applied"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	SubTasks []SubTask `gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE;" json:"sub_tasks,omitempty"`
}

func (Task) TableName() string {
	return "tasks"
}

type SubTask struct {
	ID          int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	TaskID      int64      `gorm:"not null;index;constraint:OnDelete:CASCADE;" json:"task_id"`
	Title       string     `gorm:"type:varchar(255);not null" json:"title"`
	IsCompleted bool       `gorm:"not null;default:false" json:"is_completed"`
	CompletedAt *time.Time `gorm:"type:timestamp" json:"completed_at"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (SubTask) TableName() string {
	return "sub_tasks"
}
