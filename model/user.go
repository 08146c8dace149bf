package model

import "time"

type User struct {
	ID       int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name     string `gorm:"type:varchar(255);not null" json:"name"`
	Email    string `gorm:"type:varchar(255);not null;uniqueIndex" json:"email"`
	Password string `gorm:"type:varchar(255);not null" json:"-"`

	// Progression state. Mutated only through the user service ledger
	// operations so that xp < xp_to_next_level holds after every write.
	Level         int    `gorm:"not null;default:1" json:"level"`
	Xp            int    `gorm:"not null;default:0" json:"xp"`
	XpToNextLevel int    `gorm:"not null;default:100" json:"xp_to_next_level"`
	Hp            int    `gorm:"not null;default:100" json:"hp"`
	Title         string `gorm:"type:varchar(255);not null;default:'Pemula Produktif'" json:"title"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Tasks  []Task  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;" json:"tasks,omitempty"`
	Habits []Habit `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;" json:"habits,omitempty"`
}

func (User) TableName() string {
	return "users"
}
