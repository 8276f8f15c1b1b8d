package models

import (
	"time"
)

type Feedback struct {
	ID        string    `gorm:"primaryKey;type:varchar(64)" json:"id"`
	FromName  string    `gorm:"type:varchar(255)" json:"from_name"`
	FromEmail string    `gorm:"type:varchar(255)" json:"from_email" validate:"omitempty,email"`
	Content   string    `gorm:"type:text;not null" json:"content" validate:"required"`
	Submitted time.Time `gorm:"not null" json:"submitted"`
}

func (Feedback) TableName() string { return "feedback" }
