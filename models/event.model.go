package models

import (
	"time"

	"gorm.io/gorm"
)

// Event is a calendar entry or task owned by a user
type Event struct {
	gorm.Model
	UserID      uint      `json:"user_id" gorm:"index;not null"`
	Title       string    `json:"title" gorm:"not null"`
	Description string    `json:"description"`
	EventType   string    `json:"event_type" gorm:"default:'TASK'"` // TASK, DEADLINE, SESSION
	DueAt       time.Time `json:"due_at"`
	Completed   bool      `json:"completed" gorm:"default:false"`
	Reminded    bool      `json:"reminded" gorm:"default:false"` // Set once a reminder email went out
	IsDeleted   bool      `gorm:"default:false"`
}
