package models

import (
	"time"

	"gorm.io/gorm"
)

// Badge is a catalog entry grantable to users
type Badge struct {
	gorm.Model
	Name        string `json:"name" gorm:"not null"`
	Description string `json:"description"`
	Tier        string `json:"tier" gorm:"default:'BRONZE'"`      // BRONZE, SILVER, GOLD
	Category    string `json:"category" gorm:"default:'general'"` // e.g. course, community, streak
	Icon        string `json:"icon"`
	IsDeleted   bool   `gorm:"default:false"`
}

// UserBadge is the grant record joining a user to a badge
type UserBadge struct {
	gorm.Model
	UserID    uint      `json:"user_id" gorm:"index;not null"`
	BadgeID   uint      `json:"badge_id" gorm:"index;not null"`
	EarnedAt  time.Time `json:"earned_at"`
	IsDeleted bool      `gorm:"default:false"`

	Badge Badge `json:"badge" gorm:"foreignKey:BadgeID"`
}
