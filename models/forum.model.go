package models

import "gorm.io/gorm"

// ForumDiscussion is a community forum thread
type ForumDiscussion struct {
	gorm.Model
	UserID    uint   `json:"user_id" gorm:"index;not null"`
	Title     string `json:"title" gorm:"not null"`
	Content   string `json:"content" gorm:"type:text"`
	Category  string `json:"category" gorm:"default:'general'"`
	IsDeleted bool   `gorm:"default:false"`
}

// ForumReply is a reply within a discussion thread
type ForumReply struct {
	gorm.Model
	DiscussionID uint   `json:"discussion_id" gorm:"index;not null"`
	UserID       uint   `json:"user_id" gorm:"index;not null"`
	Content      string `json:"content" gorm:"type:text"`
	IsDeleted    bool   `gorm:"default:false"`
}
