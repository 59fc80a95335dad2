package course

import "gorm.io/gorm"

// CourseNote is a user-owned scratch note attached to a course
type CourseNote struct {
	gorm.Model
	UserID    uint   `json:"user_id" gorm:"index;not null"`
	CourseID  uint   `json:"course_id" gorm:"index;not null"`
	Title     string `json:"title"`
	Content   string `json:"content" gorm:"type:text"`
	IsDeleted bool   `gorm:"default:false"`
}
