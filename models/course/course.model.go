package course

import "gorm.io/gorm"

// Course represents a learning course
type Course struct {
	gorm.Model
	Title        string `json:"title"`
	Description  string `json:"description"`
	Field        string `json:"field"`                        // e.g. computer-science, design
	Level        string `json:"level" gorm:"default:'beginner'"` // beginner, intermediate, advanced
	Author       string `json:"author"`
	Duration     int64  `json:"duration" gorm:"default:0"`     // duration in hours
	Status       string `json:"status" gorm:"default:'DRAFT'"` // DRAFT, ACTIVE, INACTIVE
	ThumbnailURL string `json:"thumbnail_url"`
	IsPublished  bool   `json:"is_published" gorm:"default:false"`
	IsDeleted    bool   `gorm:"default:false"`
}

// Lesson is a single step in a course's linear material sequence
type Lesson struct {
	gorm.Model
	CourseID   uint   `json:"course_id" gorm:"index;not null"`
	OrderIndex int    `json:"order_index" gorm:"not null"` // 1-based position in the stepper
	Title      string `json:"title"`
	LessonType string `json:"lesson_type" gorm:"default:'READING'"` // READING, VIDEO, EXERCISE
	Content    string `json:"content" gorm:"type:text"`
	VideoURL   string `json:"video_url"` // For VIDEO type
	IsDeleted  bool   `gorm:"default:false"`
}
