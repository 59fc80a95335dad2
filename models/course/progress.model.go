package course

import (
	"time"

	"gorm.io/gorm"
)

// CourseProgress tracks a user's progress in a course.
// One row per (user, course), upserted in place.
// Invariant: Completed == (ProgressPercentage == 100).
type CourseProgress struct {
	gorm.Model
	UserID             uint       `json:"user_id" gorm:"uniqueIndex:idx_user_course;not null"`
	CourseID           uint       `json:"course_id" gorm:"uniqueIndex:idx_user_course;not null"`
	ProgressPercentage int        `json:"progress_percentage" gorm:"default:0"` // 0-100
	Completed          bool       `json:"completed" gorm:"default:false"`
	AssessmentScore    int        `json:"assessment_score" gorm:"default:0"` // Best assessment score so far
	LastAccessed       time.Time  `json:"last_accessed"`
	CompletedAt        *time.Time `json:"completed_at"`
	IsDeleted          bool       `gorm:"default:false"`
}

// LessonCompletion records a user's completion of a single lesson
type LessonCompletion struct {
	gorm.Model
	UserID    uint `json:"user_id" gorm:"uniqueIndex:idx_user_lesson;not null"`
	LessonID  uint `json:"lesson_id" gorm:"uniqueIndex:idx_user_lesson;not null"`
	CourseID  uint `json:"course_id" gorm:"index;not null"`
	IsDeleted bool `gorm:"default:false"`
}
