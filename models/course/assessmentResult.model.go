package course

import (
	"time"

	"gorm.io/gorm"
)

// AssessmentResult is an append-only record of a graded assessment attempt.
// Prior attempts are never overwritten; best score does not replace history.
type AssessmentResult struct {
	gorm.Model
	UserID      uint      `json:"user_id" gorm:"index;not null"`
	CourseID    uint      `json:"course_id" gorm:"index;not null"`
	Score       int       `json:"score"` // 0-100
	Difficulty  string    `json:"difficulty"`
	CompletedAt time.Time `json:"completed_at"`
	IsDeleted   bool      `gorm:"default:false"`
}
