package course

import (
	"time"

	"gorm.io/gorm"
)

// Certificate represents an issued certificate for course completion.
// At most one exists per (user, course); creation is existence-checked.
type Certificate struct {
	gorm.Model
	UserID            uint      `json:"user_id" gorm:"index;not null"`
	CourseID          uint      `json:"course_id" gorm:"index;not null"`
	Name              string    `json:"name"`
	Description       string    `json:"description"`
	CertificateNumber string    `json:"certificate_number" gorm:"unique"`
	EarnedAt          time.Time `json:"earned_at"`
	ArtifactURL       string    `json:"artifact_url"` // Rendered PNG, populated on first download
	IsDeleted         bool      `gorm:"default:false"`
}
