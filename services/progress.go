package services

import (
	"learnhub/apperrors"
	"learnhub/models"
	courseModels "learnhub/models/course"
	"log"
	"math"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BadgePolicy controls whether a user can hold the same badge more than once.
type BadgePolicy int

const (
	// BadgeSingleGrant skips the grant when the user already holds the badge.
	BadgeSingleGrant BadgePolicy = iota
	// BadgeMultiGrant inserts a new grant on every award call.
	BadgeMultiGrant
)

// CertificateNotifier is called after a certificate is issued. Nil disables
// notification (tests, workers without mail config).
type CertificateNotifier func(email, name, courseTitle, certificateNumber string)

// ProgressService owns the progress-and-credentialing workflow: it keeps the
// single (user, course) progress row consistent and triggers badge and
// certificate issuance when a course reaches 100%.
//
// Progress is monotonically non-decreasing on every path. The lesson path and
// the assessment path compute their candidate percentage differently, but
// neither can lower a stored value.
type ProgressService struct {
	db          *gorm.DB
	badgePolicy BadgePolicy
	notify      CertificateNotifier
}

// NewProgressService builds a ProgressService around the given database handle.
func NewProgressService(db *gorm.DB, policy BadgePolicy, notify CertificateNotifier) *ProgressService {
	return &ProgressService{db: db, badgePolicy: policy, notify: notify}
}

// UpdateProgress sets the stored percentage for (user, course), creating the
// row on first touch. Values below the stored percentage are ignored apart
// from refreshing last_accessed. Reaching 100 flips the completed flag and
// fires badge and certificate issuance once, on the transition.
func (s *ProgressService) UpdateProgress(userID, courseID uint, newPct int) (*courseModels.CourseProgress, error) {
	if newPct < 0 || newPct > 100 {
		return nil, apperrors.New(apperrors.ValidationError, "Progress percentage must be between 0 and 100!")
	}

	var progress courseModels.CourseProgress
	err := s.db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&progress).Error
	if err == gorm.ErrRecordNotFound {
		progress = courseModels.CourseProgress{UserID: userID, CourseID: courseID}
	} else if err != nil {
		return nil, apperrors.Wrap(apperrors.PersistenceError, "Failed to load course progress!", err)
	}

	wasCompleted := progress.Completed

	if newPct > progress.ProgressPercentage {
		progress.ProgressPercentage = newPct
	}
	progress.Completed = progress.ProgressPercentage == 100
	progress.LastAccessed = time.Now()
	if progress.Completed && progress.CompletedAt == nil {
		now := time.Now()
		progress.CompletedAt = &now
	}

	if err := s.db.Save(&progress).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.PersistenceError, "Failed to save course progress!", err)
	}

	// Credentialing fires exactly once, on the not-completed -> completed
	// transition. Failures here are logged, not propagated: the progress
	// write already succeeded.
	if progress.Completed && !wasCompleted {
		if err := s.awardCourseBadge(userID); err != nil {
			log.Printf("Error awarding course badge to user %d: %v", userID, err)
		}
		if _, err := s.GenerateCertificate(userID, courseID); err != nil {
			log.Printf("Error issuing certificate to user %d for course %d: %v", userID, courseID, err)
		}
	}

	return &progress, nil
}

// ApplyLessonCompletion marks a lesson complete (re-marking is a no-op) and
// recomputes the lesson-driven percentage: round(100 * completed / total).
func (s *ProgressService) ApplyLessonCompletion(userID, courseID, lessonID uint) (*courseModels.CourseProgress, error) {
	var lesson courseModels.Lesson
	if err := s.db.Where("id = ? AND course_id = ? AND is_deleted = ?", lessonID, courseID, false).First(&lesson).Error; err != nil {
		return nil, apperrors.New(apperrors.NotFound, "Lesson not found!")
	}

	var existing courseModels.LessonCompletion
	err := s.db.Where("user_id = ? AND lesson_id = ? AND is_deleted = ?", userID, lessonID, false).First(&existing).Error
	if err == gorm.ErrRecordNotFound {
		completion := courseModels.LessonCompletion{
			UserID:   userID,
			LessonID: lessonID,
			CourseID: courseID,
		}
		if err := s.db.Create(&completion).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.PersistenceError, "Failed to record lesson completion!", err)
		}
	} else if err != nil {
		return nil, apperrors.Wrap(apperrors.PersistenceError, "Failed to check lesson completion!", err)
	}

	pct, err := s.LessonPercentage(userID, courseID)
	if err != nil {
		return nil, err
	}

	return s.UpdateProgress(userID, courseID, pct)
}

// ApplyAssessmentScore folds a graded assessment score (0-100) into progress
// using the blended formula: 70% lesson completion + 30% normalized score.
func (s *ProgressService) ApplyAssessmentScore(userID, courseID uint, score int) (*courseModels.CourseProgress, error) {
	if score < 0 || score > 100 {
		return nil, apperrors.New(apperrors.ValidationError, "Assessment score must be between 0 and 100!")
	}

	lessonPct, err := s.LessonPercentage(userID, courseID)
	if err != nil {
		return nil, err
	}

	blended := int(math.Round(0.7*float64(lessonPct) + 0.3*float64(score)))

	progress, err := s.UpdateProgress(userID, courseID, blended)
	if err != nil {
		return nil, err
	}

	// Track the best assessment score on the progress row for dashboards.
	if score > progress.AssessmentScore {
		progress.AssessmentScore = score
		if err := s.db.Save(progress).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.PersistenceError, "Failed to save assessment score!", err)
		}
	}

	return progress, nil
}

// LessonPercentage computes round(100 * completed / total) for the user's
// lesson completions in a course. A course without lessons reports 0.
// Completions of since-deleted lessons are excluded, so the numerator and
// denominator always cover the same lesson set and the result stays in
// [0, 100] even after an admin removes a completed lesson.
func (s *ProgressService) LessonPercentage(userID, courseID uint) (int, error) {
	var total int64
	if err := s.db.Model(&courseModels.Lesson{}).Where("course_id = ? AND is_deleted = ?", courseID, false).Count(&total).Error; err != nil {
		return 0, apperrors.Wrap(apperrors.PersistenceError, "Failed to count lessons!", err)
	}
	if total == 0 {
		return 0, nil
	}

	var completed int64
	if err := s.db.Model(&courseModels.LessonCompletion{}).
		Joins("JOIN lessons ON lessons.id = lesson_completions.lesson_id AND lessons.is_deleted = ?", false).
		Where("lesson_completions.user_id = ? AND lesson_completions.course_id = ? AND lesson_completions.is_deleted = ?", userID, courseID, false).
		Count(&completed).Error; err != nil {
		return 0, apperrors.Wrap(apperrors.PersistenceError, "Failed to count lesson completions!", err)
	}

	return int(math.Round(float64(completed) / float64(total) * 100)), nil
}

// awardCourseBadge grants the course-completion badge from the catalog,
// creating a default catalog entry when none exists. Whether a repeat
// completion grants again is decided by the configured BadgePolicy.
func (s *ProgressService) awardCourseBadge(userID uint) error {
	var badge models.Badge
	err := s.db.Where("category = ? AND is_deleted = ?", "course", false).First(&badge).Error
	if err == gorm.ErrRecordNotFound {
		badge = models.Badge{
			Name:        "Course Champion",
			Description: "Awarded for completing a course",
			Tier:        "GOLD",
			Category:    "course",
		}
		if err := s.db.Create(&badge).Error; err != nil {
			return apperrors.Wrap(apperrors.PersistenceError, "Failed to create course badge!", err)
		}
	} else if err != nil {
		return apperrors.Wrap(apperrors.PersistenceError, "Failed to look up course badge!", err)
	}

	if s.badgePolicy == BadgeSingleGrant {
		var held models.UserBadge
		err := s.db.Where("user_id = ? AND badge_id = ? AND is_deleted = ?", userID, badge.ID, false).First(&held).Error
		if err == nil {
			return nil // already granted
		}
		if err != gorm.ErrRecordNotFound {
			return apperrors.Wrap(apperrors.PersistenceError, "Failed to check badge grant!", err)
		}
	}

	grant := models.UserBadge{
		UserID:   userID,
		BadgeID:  badge.ID,
		EarnedAt: time.Now(),
	}
	if err := s.db.Create(&grant).Error; err != nil {
		return apperrors.Wrap(apperrors.PersistenceError, "Failed to grant badge!", err)
	}

	return nil
}

// GenerateCertificate issues the completion certificate for (user, course).
// Issuance is idempotent: an existing certificate is returned unchanged.
func (s *ProgressService) GenerateCertificate(userID, courseID uint) (*courseModels.Certificate, error) {
	var courseRow courseModels.Course
	if err := s.db.Where("id = ? AND is_deleted = ?", courseID, false).First(&courseRow).Error; err != nil {
		return nil, apperrors.New(apperrors.NotFound, "Course not found!")
	}

	var existing courseModels.Certificate
	err := s.db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, apperrors.Wrap(apperrors.PersistenceError, "Failed to check existing certificate!", err)
	}

	cert := courseModels.Certificate{
		UserID:            userID,
		CourseID:          courseID,
		Name:              "Certificate of Completion - " + courseRow.Title,
		Description:       "Awarded for completing " + courseRow.Title,
		CertificateNumber: uuid.NewString(),
		EarnedAt:          time.Now(),
	}
	if err := s.db.Create(&cert).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.PersistenceError, "Failed to issue certificate!", err)
	}

	if s.notify != nil {
		var user models.User
		if err := s.db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err == nil {
			go s.notify(user.Email, user.Name, courseRow.Title, cert.CertificateNumber)
		}
	}

	return &cert, nil
}

// ResumeIndex returns the 1-based index of the lesson the stepper should open:
// the lowest-indexed lesson the user has not completed, lesson 1 when nothing
// is completed, and the last lesson when everything is.
func (s *ProgressService) ResumeIndex(userID, courseID uint) (int, error) {
	var lessons []courseModels.Lesson
	if err := s.db.Where("course_id = ? AND is_deleted = ?", courseID, false).Order("order_index asc").Find(&lessons).Error; err != nil {
		return 0, apperrors.Wrap(apperrors.PersistenceError, "Failed to fetch lessons!", err)
	}
	if len(lessons) == 0 {
		return 1, nil
	}

	var completions []courseModels.LessonCompletion
	if err := s.db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).Find(&completions).Error; err != nil {
		return 0, apperrors.Wrap(apperrors.PersistenceError, "Failed to fetch lesson completions!", err)
	}

	completed := make(map[uint]bool, len(completions))
	for _, c := range completions {
		completed[c.LessonID] = true
	}

	for i, lesson := range lessons {
		if !completed[lesson.ID] {
			return i + 1, nil
		}
	}

	// Everything completed: stay bounded to the last lesson.
	return len(lessons), nil
}
