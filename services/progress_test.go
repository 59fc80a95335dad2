package services

import (
	"fmt"
	"testing"

	"learnhub/apperrors"
	"learnhub/database"
	"learnhub/models"
	courseModels "learnhub/models/course"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	database.RunMigrations(db)
	return db
}

func seedCourse(t *testing.T, db *gorm.DB, lessonCount int) (*courseModels.Course, []courseModels.Lesson) {
	t.Helper()

	course := courseModels.Course{
		Title:       "Go Fundamentals",
		Field:       "computer-science",
		Level:       "beginner",
		Status:      "ACTIVE",
		IsPublished: true,
	}
	require.NoError(t, db.Create(&course).Error)

	lessons := make([]courseModels.Lesson, 0, lessonCount)
	for i := 1; i <= lessonCount; i++ {
		lesson := courseModels.Lesson{
			CourseID:   course.ID,
			OrderIndex: i,
			Title:      fmt.Sprintf("Lesson %d", i),
			LessonType: "READING",
		}
		require.NoError(t, db.Create(&lesson).Error)
		lessons = append(lessons, lesson)
	}

	return &course, lessons
}

func seedUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()

	user := models.User{
		Name:            "Asha Learner",
		Email:           "asha@example.com",
		Password:        "hashed",
		Role:            "USER",
		IsEmailVerified: true,
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func TestUpdateProgressRejectsOutOfRange(t *testing.T) {
	db := newTestDB(t)
	svc := NewProgressService(db, BadgeSingleGrant, nil)

	_, err := svc.UpdateProgress(1, 1, -1)
	require.Error(t, err)
	assert.Equal(t, apperrors.ValidationError, apperrors.KindOf(err))

	_, err = svc.UpdateProgress(1, 1, 101)
	require.Error(t, err)
	assert.Equal(t, apperrors.ValidationError, apperrors.KindOf(err))
}

func TestCompletedTracksPercentage(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db)
	course, _ := seedCourse(t, db, 3)
	svc := NewProgressService(db, BadgeSingleGrant, nil)

	for _, pct := range []int{0, 25, 50, 99, 100} {
		progress, err := svc.UpdateProgress(user.ID, course.ID, pct)
		require.NoError(t, err)
		assert.Equal(t, pct == 100, progress.Completed, "pct=%d", pct)
		assert.Equal(t, progress.ProgressPercentage == 100, progress.Completed)
	}
}

func TestProgressNeverDecreases(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db)
	course, _ := seedCourse(t, db, 3)
	svc := NewProgressService(db, BadgeSingleGrant, nil)

	progress, err := svc.UpdateProgress(user.ID, course.ID, 60)
	require.NoError(t, err)
	assert.Equal(t, 60, progress.ProgressPercentage)

	// A lower candidate refreshes last_accessed but keeps the percentage.
	progress, err = svc.UpdateProgress(user.ID, course.ID, 30)
	require.NoError(t, err)
	assert.Equal(t, 60, progress.ProgressPercentage)
	assert.False(t, progress.Completed)

	// Only one row exists per (user, course).
	var count int64
	db.Model(&courseModels.CourseProgress{}).Where("user_id = ? AND course_id = ?", user.ID, course.ID).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestLessonCompletionDrivesProgress(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db)
	course, lessons := seedCourse(t, db, 6)
	svc := NewProgressService(db, BadgeSingleGrant, nil)

	expected := []int{17, 33, 50, 67, 83, 100}
	for i, lesson := range lessons {
		progress, err := svc.ApplyLessonCompletion(user.ID, course.ID, lesson.ID)
		require.NoError(t, err)
		assert.Equal(t, expected[i], progress.ProgressPercentage)
	}

	var progress courseModels.CourseProgress
	require.NoError(t, db.Where("user_id = ? AND course_id = ?", user.ID, course.ID).First(&progress).Error)
	assert.True(t, progress.Completed)
	require.NotNil(t, progress.CompletedAt)

	// Completing the course grants exactly one badge and one certificate.
	var badges int64
	db.Model(&models.UserBadge{}).Where("user_id = ?", user.ID).Count(&badges)
	assert.EqualValues(t, 1, badges)

	var certs int64
	db.Model(&courseModels.Certificate{}).Where("user_id = ? AND course_id = ?", user.ID, course.ID).Count(&certs)
	assert.EqualValues(t, 1, certs)

	// Re-marking a completed lesson is a no-op.
	progressAfter, err := svc.ApplyLessonCompletion(user.ID, course.ID, lessons[0].ID)
	require.NoError(t, err)
	assert.Equal(t, 100, progressAfter.ProgressPercentage)

	var completions int64
	db.Model(&courseModels.LessonCompletion{}).Where("user_id = ? AND course_id = ?", user.ID, course.ID).Count(&completions)
	assert.EqualValues(t, 6, completions)
}

func TestLessonDeletionKeepsPercentageInRange(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db)
	course, lessons := seedCourse(t, db, 2)
	svc := NewProgressService(db, BadgeSingleGrant, nil)

	_, err := svc.ApplyLessonCompletion(user.ID, course.ID, lessons[0].ID)
	require.NoError(t, err)
	_, err = svc.ApplyLessonCompletion(user.ID, course.ID, lessons[1].ID)
	require.NoError(t, err)

	// Admin removes a lesson the user had already completed.
	require.NoError(t, db.Model(&courseModels.Lesson{}).Where("id = ?", lessons[1].ID).Update("is_deleted", true).Error)

	pct, err := svc.LessonPercentage(user.ID, course.ID)
	require.NoError(t, err)
	assert.Equal(t, 100, pct)

	// Re-marking the surviving lesson must keep working.
	progress, err := svc.ApplyLessonCompletion(user.ID, course.ID, lessons[0].ID)
	require.NoError(t, err)
	assert.Equal(t, 100, progress.ProgressPercentage)

	// The assessment path blends the same lesson percentage and must also
	// stay in range.
	progress, err = svc.ApplyAssessmentScore(user.ID, course.ID, 50)
	require.NoError(t, err)
	assert.LessOrEqual(t, progress.ProgressPercentage, 100)
}

func TestLessonDeletionOfOnlyCompletedLesson(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db)
	course, lessons := seedCourse(t, db, 2)
	svc := NewProgressService(db, BadgeSingleGrant, nil)

	// Complete only the lesson that will be deleted.
	_, err := svc.ApplyLessonCompletion(user.ID, course.ID, lessons[1].ID)
	require.NoError(t, err)

	require.NoError(t, db.Model(&courseModels.Lesson{}).Where("id = ?", lessons[1].ID).Update("is_deleted", true).Error)

	// The orphaned completion no longer counts toward the live lesson set.
	pct, err := svc.LessonPercentage(user.ID, course.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, pct)

	// The stored percentage keeps its monotonic floor.
	progress, err := svc.UpdateProgress(user.ID, course.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, 50, progress.ProgressPercentage)
}

func TestUnknownLessonRejected(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db)
	course, _ := seedCourse(t, db, 2)
	svc := NewProgressService(db, BadgeSingleGrant, nil)

	_, err := svc.ApplyLessonCompletion(user.ID, course.ID, 9999)
	require.Error(t, err)
	assert.Equal(t, apperrors.NotFound, apperrors.KindOf(err))
}

func TestBlendedAssessmentScore(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db)
	course, lessons := seedCourse(t, db, 2)
	svc := NewProgressService(db, BadgeSingleGrant, nil)

	// With no lessons completed the blend is 30% of the score alone.
	progress, err := svc.ApplyAssessmentScore(user.ID, course.ID, 100)
	require.NoError(t, err)
	assert.Equal(t, 30, progress.ProgressPercentage)
	assert.Equal(t, 100, progress.AssessmentScore)

	// One of two lessons done: round(0.7*50 + 0.3*80) = 59. The stored 30
	// is overtaken, the best score 100 is kept.
	_, err = svc.ApplyLessonCompletion(user.ID, course.ID, lessons[0].ID)
	require.NoError(t, err)

	progress, err = svc.ApplyAssessmentScore(user.ID, course.ID, 80)
	require.NoError(t, err)
	assert.Equal(t, 59, progress.ProgressPercentage)
	assert.Equal(t, 100, progress.AssessmentScore)
}

func TestAssessmentScoreRejectsOutOfRange(t *testing.T) {
	db := newTestDB(t)
	svc := NewProgressService(db, BadgeSingleGrant, nil)

	_, err := svc.ApplyAssessmentScore(1, 1, 101)
	require.Error(t, err)
	assert.Equal(t, apperrors.ValidationError, apperrors.KindOf(err))
}

func TestCertificateIssuanceIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db)
	course, _ := seedCourse(t, db, 1)
	svc := NewProgressService(db, BadgeSingleGrant, nil)

	first, err := svc.GenerateCertificate(user.ID, course.ID)
	require.NoError(t, err)
	require.NotEmpty(t, first.CertificateNumber)

	second, err := svc.GenerateCertificate(user.ID, course.ID)
	require.NoError(t, err)
	assert.Equal(t, first.CertificateNumber, second.CertificateNumber)

	var count int64
	db.Model(&courseModels.Certificate{}).Where("user_id = ? AND course_id = ?", user.ID, course.ID).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestCertificateUnknownCourse(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db)
	svc := NewProgressService(db, BadgeSingleGrant, nil)

	_, err := svc.GenerateCertificate(user.ID, 424242)
	require.Error(t, err)
	assert.Equal(t, apperrors.NotFound, apperrors.KindOf(err))
}

func TestBadgePolicySingleGrant(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db)
	courseA, _ := seedCourse(t, db, 1)
	svc := NewProgressService(db, BadgeSingleGrant, nil)

	courseB := courseModels.Course{Title: "Advanced Go", Field: "computer-science", Status: "ACTIVE", IsPublished: true}
	require.NoError(t, db.Create(&courseB).Error)

	_, err := svc.UpdateProgress(user.ID, courseA.ID, 100)
	require.NoError(t, err)
	_, err = svc.UpdateProgress(user.ID, courseB.ID, 100)
	require.NoError(t, err)

	var grants int64
	db.Model(&models.UserBadge{}).Where("user_id = ?", user.ID).Count(&grants)
	assert.EqualValues(t, 1, grants)
}

func TestBadgePolicyMultiGrant(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db)
	courseA, _ := seedCourse(t, db, 1)
	svc := NewProgressService(db, BadgeMultiGrant, nil)

	courseB := courseModels.Course{Title: "Advanced Go", Field: "computer-science", Status: "ACTIVE", IsPublished: true}
	require.NoError(t, db.Create(&courseB).Error)

	_, err := svc.UpdateProgress(user.ID, courseA.ID, 100)
	require.NoError(t, err)
	_, err = svc.UpdateProgress(user.ID, courseB.ID, 100)
	require.NoError(t, err)

	var grants int64
	db.Model(&models.UserBadge{}).Where("user_id = ?", user.ID).Count(&grants)
	assert.EqualValues(t, 2, grants)
}

func TestCredentialingFiresOnceOnTransition(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db)
	course, _ := seedCourse(t, db, 1)
	svc := NewProgressService(db, BadgeMultiGrant, nil)

	// Repeated writes at 100 stay completed; only the first transition awards.
	for i := 0; i < 3; i++ {
		_, err := svc.UpdateProgress(user.ID, course.ID, 100)
		require.NoError(t, err)
	}

	var grants int64
	db.Model(&models.UserBadge{}).Where("user_id = ?", user.ID).Count(&grants)
	assert.EqualValues(t, 1, grants)

	var certs int64
	db.Model(&courseModels.Certificate{}).Where("user_id = ?", user.ID).Count(&certs)
	assert.EqualValues(t, 1, certs)
}

func TestResumeIndex(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db)
	course, lessons := seedCourse(t, db, 4)
	svc := NewProgressService(db, BadgeSingleGrant, nil)

	// Nothing completed: start at lesson 1.
	index, err := svc.ResumeIndex(user.ID, course.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, index)

	// First two done: resume at lesson 3.
	_, err = svc.ApplyLessonCompletion(user.ID, course.ID, lessons[0].ID)
	require.NoError(t, err)
	_, err = svc.ApplyLessonCompletion(user.ID, course.ID, lessons[1].ID)
	require.NoError(t, err)

	index, err = svc.ResumeIndex(user.ID, course.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, index)

	// A gap resumes at the lowest uncompleted lesson.
	_, err = svc.ApplyLessonCompletion(user.ID, course.ID, lessons[3].ID)
	require.NoError(t, err)

	index, err = svc.ResumeIndex(user.ID, course.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, index)

	// Everything done: stay bounded to the last lesson.
	_, err = svc.ApplyLessonCompletion(user.ID, course.ID, lessons[2].ID)
	require.NoError(t, err)

	index, err = svc.ResumeIndex(user.ID, course.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, index)
}

func TestResumeIndexEmptyCourse(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db)
	course, _ := seedCourse(t, db, 0)
	svc := NewProgressService(db, BadgeSingleGrant, nil)

	index, err := svc.ResumeIndex(user.ID, course.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, index)
}
