package controllers

import (
	"learnhub/apperrors"
	"learnhub/database"
	"learnhub/middleware"
	courseModels "learnhub/models/course"
	"learnhub/services"
	"log"

	"github.com/gofiber/fiber/v2"
)

var (
	progressService *services.ProgressService
	materialService *services.MaterialService
)

// Setup wires the services the course controllers depend on. Called once
// from main before routes are registered.
func Setup(progress *services.ProgressService, material *services.MaterialService) {
	progressService = progress
	materialService = material
}

// GetCourseLessons returns the course's lesson sequence with the caller's
// completion set.
func GetCourseLessons(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	var lessons []courseModels.Lesson
	if err := database.Database.Db.Where("course_id = ? AND is_deleted = ?", courseID, false).
		Order("order_index asc").Find(&lessons).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch lessons!", nil)
	}

	var completions []courseModels.LessonCompletion
	database.Database.Db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).Find(&completions)

	completedIDs := make([]uint, len(completions))
	for i, comp := range completions {
		completedIDs[i] = comp.LessonID
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lessons fetched successfully!", fiber.Map{
		"lessons":       lessons,
		"completed_ids": completedIDs,
	})
}

// GetResumePoint returns the lesson index the stepper should reopen at:
// the first lesson not yet completed, bounded to the lesson range.
func GetResumePoint(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	index, err := progressService.ResumeIndex(userID, uint(courseID))
	if err != nil {
		log.Printf("Error computing resume point: %v", err)
		return middleware.JsonResponse(c, apperrors.HTTPStatus(err), false, apperrors.UserMessage(err), nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Resume point fetched successfully!", fiber.Map{
		"lesson_index": index,
	})
}

// MarkLessonComplete marks the lesson complete and recomputes course progress.
// Re-marking a completed lesson is a no-op.
func MarkLessonComplete(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)
	lessonID := c.Locals("lessonID").(int)

	// Only enrolled users can record progress
	if _, err := fetchProgressRow(database.Database.Db, userID, courseID); err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "User not enrolled in this course!", nil)
	}

	progress, err := progressService.ApplyLessonCompletion(userID, uint(courseID), uint(lessonID))
	if err != nil {
		log.Printf("Error applying lesson completion: %v", err)
		return middleware.JsonResponse(c, apperrors.HTTPStatus(err), false, apperrors.UserMessage(err), nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson marked complete!", progress)
}

// GenerateLessonMaterial produces lesson content through the generation
// provider. No fallback: provider failure surfaces as an error response.
func GenerateLessonMaterial(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)
	lessonID := c.Locals("lessonID").(int)

	if _, err := fetchProgressRow(database.Database.Db, userID, courseID); err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "User not enrolled in this course!", nil)
	}

	reqData := new(struct {
		CustomPrompt string `json:"custom_prompt"`
	})
	if err := c.BodyParser(reqData); err != nil && len(c.Body()) > 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	material, err := materialService.Generate(c.Context(), uint(courseID), uint(lessonID), reqData.CustomPrompt)
	if err != nil {
		log.Printf("Error generating lesson material: %v", err)
		return middleware.JsonResponse(c, apperrors.HTTPStatus(err), false, apperrors.UserMessage(err), nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Material generated successfully!", material)
}

// GetUserProgress returns the caller's progress row plus lesson statistics
func GetUserProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	progress, err := fetchProgressRow(database.Database.Db, userID, courseID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "User not enrolled in this course!", nil)
	}

	var totalLessons int64
	database.Database.Db.Model(&courseModels.Lesson{}).Where("course_id = ? AND is_deleted = ?", courseID, false).Count(&totalLessons)

	var completedLessons int64
	database.Database.Db.Model(&courseModels.LessonCompletion{}).Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).Count(&completedLessons)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully!", fiber.Map{
		"progress":          progress,
		"total_lessons":     totalLessons,
		"completed_lessons": completedLessons,
	})
}
