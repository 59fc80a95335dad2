package assessmentController

import (
	"learnhub/apperrors"
	"learnhub/database"
	"learnhub/middleware"
	courseModels "learnhub/models/course"
	"learnhub/services"
	"log"

	"github.com/gofiber/fiber/v2"
)

var assessmentService *services.AssessmentService

// Setup wires the assessment service. Called once from main.
func Setup(svc *services.AssessmentService) {
	assessmentService = svc
}

// GenerateAssessment creates an ephemeral quiz for a course at the requested
// difficulty. The response never includes correct answers.
func GenerateAssessment(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	reqData, ok := c.Locals("validatedGenerate").(*struct {
		Difficulty string `json:"difficulty"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request!", nil)
	}

	// Only enrolled users can take assessments
	var progress courseModels.CourseProgress
	if err := database.Database.Db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&progress).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "User not enrolled in this course!", nil)
	}

	view, err := assessmentService.Generate(c.Context(), uint(courseID), reqData.Difficulty)
	if err != nil {
		log.Printf("Error generating assessment: %v", err)
		return middleware.JsonResponse(c, apperrors.HTTPStatus(err), false, apperrors.UserMessage(err), nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Assessment generated successfully!", fiber.Map{
		"assessment": view,
	})
}

// SubmitAssessment grades a submission. Every question must be answered.
func SubmitAssessment(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	assessmentID := c.Locals("assessmentID").(string)

	reqData, ok := c.Locals("validatedSubmit").(*struct {
		Answers map[string]int `json:"answers"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request!", nil)
	}

	result, err := assessmentService.Submit(userID, assessmentID, reqData.Answers)
	if err != nil {
		log.Printf("Error submitting assessment: %v", err)
		return middleware.JsonResponse(c, apperrors.HTTPStatus(err), false, apperrors.UserMessage(err), nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Assessment submitted successfully!", result)
}

// GetAssessmentResults returns the caller's attempt history for a course,
// newest first.
func GetAssessmentResults(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	var results []courseModels.AssessmentResult
	if err := database.Database.Db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).
		Order("completed_at desc").Find(&results).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch assessment results!", nil)
	}

	best := 0
	for _, r := range results {
		if r.Score > best {
			best = r.Score
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Assessment results fetched successfully!", fiber.Map{
		"results":    results,
		"total":      len(results),
		"best_score": best,
	})
}
