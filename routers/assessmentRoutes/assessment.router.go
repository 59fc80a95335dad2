package assessmentRoutes

import (
	assessmentControllers "learnhub/controllers/assessment"
	"learnhub/middleware"
	assessmentValidators "learnhub/validators/assessment"
	courseValidators "learnhub/validators/course"

	"github.com/gofiber/fiber/v2"
)

func SetupAssessmentRoutes(app *fiber.App) {
	courseGroup := app.Group("/course")

	courseGroup.Post("/:id/assessment/generate", middleware.JWTMiddleware, courseValidators.CourseByID(), assessmentValidators.GenerateAssessment(), assessmentControllers.GenerateAssessment)
	courseGroup.Get("/:id/assessment/results", middleware.JWTMiddleware, courseValidators.CourseByID(), assessmentControllers.GetAssessmentResults)

	assessmentGroup := app.Group("/assessment")
	assessmentGroup.Post("/:assessmentId/submit", middleware.JWTMiddleware, assessmentValidators.SubmitAssessment(), assessmentControllers.SubmitAssessment)
}
