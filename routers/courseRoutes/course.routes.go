package courseRoutes

import (
	controllers "learnhub/controllers/course"
	"learnhub/middleware"
	validators "learnhub/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up all user-facing course routes
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/course")

	// Catalog
	courseGroup.Get("/list", middleware.JWTMiddleware, validators.CourseList(), controllers.GetAllCourses)
	courseGroup.Get("/:id", middleware.JWTMiddleware, validators.CourseByID(), controllers.GetCourseDetails)

	// Enrollment
	courseGroup.Post("/:id/enroll", middleware.JWTMiddleware, validators.CourseByID(), controllers.EnrollInCourse)

	// Lessons and progress
	courseGroup.Get("/:id/lessons", middleware.JWTMiddleware, validators.CourseByID(), controllers.GetCourseLessons)
	courseGroup.Get("/:id/resume", middleware.JWTMiddleware, validators.CourseByID(), controllers.GetResumePoint)
	courseGroup.Get("/:id/progress", middleware.JWTMiddleware, validators.CourseByID(), controllers.GetUserProgress)
	courseGroup.Post("/:id/lesson/:lessonId/complete", middleware.JWTMiddleware, validators.CourseByID(), validators.LessonByID(), controllers.MarkLessonComplete)

	// AI study material
	courseGroup.Post("/:id/lesson/:lessonId/material", middleware.JWTMiddleware, validators.CourseByID(), validators.LessonByID(), controllers.GenerateLessonMaterial)

	// Notes
	courseGroup.Get("/:id/notes", middleware.JWTMiddleware, validators.CourseByID(), controllers.GetCourseNotes)
	courseGroup.Post("/:id/notes", middleware.JWTMiddleware, validators.CourseByID(), validators.NoteBody(), controllers.CreateNote)

	noteGroup := app.Group("/notes")
	noteGroup.Put("/:noteId", middleware.JWTMiddleware, validators.NoteByID(), validators.NoteBody(), controllers.UpdateNote)
	noteGroup.Delete("/:noteId", middleware.JWTMiddleware, validators.NoteByID(), controllers.DeleteNote)

	// Certificates
	courseGroup.Post("/:id/certificate", middleware.JWTMiddleware, validators.CourseByID(), controllers.GetCourseCertificate)

	certGroup := app.Group("/certificate")
	certGroup.Get("/:certId/download", middleware.JWTMiddleware, validators.CertificateByID(), controllers.DownloadCertificate)

	// User enrollments and certificates
	userGroup := app.Group("/user")
	userGroup.Get("/enrollments", middleware.JWTMiddleware, controllers.GetUserEnrollmentsList)
	userGroup.Get("/certificates", middleware.JWTMiddleware, controllers.GetUserCertificates)
}
