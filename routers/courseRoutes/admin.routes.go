package courseRoutes

import (
	controllers "learnhub/controllers/course"
	"learnhub/middleware"
	validators "learnhub/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminCourseRoutes sets up all admin course management routes
func SetupAdminCourseRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin/course", middleware.JWTMiddleware, middleware.CheckPermissionMiddleware("manage-courses"))

	// Course CRUD
	adminGroup.Post("/create", validators.CreateCourse(), controllers.AdminCreateCourse)
	adminGroup.Put("/:id", validators.CourseByID(), validators.UpdateCourse(), controllers.AdminUpdateCourse)
	adminGroup.Delete("/:id", validators.CourseByID(), controllers.AdminDeleteCourse)
	adminGroup.Post("/:id/publish", validators.CourseByID(), controllers.AdminPublishCourse)

	// Lesson management
	adminGroup.Post("/:id/lesson", validators.CourseByID(), validators.LessonBody(), controllers.AdminCreateLesson)

	lessonGroup := app.Group("/admin/lesson", middleware.JWTMiddleware, middleware.CheckPermissionMiddleware("manage-courses"))
	lessonGroup.Put("/:lessonId", validators.LessonByID(), validators.LessonBody(), controllers.AdminUpdateLesson)
	lessonGroup.Delete("/:lessonId", validators.LessonByID(), controllers.AdminDeleteLesson)

	// Enrollment tracking
	adminGroup.Get("/:id/enrollments", validators.CourseByID(), controllers.AdminGetCourseEnrollments)

	// Dashboard
	dashGroup := app.Group("/admin/dashboard", middleware.JWTMiddleware, middleware.CheckPermissionMiddleware("view-dashboard"))
	dashGroup.Get("/stats", controllers.AdminDashboardStats)
}
