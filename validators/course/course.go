package courseValidator

import (
	"learnhub/middleware"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// CourseList validates catalog pagination and filters
func CourseList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Page  int    `json:"page"`
			Limit int    `json:"limit"`
			Field string `json:"field"`
			Level string `json:"level"`
		})

		reqData.Page = c.QueryInt("page", 1)
		reqData.Limit = c.QueryInt("limit", 20)
		reqData.Field = strings.TrimSpace(c.Query("field"))
		reqData.Level = strings.TrimSpace(strings.ToLower(c.Query("level")))

		errors := make(map[string]string)

		if reqData.Page < 1 {
			errors["page"] = "Page must be greater than 0!"
		}
		if reqData.Limit < 1 || reqData.Limit > 100 {
			errors["limit"] = "Limit must be between 1 and 100!"
		}
		if reqData.Level != "" && reqData.Level != "beginner" && reqData.Level != "intermediate" && reqData.Level != "advanced" {
			errors["level"] = "Level must be beginner, intermediate or advanced!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourseList", reqData)
		return c.Next()
	}
}

// CourseByID validates the :id route param
func CourseByID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseIDStr := strings.TrimSpace(c.Params("id"))
		if courseIDStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course ID is required!", nil)
		}

		courseID, err := strconv.Atoi(courseIDStr)
		if err != nil || courseID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		c.Locals("courseID", courseID)
		return c.Next()
	}
}

// LessonByID validates the :lessonId route param, used alongside CourseByID
func LessonByID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		lessonIDStr := strings.TrimSpace(c.Params("lessonId"))
		if lessonIDStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Lesson ID is required!", nil)
		}

		lessonID, err := strconv.Atoi(lessonIDStr)
		if err != nil || lessonID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Lesson ID!", nil)
		}

		c.Locals("lessonID", lessonID)
		return c.Next()
	}
}

// CertificateByID validates the :certId route param
func CertificateByID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		certIDStr := strings.TrimSpace(c.Params("certId"))
		if certIDStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Certificate ID is required!", nil)
		}

		certID, err := strconv.Atoi(certIDStr)
		if err != nil || certID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Certificate ID!", nil)
		}

		c.Locals("certificateID", certID)
		return c.Next()
	}
}
