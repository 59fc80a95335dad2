package courseValidator

import (
	"learnhub/middleware"
	"strings"

	"github.com/gofiber/fiber/v2"
)

var validLevels = map[string]bool{"beginner": true, "intermediate": true, "advanced": true}
var validLessonTypes = map[string]bool{"READING": true, "VIDEO": true, "EXERCISE": true}

// CreateCourse validates the admin course creation payload
func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title        string `json:"title"`
			Description  string `json:"description"`
			Field        string `json:"field"`
			Level        string `json:"level"`
			Author       string `json:"author"`
			Duration     int64  `json:"duration"`
			ThumbnailURL string `json:"thumbnail_url"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Title = strings.TrimSpace(reqData.Title)
		reqData.Description = strings.TrimSpace(reqData.Description)
		reqData.Field = strings.TrimSpace(reqData.Field)
		reqData.Level = strings.TrimSpace(strings.ToLower(reqData.Level))
		reqData.Author = strings.TrimSpace(reqData.Author)

		if reqData.Title == "" {
			errors["title"] = "Title is required!"
		} else if len(reqData.Title) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		} else if len(reqData.Title) > 200 {
			errors["title"] = "Title must not exceed 200 characters!"
		}

		if reqData.Field == "" {
			errors["field"] = "Field is required!"
		}

		if !validLevels[reqData.Level] {
			errors["level"] = "Level must be beginner, intermediate or advanced!"
		}

		if reqData.Duration < 0 {
			errors["duration"] = "Duration must not be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

// UpdateCourse validates the admin course update payload
func UpdateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title        string `json:"title"`
			Description  string `json:"description"`
			Field        string `json:"field"`
			Level        string `json:"level"`
			Author       string `json:"author"`
			Duration     int64  `json:"duration"`
			ThumbnailURL string `json:"thumbnail_url"`
			Status       string `json:"status"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Title = strings.TrimSpace(reqData.Title)
		reqData.Level = strings.TrimSpace(strings.ToLower(reqData.Level))
		reqData.Status = strings.TrimSpace(strings.ToUpper(reqData.Status))

		if reqData.Level != "" && !validLevels[reqData.Level] {
			errors["level"] = "Level must be beginner, intermediate or advanced!"
		}

		if reqData.Status != "" && reqData.Status != "ACTIVE" && reqData.Status != "INACTIVE" && reqData.Status != "DRAFT" {
			errors["status"] = "Status must be DRAFT, ACTIVE or INACTIVE!"
		}

		if reqData.Duration < 0 {
			errors["duration"] = "Duration must not be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourseUpdate", reqData)
		return c.Next()
	}
}

// LessonBody validates the admin lesson create/update payload
func LessonBody() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title      string `json:"title"`
			LessonType string `json:"lesson_type"`
			Content    string `json:"content"`
			VideoURL   string `json:"video_url"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Title = strings.TrimSpace(reqData.Title)
		reqData.LessonType = strings.TrimSpace(strings.ToUpper(reqData.LessonType))

		if reqData.Title == "" {
			errors["title"] = "Title is required!"
		} else if len(reqData.Title) > 200 {
			errors["title"] = "Title must not exceed 200 characters!"
		}

		if reqData.LessonType == "" {
			reqData.LessonType = "READING"
		} else if !validLessonTypes[reqData.LessonType] {
			errors["lesson_type"] = "Lesson type must be READING, VIDEO or EXERCISE!"
		}

		if reqData.LessonType == "VIDEO" && strings.TrimSpace(reqData.VideoURL) == "" {
			errors["video_url"] = "Video URL is required for video lessons!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedLesson", reqData)
		return c.Next()
	}
}
