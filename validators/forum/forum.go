package forumValidator

import (
	"learnhub/middleware"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// CreateDiscussion validates a new discussion payload
func CreateDiscussion() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title    string `json:"title"`
			Content  string `json:"content"`
			Category string `json:"category"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Title = strings.TrimSpace(reqData.Title)
		reqData.Content = strings.TrimSpace(reqData.Content)
		reqData.Category = strings.TrimSpace(strings.ToLower(reqData.Category))

		if reqData.Title == "" {
			errors["title"] = "Title is required!"
		} else if len(reqData.Title) > 200 {
			errors["title"] = "Title must not exceed 200 characters!"
		}

		if reqData.Content == "" {
			errors["content"] = "Content is required!"
		} else if len(reqData.Content) > 10000 {
			errors["content"] = "Content must not exceed 10000 characters!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedDiscussion", reqData)
		return c.Next()
	}
}

// DiscussionByID validates the :id route param
func DiscussionByID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("id"))
		if idStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Discussion ID is required!", nil)
		}

		discussionID, err := strconv.Atoi(idStr)
		if err != nil || discussionID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Discussion ID!", nil)
		}

		c.Locals("discussionID", discussionID)
		return c.Next()
	}
}

// CreateReply validates a reply payload
func CreateReply() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Content string `json:"content"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Content = strings.TrimSpace(reqData.Content)
		if reqData.Content == "" {
			return middleware.ValidationErrorResponse(c, map[string]string{"content": "Content is required!"})
		}
		if len(reqData.Content) > 10000 {
			return middleware.ValidationErrorResponse(c, map[string]string{"content": "Content must not exceed 10000 characters!"})
		}

		c.Locals("validatedReply", reqData)
		return c.Next()
	}
}
