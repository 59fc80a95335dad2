package courseValidator

import (
	"learnhub/middleware"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// NoteBody validates the note create/update payload
func NoteBody() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title   string `json:"title"`
			Content string `json:"content"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Title = strings.TrimSpace(reqData.Title)
		reqData.Content = strings.TrimSpace(reqData.Content)

		if reqData.Content == "" {
			errors["content"] = "Note content is required!"
		} else if len(reqData.Content) > 10000 {
			errors["content"] = "Note content must not exceed 10000 characters!"
		}

		if len(reqData.Title) > 200 {
			errors["title"] = "Title must not exceed 200 characters!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedNote", reqData)
		return c.Next()
	}
}

// NoteByID validates the :noteId route param
func NoteByID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		noteIDStr := strings.TrimSpace(c.Params("noteId"))
		if noteIDStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Note ID is required!", nil)
		}

		noteID, err := strconv.Atoi(noteIDStr)
		if err != nil || noteID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Note ID!", nil)
		}

		c.Locals("noteID", noteID)
		return c.Next()
	}
}
