package calendarValidator

import (
	"learnhub/middleware"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

// EventBody validates the event create/update payload
func EventBody() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title       string    `json:"title"`
			Description string    `json:"description"`
			EventType   string    `json:"event_type"`
			DueAt       time.Time `json:"due_at"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Title = strings.TrimSpace(reqData.Title)
		reqData.EventType = strings.TrimSpace(strings.ToUpper(reqData.EventType))

		if reqData.Title == "" {
			errors["title"] = "Title is required!"
		} else if len(reqData.Title) > 200 {
			errors["title"] = "Title must not exceed 200 characters!"
		}

		if reqData.EventType != "" && reqData.EventType != "TASK" && reqData.EventType != "DEADLINE" && reqData.EventType != "SESSION" {
			errors["event_type"] = "Event type must be TASK, DEADLINE or SESSION!"
		}

		if reqData.DueAt.IsZero() {
			errors["due_at"] = "Due date is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedEvent", reqData)
		return c.Next()
	}
}

// EventByID validates the :id route param
func EventByID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("id"))
		if idStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Event ID is required!", nil)
		}

		eventID, err := strconv.Atoi(idStr)
		if err != nil || eventID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Event ID!", nil)
		}

		c.Locals("eventID", eventID)
		return c.Next()
	}
}
