package assessmentValidator

import (
	"learnhub/middleware"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// GenerateAssessment validates the difficulty payload
func GenerateAssessment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Difficulty string `json:"difficulty"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Difficulty = strings.TrimSpace(strings.ToLower(reqData.Difficulty))
		if reqData.Difficulty == "" {
			reqData.Difficulty = "beginner"
		}

		if reqData.Difficulty != "beginner" && reqData.Difficulty != "intermediate" && reqData.Difficulty != "advanced" {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"difficulty": "Difficulty must be beginner, intermediate or advanced!",
			})
		}

		c.Locals("validatedGenerate", reqData)
		return c.Next()
	}
}

// SubmitAssessment validates the :assessmentId param and the answers payload
func SubmitAssessment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		assessmentID := strings.TrimSpace(c.Params("assessmentId"))
		if assessmentID == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Assessment ID is required!", nil)
		}

		reqData := new(struct {
			Answers map[string]int `json:"answers"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if len(reqData.Answers) == 0 {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"answers": "Answers are required!",
			})
		}

		for _, choice := range reqData.Answers {
			if choice < 0 || choice > 3 {
				return middleware.ValidationErrorResponse(c, map[string]string{
					"answers": "Answer choices must be between 0 and 3!",
				})
			}
		}

		c.Locals("assessmentID", assessmentID)
		c.Locals("validatedSubmit", reqData)
		return c.Next()
	}
}
