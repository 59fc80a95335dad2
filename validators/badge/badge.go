package badgeValidator

import (
	"learnhub/middleware"
	"strings"

	"github.com/gofiber/fiber/v2"
)

var validTiers = map[string]bool{"BRONZE": true, "SILVER": true, "GOLD": true, "PLATINUM": true}

// CreateBadge validates the admin badge creation payload
func CreateBadge() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name        string `json:"name"`
			Description string `json:"description"`
			Tier        string `json:"tier"`
			Category    string `json:"category"`
			Icon        string `json:"icon"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Name = strings.TrimSpace(reqData.Name)
		reqData.Tier = strings.TrimSpace(strings.ToUpper(reqData.Tier))
		reqData.Category = strings.TrimSpace(strings.ToLower(reqData.Category))

		if reqData.Name == "" {
			errors["name"] = "Name is required!"
		} else if len(reqData.Name) > 100 {
			errors["name"] = "Name must not exceed 100 characters!"
		}

		if reqData.Tier == "" {
			reqData.Tier = "BRONZE"
		} else if !validTiers[reqData.Tier] {
			errors["tier"] = "Tier must be BRONZE, SILVER, GOLD or PLATINUM!"
		}

		if reqData.Category == "" {
			errors["category"] = "Category is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedBadge", reqData)
		return c.Next()
	}
}
