package badgeController

import (
	"learnhub/database"
	"learnhub/middleware"
	"learnhub/models"

	"github.com/gofiber/fiber/v2"
)

// GetUserAchievements lists the caller's badge grants with catalog details
func GetUserAchievements(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var grants []models.UserBadge
	if err := database.Database.Db.Where("user_id = ? AND is_deleted = ?", userID, false).
		Preload("Badge").Order("earned_at desc").Find(&grants).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch achievements!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Achievements fetched successfully!", fiber.Map{
		"achievements": grants,
		"total":        len(grants),
	})
}

// GetBadgeCatalog lists all grantable badges
func GetBadgeCatalog(c *fiber.Ctx) error {
	var badges []models.Badge
	if err := database.Database.Db.Where("is_deleted = ?", false).Order("category asc, tier asc").Find(&badges).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch badges!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Badges fetched successfully!", badges)
}

// AdminCreateBadge adds a badge to the catalog
func AdminCreateBadge(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedBadge").(*struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Tier        string `json:"tier"`
		Category    string `json:"category"`
		Icon        string `json:"icon"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request!", nil)
	}

	badge := models.Badge{
		Name:        reqData.Name,
		Description: reqData.Description,
		Tier:        reqData.Tier,
		Category:    reqData.Category,
		Icon:        reqData.Icon,
	}

	if err := database.Database.Db.Create(&badge).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create badge!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Badge created successfully!", badge)
}
