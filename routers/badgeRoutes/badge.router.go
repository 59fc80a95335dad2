package badgeRoutes

import (
	badgeControllers "learnhub/controllers/badge"
	"learnhub/middleware"
	badgeValidators "learnhub/validators/badge"

	"github.com/gofiber/fiber/v2"
)

func SetupBadgeRoutes(app *fiber.App) {
	badgeGroup := app.Group("/badges")

	badgeGroup.Get("/catalog", middleware.JWTMiddleware, badgeControllers.GetBadgeCatalog)

	userGroup := app.Group("/user")
	userGroup.Get("/achievements", middleware.JWTMiddleware, badgeControllers.GetUserAchievements)

	adminGroup := app.Group("/admin/badge", middleware.JWTMiddleware, middleware.CheckPermissionMiddleware("manage-badges"))
	adminGroup.Post("/create", badgeValidators.CreateBadge(), badgeControllers.AdminCreateBadge)
}
