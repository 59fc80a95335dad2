package userRoutes

import (
	userControllers "learnhub/controllers/userControllers"
	"learnhub/middleware"
	userValidators "learnhub/validators/user"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App) {
	userGroup := app.Group("/user")

	userGroup.Get("/profile", middleware.JWTMiddleware, userControllers.GetProfile)
	userGroup.Patch("/profile", middleware.JWTMiddleware, userValidators.UpdateProfile(), userControllers.UpdateProfile)
	userGroup.Post("/profile/avatar", middleware.JWTMiddleware, userControllers.UploadAvatar)
}
