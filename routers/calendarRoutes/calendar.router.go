package calendarRoutes

import (
	calendarControllers "learnhub/controllers/calendar"
	"learnhub/middleware"
	calendarValidators "learnhub/validators/calendar"

	"github.com/gofiber/fiber/v2"
)

func SetupCalendarRoutes(app *fiber.App) {
	eventGroup := app.Group("/calendar/events")

	eventGroup.Get("/", middleware.JWTMiddleware, calendarControllers.GetEvents)
	eventGroup.Post("/", middleware.JWTMiddleware, calendarValidators.EventBody(), calendarControllers.CreateEvent)
	eventGroup.Put("/:id", middleware.JWTMiddleware, calendarValidators.EventByID(), calendarValidators.EventBody(), calendarControllers.UpdateEvent)
	eventGroup.Patch("/:id/complete", middleware.JWTMiddleware, calendarValidators.EventByID(), calendarControllers.CompleteEvent)
	eventGroup.Delete("/:id", middleware.JWTMiddleware, calendarValidators.EventByID(), calendarControllers.DeleteEvent)
}
