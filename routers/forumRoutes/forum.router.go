package forumRoutes

import (
	forumControllers "learnhub/controllers/forum"
	"learnhub/middleware"
	forumValidators "learnhub/validators/forum"

	"github.com/gofiber/fiber/v2"
)

func SetupForumRoutes(app *fiber.App) {
	forumGroup := app.Group("/forum")

	forumGroup.Get("/discussions", middleware.JWTMiddleware, forumControllers.GetDiscussions)
	forumGroup.Post("/discussions", middleware.JWTMiddleware, forumValidators.CreateDiscussion(), forumControllers.CreateDiscussion)
	forumGroup.Get("/discussions/:id", middleware.JWTMiddleware, forumValidators.DiscussionByID(), forumControllers.GetDiscussionDetail)
	forumGroup.Post("/discussions/:id/reply", middleware.JWTMiddleware, forumValidators.DiscussionByID(), forumValidators.CreateReply(), forumControllers.ReplyToDiscussion)
}
