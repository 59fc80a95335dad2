package main

import (
	"learnhub/config"
	assessmentControllers "learnhub/controllers/assessment"
	courseControllers "learnhub/controllers/course"
	"learnhub/database"
	"learnhub/llm"
	assessmentRoutes "learnhub/routers/assessmentRoutes"
	authRoutes "learnhub/routers/authRoutes"
	badgeRoutes "learnhub/routers/badgeRoutes"
	calendarRoutes "learnhub/routers/calendarRoutes"
	courseRoutes "learnhub/routers/courseRoutes"
	forumRoutes "learnhub/routers/forumRoutes"
	userProfileRoutes "learnhub/routers/userRoutes"
	"learnhub/services"
	"learnhub/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"log"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	// The LLM provider is optional: without an API key, assessments fall
	// back to placeholder questions and material generation returns 502.
	var provider llm.Provider
	if config.AppConfig.OpenAIKey != "" {
		p, err := llm.NewOpenAIProvider(llm.OpenAIConfig{
			APIKey:  config.AppConfig.OpenAIKey,
			BaseURL: config.AppConfig.OpenAIBaseURL,
			Model:   config.AppConfig.OpenAIModel,
		})
		if err != nil {
			log.Printf("LLM provider disabled: %v", err)
		} else {
			provider = p
		}
	} else {
		log.Println("No OPENAI_API_KEY set, LLM features run degraded")
	}

	db := database.Database.Db
	progressService := services.NewProgressService(db, services.BadgeSingleGrant, utils.SendCertificateEmail)
	assessmentService := services.NewAssessmentService(db, provider, progressService)
	materialService := services.NewMaterialService(db, provider)

	courseControllers.Setup(progressService, materialService)
	assessmentControllers.Setup(assessmentService)

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE",  // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization", // Allowed headers
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve static files from the public folder
	app.Static("/", "./public")
	app.Static("/uploads", config.AppConfig.UploadDir)

	authRoutes.SetupAuthRoutes(app)
	userProfileRoutes.SetupUserRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	courseRoutes.SetupAdminCourseRoutes(app)
	assessmentRoutes.SetupAssessmentRoutes(app)
	forumRoutes.SetupForumRoutes(app)
	calendarRoutes.SetupCalendarRoutes(app)
	badgeRoutes.SetupBadgeRoutes(app)

	utils.StartScheduler(assessmentService)

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
