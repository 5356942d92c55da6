package main

import (
	"lingua/config"
	"lingua/database"
	"lingua/middleware"
	adminRoutes "lingua/routers/adminRoutes"
	authRoutes "lingua/routers/authRoutes"
	examRoutes "lingua/routers/examRoutes"
	levelRoutes "lingua/routers/levelRoutes"
	progressRoutes "lingua/routers/progressRoutes"
	userRoutes "lingua/routers/userRoutes"
	"lingua/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"log"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE",     // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization", // Allowed headers
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	app.Use(middleware.RequestID)

	authRoutes.SetupAuthRoutes(app)
	userRoutes.SetupUserRoutes(app)
	levelRoutes.SetupLevelRoutes(app)
	progressRoutes.SetupProgressRoutes(app)
	examRoutes.SetupExamRoutes(app)
	adminRoutes.SetupAdminRoutes(app)

	utils.StartStatsDigest()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
