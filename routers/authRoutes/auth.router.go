package authRoutes

import (
	"github.com/gofiber/fiber/v2"

	authController "lingua/controllers/auth"
	authValidator "lingua/validators/auth"
)

// SetupAuthRoutes sets up registration and login routes
func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/auth")

	authGroup.Post("/register", authValidator.Register(), authController.Register)
	authGroup.Post("/login", authValidator.Login(), authController.Login)
}
