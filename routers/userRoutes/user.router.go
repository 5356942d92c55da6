package userRoutes

import (
	"github.com/gofiber/fiber/v2"

	userController "lingua/controllers/user"
	"lingua/middleware"
	userValidator "lingua/validators/user"
)

// SetupUserRoutes sets up user profile routes
func SetupUserRoutes(app *fiber.App) {
	userGroup := app.Group("/users")

	userGroup.Get("/:id", middleware.JWTMiddleware, userValidator.UserIDParam(), userController.GetUser)
	userGroup.Put("/:id", middleware.JWTMiddleware, userValidator.UserIDParam(), userValidator.UpdateUser(), userController.UpdateUser)
}
