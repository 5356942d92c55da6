package adminRoutes

import (
	"github.com/gofiber/fiber/v2"

	adminController "lingua/controllers/admin"
	"lingua/middleware"
	userValidator "lingua/validators/user"
)

// SetupAdminRoutes sets up the admin statistics routes
func SetupAdminRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin", middleware.JWTMiddleware, middleware.RoleRequired("admin"))

	adminGroup.Get("/statistics", adminController.PlatformStatistics)
	adminGroup.Get("/users/:id/statistics", userValidator.UserIDParam(), adminController.UserStatistics)
}
