package levelRoutes

import (
	"github.com/gofiber/fiber/v2"

	levelController "lingua/controllers/level"
	"lingua/middleware"
	levelValidator "lingua/validators/level"
)

// SetupLevelRoutes sets up catalog routes for clients and admins
func SetupLevelRoutes(app *fiber.App) {
	levelGroup := app.Group("/levels")

	// Catalog browsing (any authenticated user)
	levelGroup.Get("/", middleware.JWTMiddleware, levelController.GetLevels)
	levelGroup.Get("/:id", middleware.JWTMiddleware, levelValidator.LevelIDParam(), levelController.GetLevel)

	// Level management (admin only)
	levelGroup.Post("/", middleware.JWTMiddleware, middleware.RoleRequired("admin"), levelValidator.CreateLevel(), levelController.CreateLevel)
	levelGroup.Put("/:id", middleware.JWTMiddleware, middleware.RoleRequired("admin"), levelValidator.LevelIDParam(), levelValidator.UpdateLevel(), levelController.UpdateLevel)
	levelGroup.Delete("/:id", middleware.JWTMiddleware, middleware.RoleRequired("admin"), levelValidator.LevelIDParam(), levelController.DeleteLevel)

	// Video management (admin only)
	levelGroup.Post("/:id/videos", middleware.JWTMiddleware, middleware.RoleRequired("admin"), levelValidator.LevelIDParam(), levelValidator.VideoBody(), levelController.AddVideo)

	videoGroup := app.Group("/videos")
	videoGroup.Put("/:id", middleware.JWTMiddleware, middleware.RoleRequired("admin"), levelValidator.VideoIDParam(), levelValidator.VideoBody(), levelController.UpdateVideo)
	videoGroup.Delete("/:id", middleware.JWTMiddleware, middleware.RoleRequired("admin"), levelValidator.VideoIDParam(), levelController.DeleteVideo)
}
