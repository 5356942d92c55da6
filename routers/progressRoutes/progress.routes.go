package progressRoutes

import (
	"github.com/gofiber/fiber/v2"

	progressController "lingua/controllers/progress"
	"lingua/middleware"
	progressValidator "lingua/validators/progress"
)

// SetupProgressRoutes sets up purchase and progression routes
func SetupProgressRoutes(app *fiber.App) {
	userGroup := app.Group("/users")

	userGroup.Get("/:id/levels", middleware.JWTMiddleware, progressValidator.UserIDParam(), progressController.GetUserLevels)
	userGroup.Post("/:id/levels/:levelId/purchase", middleware.JWTMiddleware, progressValidator.UserLevelParams(), progressController.PurchaseLevel)
	userGroup.Patch("/:id/levels/:levelId/update_progress", middleware.JWTMiddleware, progressValidator.UserLevelParams(), progressController.UpdateLevelProgress)
	userGroup.Patch("/:id/levels/:levelId/videos/:videoId/complete", middleware.JWTMiddleware, progressValidator.CompleteVideoParams(), progressController.CompleteVideo)
}
