package progressController

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"lingua/database"
	"lingua/middleware"
	"lingua/services"
)

// engineError translates an engine failure into the response envelope.
func engineError(c *fiber.Ctx, err error) error {
	if services.IsStorageFailure(err) {
		log.Printf("Storage failure: %v", err)
	}
	return middleware.JsonResponse(c, services.HTTPStatus(err), false, services.Message(err), nil)
}

// PurchaseLevel enrolls the target user into a level and seeds the
// per-video progress rows.
func PurchaseLevel(c *fiber.Ctx) error {
	if _, ok := c.Locals("userId").(uint); !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	targetUserID := c.Locals("targetUserID").(uint)
	levelID := c.Locals("levelID").(uint)

	// Users can only purchase for themselves unless they're admin
	if !middleware.OwnerOrAdmin(c, targetUserID) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied!", nil)
	}

	enrollment, err := services.Enroll(database.Database.Db, targetUserID, levelID)
	if err != nil {
		return engineError(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Level purchased successfully!", enrollment)
}

// CompleteVideo marks a video completed, opening the next one and
// recomputing the final exam gate.
func CompleteVideo(c *fiber.Ctx) error {
	if _, ok := c.Locals("userId").(uint); !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	targetUserID := c.Locals("targetUserID").(uint)
	levelID := c.Locals("levelID").(uint)
	videoID := c.Locals("videoID").(uint)

	// Users can only update their own progress unless they're admin
	if !middleware.OwnerOrAdmin(c, targetUserID) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied!", nil)
	}

	outcome, err := services.CompleteVideo(database.Database.Db, targetUserID, levelID, videoID)
	if err != nil {
		return engineError(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Video completed successfully!", outcome)
}

// GetUserLevels reports the target user's progress across all purchased
// levels.
func GetUserLevels(c *fiber.Ctx) error {
	if _, ok := c.Locals("userId").(uint); !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	targetUserID := c.Locals("targetUserID").(uint)

	// Users can only access their own progress unless they're admin
	if !middleware.OwnerOrAdmin(c, targetUserID) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied!", nil)
	}

	progress, err := services.GetUserProgress(database.Database.Db, targetUserID)
	if err != nil {
		return engineError(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully!", progress)
}

// UpdateLevelProgress recounts completed videos and recomputes the final
// exam gate for one enrollment.
func UpdateLevelProgress(c *fiber.Ctx) error {
	if _, ok := c.Locals("userId").(uint); !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	targetUserID := c.Locals("targetUserID").(uint)
	levelID := c.Locals("levelID").(uint)

	if !middleware.OwnerOrAdmin(c, targetUserID) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied!", nil)
	}

	recount, err := services.RecountProgress(database.Database.Db, targetUserID, levelID)
	if err != nil {
		return engineError(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress updated successfully!", recount)
}
