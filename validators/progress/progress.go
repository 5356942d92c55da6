package progressValidator

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"lingua/middleware"
)

func parseIDParam(c *fiber.Ctx, name string) (uint, bool) {
	raw := strings.TrimSpace(c.Params(name))
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, false
	}
	return uint(id), true
}

// UserIDParam validates the :id path parameter.
func UserIDParam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := parseIDParam(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid User ID!", nil)
		}

		c.Locals("targetUserID", userID)
		return c.Next()
	}
}

// UserLevelParams validates the :id and :levelId path parameters.
func UserLevelParams() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := parseIDParam(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid User ID!", nil)
		}
		levelID, ok := parseIDParam(c, "levelId")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Level ID!", nil)
		}

		c.Locals("targetUserID", userID)
		c.Locals("levelID", levelID)
		return c.Next()
	}
}

// CompleteVideoParams validates the :id, :levelId and :videoId path
// parameters.
func CompleteVideoParams() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := parseIDParam(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid User ID!", nil)
		}
		levelID, ok := parseIDParam(c, "levelId")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Level ID!", nil)
		}
		videoID, ok := parseIDParam(c, "videoId")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Video ID!", nil)
		}

		c.Locals("targetUserID", userID)
		c.Locals("levelID", levelID)
		c.Locals("videoID", videoID)
		return c.Next()
	}
}
