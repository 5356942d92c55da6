package userValidator

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"lingua/middleware"
)

// UserIDParam validates the :id path parameter.
func UserIDParam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userIDStr := strings.TrimSpace(c.Params("id"))
		if userIDStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "User ID is required!", nil)
		}

		userID, err := strconv.Atoi(userIDStr)
		if err != nil || userID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid User ID!", nil)
		}

		c.Locals("targetUserID", uint(userID))
		return c.Next()
	}
}

// UpdateUserRequest is the validated profile update payload. All fields
// are optional; empty means keep the current value.
type UpdateUserRequest struct {
	Name    string `json:"name"`
	Picture string `json:"picture"`
	Role    string `json:"role"`
}

func UpdateUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateUserRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.Role != "" && reqData.Role != "client" && reqData.Role != "admin" {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"role": "Role must be client or admin!",
			})
		}

		c.Locals("validatedUpdateUser", reqData)
		return c.Next()
	}
}
