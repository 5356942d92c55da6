package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// RoleRequired returns a middleware that checks the role claim set by
// JWTMiddleware against the required role. Admins pass every check.
func RoleRequired(requiredRole string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("role").(string)
		if !ok {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized: role not found", nil)
		}

		if role != requiredRole && role != "admin" {
			return JsonResponse(c, fiber.StatusForbidden, false, "You do not have permission to access this resource!", nil)
		}

		return c.Next()
	}
}

// OwnerOrAdmin reports whether the acting user may operate on the target
// user's records. Clients may only act on themselves.
func OwnerOrAdmin(c *fiber.Ctx, targetUserID uint) bool {
	role, _ := c.Locals("role").(string)
	if role == "admin" {
		return true
	}
	userID, ok := c.Locals("userId").(uint)
	return ok && userID == targetUserID
}
