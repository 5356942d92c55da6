package userController

import (
	"github.com/gofiber/fiber/v2"

	"lingua/database"
	"lingua/middleware"
	"lingua/models"
	userValidator "lingua/validators/user"
)

// GetUser returns a user profile. Clients may only read their own.
func GetUser(c *fiber.Ctx) error {
	if _, ok := c.Locals("userId").(uint); !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	targetUserID := c.Locals("targetUserID").(uint)
	if !middleware.OwnerOrAdmin(c, targetUserID) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied!", nil)
	}

	var user models.User
	if err := database.Database.Db.First(&user, targetUserID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User fetched successfully!", fiber.Map{
		"id":      user.ID,
		"name":    user.Name,
		"email":   user.Email,
		"role":    user.Role,
		"picture": user.Picture,
	})
}

// UpdateUser updates name and picture. Only admins may change roles.
func UpdateUser(c *fiber.Ctx) error {
	if _, ok := c.Locals("userId").(uint); !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	targetUserID := c.Locals("targetUserID").(uint)
	if !middleware.OwnerOrAdmin(c, targetUserID) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied!", nil)
	}

	reqData, ok := c.Locals("validatedUpdateUser").(*userValidator.UpdateUserRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var user models.User
	if err := database.Database.Db.First(&user, targetUserID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	if reqData.Name != "" {
		user.Name = reqData.Name
	}
	if reqData.Picture != "" {
		user.Picture = reqData.Picture
	}
	role, _ := c.Locals("role").(string)
	if role == models.RoleAdmin && reqData.Role != "" {
		user.Role = reqData.Role
	}

	if err := database.Database.Db.Save(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update user!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User updated successfully!", fiber.Map{
		"id":      user.ID,
		"name":    user.Name,
		"email":   user.Email,
		"role":    user.Role,
		"picture": user.Picture,
	})
}
