package middleware

import (
	"wealthgenius/database"
	"wealthgenius/models"

	"github.com/gofiber/fiber/v2"
)

// CurrentUser loads the authenticated user set by JWTMiddleware.
// Returns nil when the token is missing or the account is gone/inactive.
func CurrentUser(c *fiber.Ctx) *models.User {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return nil
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_active = ?", userID, true).First(&user).Error; err != nil {
		return nil
	}
	return &user
}

// IsOwnerOrAdmin decides whether the caller may touch a resource owned
// by ownerID. Admins always pass; everyone else must own the record.
func IsOwnerOrAdmin(user *models.User, ownerID uint) bool {
	if user == nil {
		return false
	}
	if user.Role == models.RoleAdmin {
		return true
	}
	return user.ID == ownerID
}

// RequireAdmin allows only admin accounts through
func RequireAdmin(c *fiber.Ctx) error {
	user := CurrentUser(c)
	if user == nil {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	if user.Role != models.RoleAdmin {
		return JsonResponse(c, fiber.StatusForbidden, false, "You do not have permission to access this resource!", nil)
	}

	c.Locals("currentUser", user)
	return c.Next()
}

// RequireStaff allows instructor and admin accounts through
func RequireStaff(c *fiber.Ctx) error {
	user := CurrentUser(c)
	if user == nil {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	if user.Role != models.RoleAdmin && user.Role != models.RoleInstructor {
		return JsonResponse(c, fiber.StatusForbidden, false, "You do not have permission to access this resource!", nil)
	}

	c.Locals("currentUser", user)
	return c.Next()
}
