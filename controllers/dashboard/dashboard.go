package dashboardController

import (
	"log"

	"rately/database"
	"rately/middleware"
	"rately/models"

	"github.com/gofiber/fiber/v2"
)

// Resolve maps the caller's role to exactly one dashboard view. This is the
// single dispatch point for role-based display: admins get the platform
// overview, regular users the store browser, store owners their store page.
func Resolve(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ? AND is_deleted = ?", userId, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	switch user.Role {
	case models.RoleAdmin:
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard resolved.", fiber.Map{
			"view": "admin",
			"user": user,
		})
	case models.RoleUser:
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard resolved.", fiber.Map{
			"view": "user",
			"user": user,
		})
	case models.RoleStoreOwner:
		var store models.Store
		if err := db.Where("owner_id = ? AND is_deleted = ?", user.ID, false).First(&store).Error; err != nil {
			// Owner account without a store: fall back to the user view
			return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard resolved.", fiber.Map{
				"view": "user",
				"user": user,
			})
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard resolved.", fiber.Map{
			"view":  "store_owner",
			"user":  user,
			"store": store,
		})
	default:
		log.Printf("User %d has unknown role %q", user.ID, user.Role)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Unknown role!", nil)
	}
}
