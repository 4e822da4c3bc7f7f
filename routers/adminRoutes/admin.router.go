package adminRoutes

import (
	adminController "rately/controllers/admin"
	"rately/middleware"
	"rately/models"

	"github.com/gofiber/fiber/v2"
)

func SetupAdminRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin))

	adminGroup.Get("/overview", adminController.Overview)
	adminGroup.Get("/users", adminController.ListUsers)
	adminGroup.Get("/stores", adminController.ListStores)
}
