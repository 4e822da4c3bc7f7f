package ownerRoutes

import (
	ownerController "rately/controllers/owner"
	"rately/middleware"
	"rately/models"
	ratingValidator "rately/validators/rating"

	"github.com/gofiber/fiber/v2"
)

func SetupOwnerRoutes(app *fiber.App) {
	ownerGroup := app.Group("/owner", middleware.JWTMiddleware, middleware.RequireRole(models.RoleStoreOwner))

	ownerGroup.Get("/dashboard", ownerController.Dashboard)
	ownerGroup.Get("/reviews", ownerController.ListReviews)
	ownerGroup.Post("/reviews/:id/reply", ratingValidator.ReplyToReview(), ownerController.ReplyToReview)
	ownerGroup.Get("/analytics", ownerController.Analytics)
}
