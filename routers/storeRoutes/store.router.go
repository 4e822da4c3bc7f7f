package storeRoutes

import (
	ratingController "rately/controllers/rating"
	storeController "rately/controllers/store"
	"rately/middleware"
	ratingValidator "rately/validators/rating"
	storeValidator "rately/validators/store"

	"github.com/gofiber/fiber/v2"
)

func SetupStoreRoutes(app *fiber.App) {
	storeGroup := app.Group("/stores", middleware.JWTMiddleware)

	storeGroup.Get("/", storeValidator.ListStores(), storeController.ListStores)
	storeGroup.Get("/:id", storeController.GetStore)
	storeGroup.Get("/:id/reviews", ratingController.ListStoreReviews)
	storeGroup.Post("/:id/ratings", ratingValidator.SubmitRating(), ratingController.SubmitRating)

	app.Post("/reviews/:id/helpful", middleware.JWTMiddleware, ratingController.MarkHelpful)
}
