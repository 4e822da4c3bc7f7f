package ownerController

import (
	"rately/middleware"

	"github.com/gofiber/fiber/v2"
)

// Analytics serves the demo analytics block. The numbers are static demo
// content, not derived from the tables; only the review and rating figures
// have live counterparts elsewhere in the API.
func Analytics(c *fiber.Ctx) error {
	if _, err := ownedStore(c); err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No store found for this account!", nil)
	}

	analytics := fiber.Map{
		"totalViews":    15247,
		"totalReviews":  128,
		"averageRating": 4.5,
		"responseRate":  98,
		"monthlyGrowth": 12.5,
		"weeklyStats": []fiber.Map{
			{"day": "Mon", "views": 234, "reviews": 5},
			{"day": "Tue", "views": 456, "reviews": 8},
			{"day": "Wed", "views": 123, "reviews": 3},
			{"day": "Thu", "views": 567, "reviews": 12},
			{"day": "Fri", "views": 890, "reviews": 15},
			{"day": "Sat", "views": 1234, "reviews": 18},
			{"day": "Sun", "views": 678, "reviews": 9},
		},
		"topKeywords": []string{"fresh produce", "organic", "customer service", "quality", "prices"},
		"sentimentAnalysis": fiber.Map{
			"positive": 75,
			"neutral":  20,
			"negative": 5,
		},
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Analytics fetched!", analytics)
}
