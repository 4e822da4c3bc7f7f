package storeValidator

import (
	"rately/middleware"

	"github.com/gofiber/fiber/v2"
)

// ListStores validator middleware checks the directory query parameters.
func ListStores() fiber.Handler {
	return func(c *fiber.Ctx) error {
		errors := make(map[string]string)

		switch c.Query("sortBy", "rating") {
		case "rating", "reviews", "name":
		default:
			errors["sortBy"] = "sortBy must be one of rating, reviews or name!"
		}

		switch c.Query("rating") {
		case "", "all", "4+", "3+":
		default:
			errors["rating"] = "rating filter must be 4+ or 3+!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		return c.Next()
	}
}
