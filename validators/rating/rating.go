package ratingValidator

import (
	"strings"

	"rately/middleware"

	"github.com/gofiber/fiber/v2"
)

// SubmitRating validator middleware
func SubmitRating() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Rating  int    `json:"rating"`
			Comment string `json:"comment"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Rating < 1 || reqData.Rating > 5 {
			errors["rating"] = "Rating must be between 1 and 5!"
		}
		if len(strings.TrimSpace(reqData.Comment)) > 1000 {
			errors["comment"] = "Comment must be at most 1000 characters long!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		return c.Next()
	}
}

// ReplyToReview validator middleware
func ReplyToReview() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Reply string `json:"reply"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Reply) == "" {
			errors["reply"] = "Reply cannot be empty!"
		}
		if len(reqData.Reply) > 1000 {
			errors["reply"] = "Reply must be at most 1000 characters long!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		return c.Next()
	}
}
