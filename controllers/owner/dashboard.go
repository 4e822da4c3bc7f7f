package ownerController

import (
	"rately/database"
	"rately/middleware"
	"rately/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ownedStore resolves the store belonging to the authenticated store owner.
func ownedStore(c *fiber.Ctx) (*models.Store, error) {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return nil, fiber.ErrUnauthorized
	}

	var store models.Store
	if err := database.Database.Db.Where("owner_id = ? AND is_deleted = ?", userId, false).First(&store).Error; err != nil {
		return nil, err
	}
	return &store, nil
}

// Dashboard returns the owner's store with its aggregates, open state and the
// most recent reviews.
func Dashboard(c *fiber.Ctx) error {
	store, err := ownedStore(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No store found for this account!", nil)
	}

	db := database.Database.Db

	var recentReviews []models.Rating
	if err := db.Where("store_id = ? AND is_deleted = ?", store.ID, false).
		Preload("User", func(db *gorm.DB) *gorm.DB {
			return db.Select("id, name")
		}).
		Order("created_at DESC").
		Limit(5).
		Find(&recentReviews).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch reviews!", nil)
	}

	type RecentReview struct {
		models.Rating
		UserName  string `json:"userName"`
		Responded bool   `json:"responded"`
	}

	reviews := make([]RecentReview, len(recentReviews))
	for i, r := range recentReviews {
		reviews[i] = RecentReview{
			Rating:    r,
			UserName:  r.User.Name,
			Responded: r.Reply != "",
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Owner dashboard fetched!", fiber.Map{
		"store":         store,
		"isOpen":        store.BusinessHours.Data().OpenNow(),
		"recentReviews": reviews,
	})
}
