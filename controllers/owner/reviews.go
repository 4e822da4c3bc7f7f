package ownerController

import (
	"time"

	"rately/database"
	"rately/middleware"
	"rately/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ListReviews returns all reviews for the owner's store with an optional
// responded/pending filter and comment search.
func ListReviews(c *fiber.Ctx) error {
	store, err := ownedStore(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No store found for this account!", nil)
	}

	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	status := c.Query("status") // responded | pending
	search := c.Query("search")

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	db := database.Database.Db

	query := db.Model(&models.Rating{}).
		Where("store_id = ? AND is_deleted = ?", store.ID, false)

	switch status {
	case "responded":
		query = query.Where("reply <> ''")
	case "pending":
		query = query.Where("reply = ''")
	}
	if search != "" {
		query = query.Where("comment LIKE ?", "%"+search+"%")
	}

	var total int64
	query.Count(&total)

	var reviews []models.Rating
	if err := query.
		Preload("User", func(db *gorm.DB) *gorm.DB {
			return db.Select("id, name")
		}).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&reviews).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch reviews!", nil)
	}

	type ReviewResponse struct {
		models.Rating
		UserName  string `json:"userName"`
		Responded bool   `json:"responded"`
	}

	response := make([]ReviewResponse, len(reviews))
	for i, r := range reviews {
		response[i] = ReviewResponse{
			Rating:    r,
			UserName:  r.User.Name,
			Responded: r.Reply != "",
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Reviews fetched!", fiber.Map{
		"reviews": response,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// ReplyToReview records the owner's reply on a review of their store.
func ReplyToReview(c *fiber.Ctx) error {
	store, err := ownedStore(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No store found for this account!", nil)
	}

	reviewId, err := c.ParamsInt("id")
	if err != nil || reviewId < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid review id!", nil)
	}

	reqData := new(struct {
		Reply string `json:"reply"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}
	if reqData.Reply == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Reply cannot be empty!", nil)
	}

	db := database.Database.Db

	var review models.Rating
	if err := db.Where("id = ? AND is_deleted = ?", reviewId, false).First(&review).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Review not found!", nil)
	}

	// Owners can only reply on their own store's reviews
	if review.StoreID != store.ID {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You can only reply to reviews of your own store!", nil)
	}

	now := time.Now()
	review.Reply = reqData.Reply
	review.RepliedAt = &now

	if err := db.Save(&review).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save reply!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Reply saved!", review)
}
