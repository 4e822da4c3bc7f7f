package ratingController

import (
	"log"

	"rately/database"
	"rately/middleware"
	"rately/models"
	"rately/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SubmitRating records a 1-5 star rating with an optional comment. A user has
// at most one rating per store: resubmitting replaces the earlier value. The
// store's denormalized averageRating/totalRatings are recomputed from the
// ratings table inside the same transaction, so they are never stale.
func SubmitRating(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	storeId, err := c.ParamsInt("id")
	if err != nil || storeId < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid store id!", nil)
	}

	reqData := new(struct {
		Rating  int    `json:"rating"`
		Comment string `json:"comment"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if reqData.Rating < 1 || reqData.Rating > 5 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Rating must be between 1 and 5!", nil)
	}

	db := database.Database.Db

	// Check if store exists
	var store models.Store
	if err := db.Where("id = ? AND is_deleted = ?", storeId, false).First(&store).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Store not found!", nil)
	}

	var rating models.Rating
	err = db.Transaction(func(tx *gorm.DB) error {
		// Upsert the caller's rating for this store
		result := tx.Where("store_id = ? AND user_id = ?", store.ID, userId).First(&rating)
		if result.Error == nil {
			rating.Rating = reqData.Rating
			rating.Comment = reqData.Comment
			if err := tx.Save(&rating).Error; err != nil {
				return err
			}
		} else {
			rating = models.Rating{
				StoreID: store.ID,
				UserID:  userId,
				Rating:  reqData.Rating,
				Comment: reqData.Comment,
			}
			if err := tx.Create(&rating).Error; err != nil {
				return err
			}
		}

		return utils.RecomputeStoreAggregates(tx, store.ID)
	})
	if err != nil {
		log.Printf("Error submitting rating: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit rating!", nil)
	}

	go utils.NotifyRatingWebhook(rating)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Rating submitted successfully!", rating)
}

// ListStoreReviews returns a store's reviews, newest first, with reviewer
// names joined in.
func ListStoreReviews(c *fiber.Ctx) error {
	storeId, err := c.ParamsInt("id")
	if err != nil || storeId < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid store id!", nil)
	}

	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	db := database.Database.Db

	var total int64
	db.Model(&models.Rating{}).
		Where("store_id = ? AND is_deleted = ?", storeId, false).
		Count(&total)

	var reviews []models.Rating
	if err := db.Where("store_id = ? AND is_deleted = ?", storeId, false).
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
		UserName string `json:"userName"`
	}

	response := make([]ReviewResponse, len(reviews))
	for i, r := range reviews {
		response[i] = ReviewResponse{
			Rating:   r,
			UserName: r.User.Name,
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

// MarkHelpful increments a review's helpful counter.
func MarkHelpful(c *fiber.Ctx) error {
	reviewId, err := c.ParamsInt("id")
	if err != nil || reviewId < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid review id!", nil)
	}

	db := database.Database.Db

	var review models.Rating
	if err := db.Where("id = ? AND is_deleted = ?", reviewId, false).First(&review).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Review not found!", nil)
	}

	if err := db.Model(&review).UpdateColumn("helpful", gorm.Expr("helpful + 1")).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update review!", nil)
	}
	review.Helpful++

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Marked as helpful!", review)
}
