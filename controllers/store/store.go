package storeController

import (
	"rately/database"
	"rately/middleware"
	"rately/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// StoreResponse is a store row plus the values derived for display.
type StoreResponse struct {
	models.Store
	IsOpen   bool `json:"isOpen"`
	MyRating int  `json:"myRating"` // 0 means the caller has not rated the store
}

func toStoreResponse(store models.Store, userId uint, db *gorm.DB) StoreResponse {
	return StoreResponse{
		Store:    store,
		IsOpen:   store.BusinessHours.Data().OpenNow(),
		MyRating: userRatingFor(db, store.ID, userId),
	}
}

// userRatingFor returns the caller's rating for a store, or 0 when unrated.
func userRatingFor(db *gorm.DB, storeId, userId uint) int {
	var rating models.Rating
	if err := db.Where("store_id = ? AND user_id = ? AND is_deleted = ?", storeId, userId, false).
		First(&rating).Error; err != nil {
		return 0
	}
	return rating.Rating
}

// ListStores returns the store directory with search, category and minimum
// rating filters and sorting by rating, review count or name.
func ListStores(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	search := c.Query("search")
	category := c.Query("category")
	minRating := c.Query("rating") // "4+" or "3+"
	sortBy := c.Query("sortBy", "rating")
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 20)

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	offset := (page - 1) * limit

	db := database.Database.Db

	query := db.Model(&models.Store{}).Where("is_deleted = ?", false)

	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where("name LIKE ? OR email LIKE ? OR address LIKE ?", pattern, pattern, pattern)
	}
	if category != "" && category != "all" {
		query = query.Where("category = ?", category)
	}
	switch minRating {
	case "4+":
		query = query.Where("average_rating >= ?", 4.0)
	case "3+":
		query = query.Where("average_rating >= ?", 3.0)
	}

	switch sortBy {
	case "reviews":
		query = query.Order("total_ratings DESC")
	case "name":
		query = query.Order("name ASC")
	default:
		query = query.Order("average_rating DESC")
	}

	var total int64
	query.Count(&total)

	var stores []models.Store
	if err := query.Offset(offset).Limit(limit).Find(&stores).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch stores!", nil)
	}

	response := make([]StoreResponse, len(stores))
	for i, store := range stores {
		response[i] = toStoreResponse(store, userId, db)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Stores fetched!", fiber.Map{
		"stores": response,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// GetStore returns a single store with its derived display values.
func GetStore(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	storeId, err := c.ParamsInt("id")
	if err != nil || storeId < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid store id!", nil)
	}

	db := database.Database.Db

	var store models.Store
	if err := db.Where("id = ? AND is_deleted = ?", storeId, false).First(&store).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Store not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Store fetched!", toStoreResponse(store, userId, db))
}
