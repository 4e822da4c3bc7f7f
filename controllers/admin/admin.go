package adminController

import (
	"rately/database"
	"rately/middleware"
	"rately/models"

	"github.com/gofiber/fiber/v2"
)

// Overview returns the platform-wide totals for the admin dashboard. The
// average rating is computed live from the ratings table.
func Overview(c *fiber.Ctx) error {
	db := database.Database.Db

	var totalUsers, totalStores, totalRatings int64
	db.Model(&models.User{}).Where("is_deleted = ?", false).Count(&totalUsers)
	db.Model(&models.Store{}).Where("is_deleted = ?", false).Count(&totalStores)
	db.Model(&models.Rating{}).Where("is_deleted = ?", false).Count(&totalRatings)

	var averageRating float64
	db.Model(&models.Rating{}).
		Where("is_deleted = ?", false).
		Select("COALESCE(AVG(rating), 0)").
		Scan(&averageRating)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Overview fetched!", fiber.Map{
		"totalUsers":    totalUsers,
		"totalStores":   totalStores,
		"totalRatings":  totalRatings,
		"averageRating": averageRating,
	})
}

// ListUsers returns the user table with search over name/email/address and an
// optional role filter.
func ListUsers(c *fiber.Ctx) error {
	search := c.Query("search")
	role := c.Query("role")
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

	query := db.Model(&models.User{}).Where("is_deleted = ?", false)

	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where("name LIKE ? OR email LIKE ? OR address LIKE ?", pattern, pattern, pattern)
	}
	if role != "" && role != "all" {
		query = query.Where("role = ?", role)
	}

	var total int64
	query.Count(&total)

	var users []models.User
	if err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&users).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch users!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Users fetched!", fiber.Map{
		"users": users,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// ListStores returns the store table with search over name/email/address.
func ListStores(c *fiber.Ctx) error {
	search := c.Query("search")
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

	var total int64
	query.Count(&total)

	var stores []models.Store
	if err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&stores).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch stores!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Stores fetched!", fiber.Map{
		"stores": stores,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}
