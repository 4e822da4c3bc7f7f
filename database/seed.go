package database

import (
	"log"
	"time"

	"rately/config"
	"rately/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// DemoPassword is the login password for every seeded account.
const DemoPassword = "Welcome@1"

func date(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		log.Fatalf("Bad seed date %q: %v", value, err)
	}
	return t
}

// SeedDemoData loads the demo users, stores and ratings into an empty
// database. A database that already has stores is left untouched.
func SeedDemoData(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Store{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	log.Println("Seeding demo data...")

	hashed, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), config.AppConfig.SaltRound)
	if err != nil {
		return err
	}
	password := string(hashed)

	storeOne := uint(1)
	storeTwo := uint(2)

	users := []models.User{
		{
			Model:    gorm.Model{ID: 1, CreatedAt: date("2024-01-15")},
			Name:     "Sarah Johnson",
			Email:    "admin@storerating.com",
			Address:  "123 Admin Street, New York, NY 10001",
			Role:     models.RoleAdmin,
			Password: password,
		},
		{
			Model:    gorm.Model{ID: 2, CreatedAt: date("2024-02-10")},
			Name:     "Mike Chen",
			Email:    "mike.chen@email.com",
			Address:  "456 Oak Avenue, Los Angeles, CA 90210",
			Role:     models.RoleUser,
			Password: password,
		},
		{
			Model:    gorm.Model{ID: 3, CreatedAt: date("2024-01-20")},
			Name:     "Srikanth Reddy",
			Email:    "srikanth@freshmarket.com",
			Address:  "789 Market Street, San Francisco, CA 94102",
			Role:     models.RoleStoreOwner,
			StoreID:  &storeOne,
			Password: password,
		},
		{
			Model:    gorm.Model{ID: 4, CreatedAt: date("2024-02-15")},
			Name:     "David Kim",
			Email:    "david.kim@email.com",
			Address:  "321 Pine Road, Seattle, WA 98101",
			Role:     models.RoleUser,
			Password: password,
		},
		{
			Model:    gorm.Model{ID: 5, CreatedAt: date("2024-01-25")},
			Name:     "Lisa Thompson",
			Email:    "lisa@techstore.com",
			Address:  "654 Tech Boulevard, Austin, TX 78701",
			Role:     models.RoleStoreOwner,
			StoreID:  &storeTwo,
			Password: password,
		},
	}

	stores := []models.Store{
		{
			Model:         gorm.Model{ID: 1, CreatedAt: date("2024-01-20")},
			Name:          "Fresh Market Grocery",
			Email:         "contact@freshmarket.com",
			Address:       "789 Market Street, San Francisco, CA 94102",
			OwnerID:       3,
			AverageRating: 4.5,
			TotalRatings:  128,
			Category:      "Grocery",
			Description:   "Premium organic groceries and fresh produce with locally sourced ingredients",
			Phone:         "+1 (415) 555-0123",
			Website:       "https://freshmarket.com",
			BusinessHours: datatypes.NewJSONType(models.BusinessHours{
				"monday":    {Open: "08:00", Close: "22:00"},
				"tuesday":   {Open: "08:00", Close: "22:00"},
				"wednesday": {Open: "08:00", Close: "22:00"},
				"thursday":  {Open: "08:00", Close: "22:00"},
				"friday":    {Open: "08:00", Close: "23:00"},
				"saturday":  {Open: "09:00", Close: "23:00"},
				"sunday":    {Open: "09:00", Close: "21:00"},
			}),
			Images: datatypes.NewJSONSlice([]string{"photo-1500673922987-e212871fec22", "photo-1518495973542-4542c06a5843"}),
		},
		{
			Model:         gorm.Model{ID: 2, CreatedAt: date("2024-01-25")},
			Name:          "Tech Zone Electronics",
			Email:         "info@techstore.com",
			Address:       "654 Tech Boulevard, Austin, TX 78701",
			OwnerID:       5,
			AverageRating: 4.2,
			TotalRatings:  89,
			Category:      "Electronics",
			Description:   "Latest gadgets, computers, and tech accessories with expert support",
			Phone:         "+1 (512) 555-0456",
			Website:       "https://techzone.com",
			BusinessHours: datatypes.NewJSONType(models.BusinessHours{
				"monday":    {Open: "10:00", Close: "21:00"},
				"tuesday":   {Open: "10:00", Close: "21:00"},
				"wednesday": {Open: "10:00", Close: "21:00"},
				"thursday":  {Open: "10:00", Close: "21:00"},
				"friday":    {Open: "10:00", Close: "22:00"},
				"saturday":  {Open: "10:00", Close: "22:00"},
				"sunday":    {Open: "12:00", Close: "19:00"},
			}),
			Images: datatypes.NewJSONSlice([]string{"photo-1488590528505-98d2b5aba04b", "photo-1581091226825-a6a2a5aee158"}),
		},
		{
			Model:         gorm.Model{ID: 3, CreatedAt: date("2024-02-01")},
			Name:          "Downtown Coffee House",
			Email:         "hello@downtowncoffee.com",
			Address:       "123 Main Street, Chicago, IL 60601",
			OwnerID:       6,
			AverageRating: 4.8,
			TotalRatings:  256,
			Category:      "Food & Beverage",
			Description:   "Artisan coffee, fresh pastries, and cozy atmosphere in the heart of downtown",
			Phone:         "+1 (312) 555-0789",
			BusinessHours: datatypes.NewJSONType(models.BusinessHours{
				"monday":    {Open: "06:00", Close: "20:00"},
				"tuesday":   {Open: "06:00", Close: "20:00"},
				"wednesday": {Open: "06:00", Close: "20:00"},
				"thursday":  {Open: "06:00", Close: "20:00"},
				"friday":    {Open: "06:00", Close: "21:00"},
				"saturday":  {Open: "07:00", Close: "21:00"},
				"sunday":    {Open: "07:00", Close: "19:00"},
			}),
			Images: datatypes.NewJSONSlice([]string{"photo-1649972904349-6e44c42644a7"}),
		},
		{
			Model:         gorm.Model{ID: 4, CreatedAt: date("2024-02-05")},
			Name:          "Fashion Forward Boutique",
			Email:         "style@fashionforward.com",
			Address:       "987 Fashion Ave, Miami, FL 33101",
			OwnerID:       7,
			AverageRating: 4.3,
			TotalRatings:  167,
			Category:      "Fashion",
			Description:   "Trendy fashion and designer clothing for the modern lifestyle",
			Phone:         "+1 (305) 555-0321",
			BusinessHours: datatypes.NewJSONType(models.BusinessHours{
				"monday":    {Open: "11:00", Close: "20:00"},
				"tuesday":   {Open: "11:00", Close: "20:00"},
				"wednesday": {Open: "11:00", Close: "20:00"},
				"thursday":  {Open: "11:00", Close: "21:00"},
				"friday":    {Open: "11:00", Close: "21:00"},
				"saturday":  {Open: "10:00", Close: "21:00"},
				"sunday":    {Open: "12:00", Close: "18:00"},
			}),
			Images: datatypes.NewJSONSlice([]string{"photo-1721322800607-8c38375eef04"}),
		},
		{
			Model:         gorm.Model{ID: 5, CreatedAt: date("2024-02-08")},
			Name:          "Garden Center & Nursery",
			Email:         "grow@gardencenter.com",
			Address:       "555 Green Lane, Portland, OR 97201",
			OwnerID:       8,
			AverageRating: 4.6,
			TotalRatings:  94,
			Category:      "Home & Garden",
			Description:   "Beautiful plants, gardening supplies, and expert landscaping advice",
			Phone:         "+1 (503) 555-0654",
			BusinessHours: datatypes.NewJSONType(models.BusinessHours{
				"monday":    {Open: "08:00", Close: "18:00"},
				"tuesday":   {Open: "08:00", Close: "18:00"},
				"wednesday": {Open: "08:00", Close: "18:00"},
				"thursday":  {Open: "08:00", Close: "18:00"},
				"friday":    {Open: "08:00", Close: "19:00"},
				"saturday":  {Open: "08:00", Close: "19:00"},
				"sunday":    {Open: "09:00", Close: "17:00"},
			}),
			Images: datatypes.NewJSONSlice([]string{"photo-1501854140801-50d01698950b"}),
		},
	}

	ratings := []models.Rating{
		{
			Model:   gorm.Model{ID: 1, CreatedAt: date("2024-02-20")},
			UserID:  2,
			StoreID: 1,
			Rating:  5,
			Comment: "Amazing fresh produce and excellent customer service! The organic section is fantastic.",
			Helpful: 12,
		},
		{
			Model:   gorm.Model{ID: 2, CreatedAt: date("2024-02-18")},
			UserID:  4,
			StoreID: 1,
			Rating:  4,
			Comment: "Great selection but can get crowded during peak hours. Still my go-to grocery store.",
			Helpful: 8,
		},
		{
			Model:   gorm.Model{ID: 3, CreatedAt: date("2024-02-22")},
			UserID:  2,
			StoreID: 2,
			Rating:  4,
			Comment: "Knowledgeable staff helped me find the perfect laptop. Competitive prices too!",
			Helpful: 15,
		},
		{
			Model:   gorm.Model{ID: 4, CreatedAt: date("2024-02-25")},
			UserID:  4,
			StoreID: 3,
			Rating:  5,
			Comment: "Best coffee in downtown! Love the cozy atmosphere and friendly baristas.",
			Helpful: 23,
		},
		{
			Model:   gorm.Model{ID: 5, CreatedAt: date("2024-02-28")},
			UserID:  2,
			StoreID: 4,
			Rating:  4,
			Comment: "Trendy clothes and unique pieces. A bit pricey but worth it for special occasions.",
			Helpful: 6,
		},
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&users).Error; err != nil {
			return err
		}
		if err := tx.Create(&stores).Error; err != nil {
			return err
		}
		if err := tx.Create(&ratings).Error; err != nil {
			return err
		}
		return nil
	})
}
