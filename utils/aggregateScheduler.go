package utils

import (
	"fmt"
	"log"
	"time"

	"rately/database"
	"rately/models"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

func logScheduler(message string) {
	log.Printf("[AGGREGATE-SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// RecomputeStoreAggregates rewrites a store's denormalized averageRating and
// totalRatings fields from the ratings table.
func RecomputeStoreAggregates(tx *gorm.DB, storeId uint) error {
	var stats struct {
		Average float64
		Total   int64
	}
	if err := tx.Model(&models.Rating{}).
		Select("COALESCE(AVG(rating), 0) AS average, COUNT(*) AS total").
		Where("store_id = ? AND is_deleted = ?", storeId, false).
		Scan(&stats).Error; err != nil {
		return err
	}

	return tx.Model(&models.Store{}).
		Where("id = ?", storeId).
		Updates(map[string]interface{}{
			"average_rating": stats.Average,
			"total_ratings":  stats.Total,
		}).Error
}

// reconcileAggregates recomputes every store's denormalized rating fields.
// Submissions already keep them up to date transactionally; this job guards
// against drift from seed data or manual table edits.
func reconcileAggregates() {
	db := database.Database.Db

	var storeIds []uint
	if err := db.Model(&models.Store{}).Where("is_deleted = ?", false).Pluck("id", &storeIds).Error; err != nil {
		logScheduler("Error fetching stores: " + err.Error())
		return
	}

	for _, id := range storeIds {
		if err := RecomputeStoreAggregates(db, id); err != nil {
			logScheduler(fmt.Sprintf("Error reconciling store %d: %v", id, err))
		}
	}

	logScheduler("Reconciled rating aggregates for all stores")
}

// StartAggregateScheduler runs the nightly aggregate reconciliation.
func StartAggregateScheduler() *cron.Cron {
	c := cron.New()

	// Every night at 03:00
	if _, err := c.AddFunc("0 3 * * *", reconcileAggregates); err != nil {
		log.Fatalf("Failed to schedule aggregate reconciliation: %v", err)
	}

	c.Start()
	logScheduler("Aggregate reconciliation scheduled")
	return c
}
