package utils

import (
	"log"
	"time"

	"rately/config"
	"rately/models"

	"github.com/go-resty/resty/v2"
)

// NotifyRatingWebhook posts a rating event to the configured webhook URL.
// Fire-and-forget: failures are logged, never surfaced to the submitting
// user. No-op when RATING_WEBHOOK_URL is unset.
func NotifyRatingWebhook(rating models.Rating) {
	url := config.AppConfig.RatingWebhookURL
	if url == "" {
		return
	}

	client := resty.New().SetTimeout(10 * time.Second)

	resp, err := client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]interface{}{
			"event":   "rating.submitted",
			"storeId": rating.StoreID,
			"userId":  rating.UserID,
			"rating":  rating.Rating,
			"comment": rating.Comment,
		}).
		Post(url)
	if err != nil {
		log.Printf("Error calling rating webhook: %v", err)
		return
	}
	if resp.IsError() {
		log.Printf("Rating webhook returned %d: %s", resp.StatusCode(), resp.String())
	}
}
