package utils

import (
	"log"
	"time"
	"wealthgenius/config"
	"wealthgenius/models"

	"github.com/go-resty/resty/v2"
)

// PushInquiryToCRM forwards a contact inquiry to the marketing CRM
// webhook. Best effort: a missing URL or a failed call is logged and
// forgotten, the inquiry is already persisted.
func PushInquiryToCRM(inquiry models.ContactInquiry) {
	webhookURL := config.AppConfig.CRMWebhookURL
	if webhookURL == "" {
		return
	}

	client := resty.New().SetTimeout(10 * time.Second)

	resp, err := client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]interface{}{
			"name":            inquiry.Name,
			"email":           inquiry.Email,
			"phone":           inquiry.Phone,
			"subject":         inquiry.Subject,
			"message":         inquiry.Message,
			"course_interest": inquiry.CourseInterest,
			"received_at":     inquiry.CreatedAt,
		}).
		Post(webhookURL)

	if err != nil {
		log.Printf("[CRM-SYNC] Error pushing inquiry %d: %v", inquiry.ID, err)
		return
	}

	if resp.IsError() {
		log.Printf("[CRM-SYNC] CRM rejected inquiry %d: %s", inquiry.ID, resp.Status())
		return
	}

	log.Printf("[CRM-SYNC] Inquiry %d synced to CRM", inquiry.ID)
}
