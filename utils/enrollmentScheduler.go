package utils

import (
	"log"
	"wealthgenius/database"
	"wealthgenius/models"

	"github.com/jinzhu/now"
	"github.com/robfig/cron/v3"
)

// InitializeEnrollmentScheduler sets up the daily enrollment housekeeping job
func InitializeEnrollmentScheduler() {
	log.Println("[ENROLLMENT-SCHEDULER] Initializing enrollment scheduler...")

	c := cron.New()

	// Run daily at 9 AM to nudge pending payments and drop stale ones
	c.AddFunc("0 9 * * *", func() {
		log.Println("[ENROLLMENT-SCHEDULER] Running daily enrollment check...")
		ProcessPendingPaymentReminders()
		CancelStaleEnrollments()
	})

	c.Start()
	log.Println("[ENROLLMENT-SCHEDULER] Enrollment scheduler started - runs daily at 9 AM")
}

// ProcessPendingPaymentReminders emails students whose enrollment is
// still awaiting payment after a full day. Each enrollment is reminded
// once.
func ProcessPendingPaymentReminders() {
	db := database.Database.Db
	cutoff := now.BeginningOfDay().AddDate(0, 0, -1)

	var pending []models.Enrollment
	if err := db.
		Where("status = ? AND payment_method = ? AND reminder_sent = false", models.EnrollmentActive, "pending").
		Where("enrolled_at < ?", cutoff).
		Find(&pending).Error; err != nil {
		log.Printf("[ENROLLMENT-SCHEDULER] Error fetching pending enrollments: %v", err)
		return
	}

	log.Printf("[ENROLLMENT-SCHEDULER] Found %d enrollments awaiting payment", len(pending))

	for _, enrollment := range pending {
		SendPaymentReminderEmail(enrollment)

		if err := db.Model(&enrollment).Update("reminder_sent", true).Error; err != nil {
			log.Printf("[ENROLLMENT-SCHEDULER] Error marking reminder for enrollment %d: %v", enrollment.ID, err)
			continue
		}
		log.Printf("[ENROLLMENT-SCHEDULER] Sent payment reminder for enrollment %d to %s", enrollment.ID, enrollment.StudentEmail)
	}
}

// CancelStaleEnrollments cancels enrollments that sat unpaid for 30 days
func CancelStaleEnrollments() {
	db := database.Database.Db
	cutoff := now.BeginningOfDay().AddDate(0, 0, -30)

	result := db.Model(&models.Enrollment{}).
		Where("status = ? AND payment_method = ? AND enrolled_at < ?", models.EnrollmentActive, "pending", cutoff).
		Update("status", models.EnrollmentCancelled)

	if result.Error != nil {
		log.Printf("[ENROLLMENT-SCHEDULER] Error cancelling stale enrollments: %v", result.Error)
		return
	}

	if result.RowsAffected > 0 {
		log.Printf("[ENROLLMENT-SCHEDULER] Cancelled %d stale enrollments", result.RowsAffected)
	}
}
