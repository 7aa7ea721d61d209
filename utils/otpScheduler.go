package utils

import (
	"edtech/database"
	"edtech/models"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// logScheduler logs scheduler events with timestamp
func logScheduler(message string) {
	log.Printf("[OTP-SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// cleanupExpiredOTPs hard-deletes OTP rows past their expiry. The original
// store expired these automatically; here a periodic sweep does the same.
func cleanupExpiredOTPs() {
	db := database.Database.Db

	result := db.Unscoped().
		Where("expires_at <= ?", time.Now()).
		Delete(&models.OTP{})
	if result.Error != nil {
		logScheduler("Error deleting expired OTPs: " + result.Error.Error())
		return
	}

	if result.RowsAffected > 0 {
		logScheduler("Deleted expired OTPs")
	}
}

// InitializeOTPScheduler starts the periodic OTP cleanup job
func InitializeOTPScheduler() *cron.Cron {
	c := cron.New()

	// Every 5 minutes, matching the OTP validity window
	if _, err := c.AddFunc("*/5 * * * *", cleanupExpiredOTPs); err != nil {
		log.Fatalf("Failed to schedule OTP cleanup: %v", err)
	}

	c.Start()
	logScheduler("OTP cleanup scheduler started")
	return c
}
