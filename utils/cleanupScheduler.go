package utils

import (
	"fitscore/database"
	"fitscore/models"
	"log"
	"time"

	"github.com/jinzhu/now"
	"github.com/robfig/cron/v3"
)

// logScheduler logs scheduler events with timestamp
func logScheduler(message string) {
	log.Printf("[CLEANUP-SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// purgeSoftDeletedRows hard-deletes wizard rows that were soft-deleted more
// than 30 days ago. Live score inputs are untouched: reports only ever read
// rows with is_deleted = false.
func purgeSoftDeletedRows() {
	db := database.Database.Db
	cutoff := now.BeginningOfDay().AddDate(0, 0, -30)

	targets := []interface{}{
		&models.AccountAnswer{},
		&models.Account{},
		&models.Question{},
		&models.Company{},
	}

	for _, target := range targets {
		result := db.Unscoped().
			Where("is_deleted = true AND updated_at < ?", cutoff).
			Delete(target)
		if result.Error != nil {
			logScheduler("Error purging soft-deleted rows: " + result.Error.Error())
			continue
		}
		if result.RowsAffected > 0 {
			logScheduler("Purged soft-deleted rows")
		}
	}
}

// expireStaleOTPs removes OTP rows past their expiry
func expireStaleOTPs() {
	db := database.Database.Db

	result := db.Unscoped().
		Where("expires_at < ? OR is_used = true", time.Now()).
		Delete(&models.OTP{})
	if result.Error != nil {
		logScheduler("Error expiring OTPs: " + result.Error.Error())
		return
	}
	if result.RowsAffected > 0 {
		logScheduler("Expired stale OTPs")
	}
}

// StartCleanupScheduler runs nightly housekeeping at 02:00
func StartCleanupScheduler(c *cron.Cron) {
	c.AddFunc("0 2 * * *", func() {
		purgeSoftDeletedRows()
		expireStaleOTPs()
	})
	logScheduler("Cleanup scheduler started - runs nightly at 02:00")
}

// InitializeSchedulers initializes all background schedulers
func InitializeSchedulers() *cron.Cron {
	logScheduler("Initializing schedulers...")

	c := cron.New()

	StartCleanupScheduler(c)

	c.Start()

	logScheduler("All schedulers initialized successfully")
	return c
}
