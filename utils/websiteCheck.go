package utils

import (
	"fitscore/database"
	"fitscore/models"
	"log"
	"time"

	"github.com/go-resty/resty/v2"
)

// CheckAccountWebsite probes an account's website and records whether it
// responded. Meant to run in a goroutine after create/update; purely
// informational and never feeds the score.
func CheckAccountWebsite(accountID uint, website string) {
	if website == "" {
		return
	}

	client := resty.New().SetTimeout(10 * time.Second)
	resp, err := client.R().Get(website)

	reachable := err == nil && resp.StatusCode() < 400
	if err != nil {
		log.Printf("Website check failed for account %d (%s): %v", accountID, website, err)
	}

	updates := map[string]interface{}{
		"website_checked":   true,
		"website_reachable": reachable,
	}
	if err := database.Database.Db.Model(&models.Account{}).
		Where("id = ?", accountID).
		Updates(updates).Error; err != nil {
		log.Printf("Error saving website check for account %d: %v", accountID, err)
	}
}
