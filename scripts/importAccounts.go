package main

import (
	"encoding/csv"
	"fitscore/config"
	"fitscore/database"
	"fitscore/models"
	"log"
	"os"
	"strconv"
	"strings"
)

// Bulk-imports accounts from Accounts.csv into one company. Usage:
//
//	go run scripts/importAccounts.go <companyId> <ownerId>
func main() {
	// Load config and connect to database
	config.LoadConfig()
	database.ConnectDb()

	if len(os.Args) < 3 {
		log.Fatal("Usage: importAccounts <companyId> <ownerId>")
	}
	companyID := parseUint(os.Args[1])
	ownerID := parseUint(os.Args[2])
	if companyID == 0 || ownerID == 0 {
		log.Fatal("companyId and ownerId must be positive integers")
	}

	// Open CSV file
	file, err := os.Open("Accounts.csv")
	if err != nil {
		log.Fatalf("Failed to open CSV file: %v", err)
	}
	defer file.Close()

	// Create CSV reader
	reader := csv.NewReader(file)

	// Read all records
	records, err := reader.ReadAll()
	if err != nil {
		log.Fatalf("Failed to read CSV: %v", err)
	}

	if len(records) < 2 {
		log.Fatal("CSV file is empty or has only headers")
	}

	// Skip header row
	header := records[0]
	log.Printf("CSV Headers: %v", header)
	log.Printf("Total rows to import: %d", len(records)-1)

	// Map header indices
	headerIndex := make(map[string]int)
	for i, h := range header {
		headerIndex[strings.TrimSpace(h)] = i
	}

	inserted := 0
	updated := 0
	skipped := 0

	for i, row := range records[1:] {
		if i%100 == 0 {
			log.Printf("Processing row %d...", i+1)
		}

		// Parse fields from CSV
		account := models.Account{
			Name:        getField(row, headerIndex, "name"),
			Industry:    getField(row, headerIndex, "industry"),
			CompanySize: getField(row, headerIndex, "companySize"),
			Revenue:     getField(row, headerIndex, "revenue"),
			Location:    getField(row, headerIndex, "location"),
			Website:     getField(row, headerIndex, "website"),
			Notes:       getField(row, headerIndex, "notes"),
			CompanyID:   companyID,
			OwnerID:     ownerID,
			IsDeleted:   false,
		}

		// Skip if no name
		if account.Name == "" {
			skipped++
			continue
		}

		// Check if account exists by name within the company
		var existing models.Account
		result := database.Database.Db.
			Where("name = ? AND company_id = ? AND owner_id = ?", account.Name, companyID, ownerID).
			First(&existing)

		if result.Error != nil {
			// Insert new account
			if err := database.Database.Db.Create(&account).Error; err != nil {
				log.Printf("Error inserting account %s: %v", account.Name, err)
				continue
			}
			inserted++
		} else {
			// Update existing account
			existing.Industry = account.Industry
			existing.CompanySize = account.CompanySize
			existing.Revenue = account.Revenue
			existing.Location = account.Location
			existing.Website = account.Website
			existing.Notes = account.Notes
			existing.IsDeleted = false

			if err := database.Database.Db.Save(&existing).Error; err != nil {
				log.Printf("Error updating account %s: %v", account.Name, err)
				continue
			}
			updated++
		}
	}

	log.Printf("=== Import Complete ===")
	log.Printf("Inserted: %d", inserted)
	log.Printf("Updated: %d", updated)
	log.Printf("Skipped: %d", skipped)
	log.Printf("Total processed: %d", inserted+updated+skipped)
}

// getField safely gets a field from the row by header name
func getField(row []string, headerIndex map[string]int, field string) string {
	if idx, ok := headerIndex[field]; ok && idx < len(row) {
		return strings.TrimSpace(row[idx])
	}
	return ""
}

// parseUint converts string to uint
func parseUint(s string) uint {
	val, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0
	}
	return uint(val)
}
