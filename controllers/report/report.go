package reportController

import (
	"fitscore/database"
	"fitscore/middleware"
	"fitscore/models"
	"fitscore/scoring"
	"fitscore/utils"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// loadScoringInputs reads a fresh snapshot of the company's accounts,
// questions and answers. Reports are never cached, so every request reflects
// all mutations made since the last one.
func loadScoringInputs(companyID int, userID uint) ([]models.Account, []models.Question, []models.AccountAnswer, error) {
	db := database.Database.Db

	var accounts []models.Account
	if err := db.
		Where("company_id = ? AND owner_id = ? AND is_deleted = ?", companyID, userID, false).
		Order("created_at asc, id asc").
		Find(&accounts).Error; err != nil {
		return nil, nil, nil, err
	}

	var questions []models.Question
	if err := db.
		Where("company_id = ? AND owner_id = ? AND is_deleted = ?", companyID, userID, false).
		Order("created_at asc, id asc").
		Find(&questions).Error; err != nil {
		return nil, nil, nil, err
	}

	var answers []models.AccountAnswer
	if err := db.
		Where("owner_id = ? AND is_deleted = ?", userID, false).
		Find(&answers).Error; err != nil {
		return nil, nil, nil, err
	}

	return accounts, questions, answers, nil
}

// GetReport evaluates all accounts and returns the ranked results with
// per-tier counts
func GetReport(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	companyID, err := strconv.Atoi(c.Locals("validatedCompanyID").(string))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid company ID!", nil)
	}

	var company models.Company
	if err := database.Database.Db.
		Where("id = ? AND owner_id = ? AND is_deleted = ?", companyID, userID, false).
		First(&company).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Company not found!", nil)
	}

	accounts, questions, answers, err := loadScoringInputs(companyID, userID)
	if err != nil {
		log.Printf("Error loading scoring inputs: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to build report!", nil)
	}

	results := scoring.Evaluate(accounts, questions, answers)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Report built successfully!", fiber.Map{
		"company":      company,
		"results":      results,
		"tier_summary": scoring.TierSummary(results),
	})
}

// BuildCSV renders the ranked results in the fixed export format. The layout
// is a compatibility surface for downstream tooling; do not change it.
func BuildCSV(results []scoring.EvaluationResult) string {
	rows := make([]string, 0, len(results)+1)
	rows = append(rows, "Rank,Company,Industry,Score,Percentage,Tier")

	for _, result := range results {
		rows = append(rows, fmt.Sprintf(`%d,%s,%s,"%s/%s","%d%%",%s`,
			result.Score.Rank,
			result.Account.Name,
			result.Account.Industry,
			formatScore(result.Score.TotalScore),
			formatScore(result.Score.MaxScore),
			result.Score.Percentage,
			result.Score.Tier,
		))
	}

	return strings.Join(rows, "\n")
}

// formatScore prints weights without trailing zeros (10, not 10.000000)
func formatScore(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// ExportReport streams the ranked report as CSV and records an export audit
// row
func ExportReport(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	companyID, err := strconv.Atoi(c.Locals("validatedCompanyID").(string))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid company ID!", nil)
	}

	var company models.Company
	if err := database.Database.Db.
		Where("id = ? AND owner_id = ? AND is_deleted = ?", companyID, userID, false).
		First(&company).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Company not found!", nil)
	}

	accounts, questions, answers, err := loadScoringInputs(companyID, userID)
	if err != nil {
		log.Printf("Error loading scoring inputs: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to build report!", nil)
	}

	results := scoring.Evaluate(accounts, questions, answers)
	csv := BuildCSV(results)

	export := models.ReportExport{
		ExportID:   uuid.NewString(),
		CompanyID:  company.ID,
		OwnerID:    userID,
		RowCount:   len(results),
		ExportedAt: time.Now(),
	}
	if err := database.Database.Db.Create(&export).Error; err != nil {
		log.Printf("Error recording export: %v", err)
	}

	go func(ownerID uint, companyName, exportID string, rowCount int) {
		var owner models.User
		if err := database.Database.Db.Select("name, email").First(&owner, ownerID).Error; err == nil && owner.Email != "" {
			utils.SendReportExportEmail(owner.Email, owner.Name, companyName, exportID, rowCount)
		}
	}(userID, company.Name, export.ExportID, len(results))

	c.Set("Content-Type", "text/csv")
	c.Set("Content-Disposition", `attachment; filename="account-evaluation-report.csv"`)
	return c.SendString(csv)
}

// ListExports returns the export audit trail for a company
func ListExports(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	companyID, err := strconv.Atoi(c.Locals("validatedCompanyID").(string))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid company ID!", nil)
	}

	var exports []models.ReportExport
	if err := database.Database.Db.
		Where("company_id = ? AND owner_id = ? AND is_deleted = ?", companyID, userID, false).
		Order("exported_at desc").
		Find(&exports).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch exports!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Exports fetched successfully!", exports)
}
