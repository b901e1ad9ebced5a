package accountController

import (
	"encoding/json"
	"fitscore/database"
	"fitscore/middleware"
	"fitscore/models"
	"fitscore/utils"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// CreateAccount adds a step 3 account to a company
func CreateAccount(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedCreateAccount").(*struct {
		CompanyID   uint   `json:"companyId"`
		Name        string `json:"name"`
		Industry    string `json:"industry"`
		CompanySize string `json:"companySize"`
		Revenue     string `json:"revenue"`
		Location    string `json:"location"`
		Website     string `json:"website"`
		Notes       string `json:"notes"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var company models.Company
	if err := database.Database.Db.
		Where("id = ? AND owner_id = ? AND is_deleted = ?", reqData.CompanyID, userID, false).
		First(&company).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Company not found!", nil)
	}

	account := models.Account{
		Name:        reqData.Name,
		Industry:    reqData.Industry,
		CompanySize: reqData.CompanySize,
		Revenue:     reqData.Revenue,
		Location:    reqData.Location,
		Website:     reqData.Website,
		Notes:       reqData.Notes,
		CompanyID:   company.ID,
		OwnerID:     userID,
	}

	if err := database.Database.Db.Create(&account).Error; err != nil {
		log.Printf("Error creating account: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create account!", nil)
	}

	go utils.CheckAccountWebsite(account.ID, account.Website)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Account created successfully!", account)
}

// UpdateAccount edits an owned account
func UpdateAccount(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedUpdateAccount").(*struct {
		AccountID   uint    `json:"accountId"`
		Name        *string `json:"name"`
		Industry    *string `json:"industry"`
		CompanySize *string `json:"companySize"`
		Revenue     *string `json:"revenue"`
		Location    *string `json:"location"`
		Website     *string `json:"website"`
		Notes       *string `json:"notes"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var account models.Account
	if err := database.Database.Db.
		Where("id = ? AND owner_id = ? AND is_deleted = ?", reqData.AccountID, userID, false).
		First(&account).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Account not found!", nil)
	}

	websiteChanged := false
	if reqData.Name != nil {
		account.Name = *reqData.Name
	}
	if reqData.Industry != nil {
		account.Industry = *reqData.Industry
	}
	if reqData.CompanySize != nil {
		account.CompanySize = *reqData.CompanySize
	}
	if reqData.Revenue != nil {
		account.Revenue = *reqData.Revenue
	}
	if reqData.Location != nil {
		account.Location = *reqData.Location
	}
	if reqData.Website != nil && *reqData.Website != account.Website {
		account.Website = *reqData.Website
		account.WebsiteChecked = false
		account.WebsiteReachable = false
		websiteChanged = true
	}
	if reqData.Notes != nil {
		account.Notes = *reqData.Notes
	}

	if err := database.Database.Db.Save(&account).Error; err != nil {
		log.Printf("Error updating account: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update account!", nil)
	}

	if websiteChanged {
		go utils.CheckAccountWebsite(account.ID, account.Website)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Account updated successfully!", account)
}

// DeleteAccount soft-deletes an account and its answers
func DeleteAccount(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedDeleteAccount").(*struct {
		AccountID uint `json:"accountId"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var account models.Account
	if err := database.Database.Db.
		Where("id = ? AND owner_id = ? AND is_deleted = ?", reqData.AccountID, userID, false).
		First(&account).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Account not found!", nil)
	}

	account.IsDeleted = true
	if err := database.Database.Db.Save(&account).Error; err != nil {
		log.Printf("Error deleting account: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete account!", nil)
	}

	database.Database.Db.Model(&models.AccountAnswer{}).
		Where("account_id = ? AND is_deleted = ?", account.ID, false).
		Update("is_deleted", true)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Account deleted successfully!", nil)
}

// ListAccounts returns a company's accounts in creation order. Creation order
// matters downstream: it is the tie-break order of the ranked report.
func ListAccounts(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	companyID, err := strconv.Atoi(c.Locals("validatedCompanyID").(string))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid company ID!", nil)
	}

	var accounts []models.Account
	if err := database.Database.Db.
		Where("company_id = ? AND owner_id = ? AND is_deleted = ?", companyID, userID, false).
		Order("created_at asc, id asc").
		Find(&accounts).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch accounts!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Accounts fetched successfully!", accounts)
}

// RecordAnswer upserts the answer for one (account, question) pair. The value
// must match the question's type; a multiple choice selection must be one of
// the question's options.
func RecordAnswer(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedRecordAnswer").(*struct {
		AccountID   uint     `json:"accountId"`
		QuestionID  uint     `json:"questionId"`
		BoolValue   *bool    `json:"boolValue"`
		NumberValue *float64 `json:"numberValue"`
		TextValue   *string  `json:"textValue"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var account models.Account
	if err := database.Database.Db.
		Where("id = ? AND owner_id = ? AND is_deleted = ?", reqData.AccountID, userID, false).
		First(&account).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Account not found!", nil)
	}

	var question models.Question
	if err := database.Database.Db.
		Where("id = ? AND owner_id = ? AND is_deleted = ?", reqData.QuestionID, userID, false).
		First(&question).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Question not found!", nil)
	}

	if account.CompanyID != question.CompanyID {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Account and question belong to different companies!", nil)
	}

	answer := models.AccountAnswer{
		AccountID:  account.ID,
		QuestionID: question.ID,
		AnswerType: question.Type,
		OwnerID:    userID,
	}

	// The stored value kind must match the question type
	switch question.Type {
	case models.QuestionTypeBoolean:
		if reqData.BoolValue == nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Boolean questions require boolValue!", nil)
		}
		answer.BoolValue = *reqData.BoolValue
	case models.QuestionTypeNumber:
		if reqData.NumberValue == nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Number questions require numberValue!", nil)
		}
		answer.NumberValue = *reqData.NumberValue
	case models.QuestionTypeMultipleChoice:
		if reqData.TextValue == nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Multiple choice questions require textValue!", nil)
		}
		var options []string
		if err := json.Unmarshal(question.Options, &options); err != nil {
			log.Printf("Error decoding options for question %d: %v", question.ID, err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to read question options!", nil)
		}
		valid := false
		for _, option := range options {
			if option == *reqData.TextValue {
				valid = true
				break
			}
		}
		if !valid {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Selected option is not valid for this question!", nil)
		}
		answer.TextValue = *reqData.TextValue
	}

	// Upsert: one answer per (account, question)
	var existing models.AccountAnswer
	if err := database.Database.Db.
		Where("account_id = ? AND question_id = ? AND is_deleted = ?", account.ID, question.ID, false).
		First(&existing).Error; err != nil {
		if err := database.Database.Db.Create(&answer).Error; err != nil {
			log.Printf("Error saving answer: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save answer!", nil)
		}
	} else {
		existing.AnswerType = answer.AnswerType
		existing.BoolValue = answer.BoolValue
		existing.NumberValue = answer.NumberValue
		existing.TextValue = answer.TextValue
		if err := database.Database.Db.Save(&existing).Error; err != nil {
			log.Printf("Error updating answer: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save answer!", nil)
		}
		answer = existing
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Answer recorded successfully!", answer)
}

// ListAnswers returns all recorded answers for one account
func ListAnswers(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	accountID, err := strconv.Atoi(c.Params("accountId"))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid account ID!", nil)
	}

	var account models.Account
	if err := database.Database.Db.
		Where("id = ? AND owner_id = ? AND is_deleted = ?", accountID, userID, false).
		First(&account).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Account not found!", nil)
	}

	var answers []models.AccountAnswer
	if err := database.Database.Db.
		Where("account_id = ? AND owner_id = ? AND is_deleted = ?", account.ID, userID, false).
		Find(&answers).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch answers!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Answers fetched successfully!", answers)
}
