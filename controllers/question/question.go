package questionController

import (
	"encoding/json"
	"fitscore/database"
	"fitscore/middleware"
	"fitscore/models"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

// CreateQuestion adds a step 2 evaluation question to a company
func CreateQuestion(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedCreateQuestion").(*struct {
		CompanyID uint     `json:"companyId"`
		Text      string   `json:"text"`
		Type      string   `json:"type"`
		Weight    float64  `json:"weight"`
		Options   []string `json:"options"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// Company must belong to the caller
	var company models.Company
	if err := database.Database.Db.
		Where("id = ? AND owner_id = ? AND is_deleted = ?", reqData.CompanyID, userID, false).
		First(&company).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Company not found!", nil)
	}

	question := models.Question{
		Text:      reqData.Text,
		Type:      reqData.Type,
		Weight:    reqData.Weight,
		CompanyID: company.ID,
		OwnerID:   userID,
	}

	if reqData.Type == models.QuestionTypeMultipleChoice {
		optionsJSON, err := json.Marshal(reqData.Options)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid options!", nil)
		}
		question.Options = datatypes.JSON(optionsJSON)
	}

	if err := database.Database.Db.Create(&question).Error; err != nil {
		log.Printf("Error creating question: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create question!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Question created successfully!", question)
}

// UpdateQuestion edits an owned question
func UpdateQuestion(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedUpdateQuestion").(*struct {
		QuestionID uint      `json:"questionId"`
		Text       *string   `json:"text"`
		Weight     *float64  `json:"weight"`
		Options    *[]string `json:"options"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var question models.Question
	if err := database.Database.Db.
		Where("id = ? AND owner_id = ? AND is_deleted = ?", reqData.QuestionID, userID, false).
		First(&question).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Question not found!", nil)
	}

	if reqData.Text != nil {
		question.Text = *reqData.Text
	}
	if reqData.Weight != nil {
		question.Weight = *reqData.Weight
	}
	if reqData.Options != nil {
		if question.Type != models.QuestionTypeMultipleChoice {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Options are only allowed for MULTIPLE_CHOICE questions!", nil)
		}
		optionsJSON, err := json.Marshal(*reqData.Options)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid options!", nil)
		}
		question.Options = datatypes.JSON(optionsJSON)
	}

	if err := database.Database.Db.Save(&question).Error; err != nil {
		log.Printf("Error updating question: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update question!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Question updated successfully!", question)
}

// DeleteQuestion soft-deletes a question and its answers
func DeleteQuestion(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedDeleteQuestion").(*struct {
		QuestionID uint `json:"questionId"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var question models.Question
	if err := database.Database.Db.
		Where("id = ? AND owner_id = ? AND is_deleted = ?", reqData.QuestionID, userID, false).
		First(&question).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Question not found!", nil)
	}

	question.IsDeleted = true
	if err := database.Database.Db.Save(&question).Error; err != nil {
		log.Printf("Error deleting question: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete question!", nil)
	}

	// Answers to a deleted question no longer feed the score
	database.Database.Db.Model(&models.AccountAnswer{}).
		Where("question_id = ? AND is_deleted = ?", question.ID, false).
		Update("is_deleted", true)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Question deleted successfully!", nil)
}

// ListQuestions returns a company's questions in creation order
func ListQuestions(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	companyID, err := strconv.Atoi(c.Locals("validatedCompanyID").(string))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid company ID!", nil)
	}

	var questions []models.Question
	if err := database.Database.Db.
		Where("company_id = ? AND owner_id = ? AND is_deleted = ?", companyID, userID, false).
		Order("created_at asc").
		Find(&questions).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch questions!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Questions fetched successfully!", questions)
}
