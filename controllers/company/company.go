package companyController

import (
	"fitscore/database"
	"fitscore/middleware"
	"fitscore/models"
	"log"

	"github.com/gofiber/fiber/v2"
)

// CreateCompany saves the step 1 company profile
func CreateCompany(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedCreateCompany").(*struct {
		Name         string `json:"name"`
		Description  string `json:"description"`
		Industry     string `json:"industry"`
		TargetMarket string `json:"targetMarket"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	company := models.Company{
		Name:         reqData.Name,
		Description:  reqData.Description,
		Industry:     reqData.Industry,
		TargetMarket: reqData.TargetMarket,
		OwnerID:      userID,
	}

	if err := database.Database.Db.Create(&company).Error; err != nil {
		log.Printf("Error creating company: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create company!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Company created successfully!", company)
}

// UpdateCompany edits an owned company profile
func UpdateCompany(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedUpdateCompany").(*struct {
		CompanyID    uint    `json:"companyId"`
		Name         *string `json:"name"`
		Description  *string `json:"description"`
		Industry     *string `json:"industry"`
		TargetMarket *string `json:"targetMarket"`
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

	if reqData.Name != nil {
		company.Name = *reqData.Name
	}
	if reqData.Description != nil {
		company.Description = *reqData.Description
	}
	if reqData.Industry != nil {
		company.Industry = *reqData.Industry
	}
	if reqData.TargetMarket != nil {
		company.TargetMarket = *reqData.TargetMarket
	}

	if err := database.Database.Db.Save(&company).Error; err != nil {
		log.Printf("Error updating company: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update company!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Company updated successfully!", company)
}

// ListCompanies returns all companies owned by the user
func ListCompanies(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var companies []models.Company
	if err := database.Database.Db.
		Where("owner_id = ? AND is_deleted = ?", userID, false).
		Order("created_at desc").
		Find(&companies).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch companies!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Companies fetched successfully!", companies)
}
