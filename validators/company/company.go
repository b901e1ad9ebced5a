package companyValidator

import (
	"fitscore/middleware"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// CreateCompany validates the step 1 company profile
func CreateCompany() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name         string `json:"name"`
			Description  string `json:"description"`
			Industry     string `json:"industry"`
			TargetMarket string `json:"targetMarket"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Name) == "" {
			errors["name"] = "Company name is required!"
		}
		if strings.TrimSpace(reqData.Industry) == "" {
			errors["industry"] = "Industry is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCreateCompany", reqData)
		return c.Next()
	}
}

// UpdateCompany validates company profile updates
func UpdateCompany() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			CompanyID    uint    `json:"companyId"`
			Name         *string `json:"name"`
			Description  *string `json:"description"`
			Industry     *string `json:"industry"`
			TargetMarket *string `json:"targetMarket"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.CompanyID == 0 {
			errors["companyId"] = "Company ID is required!"
		}
		if reqData.Name != nil && strings.TrimSpace(*reqData.Name) == "" {
			errors["name"] = "Company name cannot be empty!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedUpdateCompany", reqData)
		return c.Next()
	}
}
