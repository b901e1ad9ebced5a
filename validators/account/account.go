package accountValidator

import (
	"fitscore/middleware"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// CreateAccount validates a new account entry
func CreateAccount() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			CompanyID   uint   `json:"companyId"`
			Name        string `json:"name"`
			Industry    string `json:"industry"`
			CompanySize string `json:"companySize"`
			Revenue     string `json:"revenue"`
			Location    string `json:"location"`
			Website     string `json:"website"`
			Notes       string `json:"notes"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.CompanyID == 0 {
			errors["companyId"] = "Company ID is required!"
		}
		if strings.TrimSpace(reqData.Name) == "" {
			errors["name"] = "Account name is required!"
		}
		if reqData.Website != "" && validate.Var(reqData.Website, "url") != nil {
			errors["website"] = "Website must be a valid URL!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCreateAccount", reqData)
		return c.Next()
	}
}

// UpdateAccount validates account edits
func UpdateAccount() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			AccountID   uint    `json:"accountId"`
			Name        *string `json:"name"`
			Industry    *string `json:"industry"`
			CompanySize *string `json:"companySize"`
			Revenue     *string `json:"revenue"`
			Location    *string `json:"location"`
			Website     *string `json:"website"`
			Notes       *string `json:"notes"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.AccountID == 0 {
			errors["accountId"] = "Account ID is required!"
		}
		if reqData.Name != nil && strings.TrimSpace(*reqData.Name) == "" {
			errors["name"] = "Account name cannot be empty!"
		}
		if reqData.Website != nil && *reqData.Website != "" && validate.Var(*reqData.Website, "url") != nil {
			errors["website"] = "Website must be a valid URL!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedUpdateAccount", reqData)
		return c.Next()
	}
}

// DeleteAccount validates account removal
func DeleteAccount() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			AccountID uint `json:"accountId"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.AccountID == 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Account ID is required!", nil)
		}

		c.Locals("validatedDeleteAccount", reqData)
		return c.Next()
	}
}

// RecordAnswer validates the shape of an answer submission. The value must
// match the owning question's type; the controller checks option membership
// against the question it loads.
func RecordAnswer() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			AccountID   uint     `json:"accountId"`
			QuestionID  uint     `json:"questionId"`
			BoolValue   *bool    `json:"boolValue"`
			NumberValue *float64 `json:"numberValue"`
			TextValue   *string  `json:"textValue"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.AccountID == 0 {
			errors["accountId"] = "Account ID is required!"
		}
		if reqData.QuestionID == 0 {
			errors["questionId"] = "Question ID is required!"
		}

		// Exactly one value kind per answer
		provided := 0
		if reqData.BoolValue != nil {
			provided++
		}
		if reqData.NumberValue != nil {
			provided++
		}
		if reqData.TextValue != nil {
			provided++
		}
		if provided != 1 {
			errors["value"] = "Provide exactly one of boolValue, numberValue, or textValue!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedRecordAnswer", reqData)
		return c.Next()
	}
}

// ListAccounts validates the company id path param
func ListAccounts() fiber.Handler {
	return func(c *fiber.Ctx) error {
		companyId := c.Params("companyId")
		if companyId == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Company ID is required!", nil)
		}

		c.Locals("validatedCompanyID", companyId)
		return c.Next()
	}
}
