package questionValidator

import (
	"fitscore/middleware"
	"fitscore/models"
	"strings"

	"github.com/gofiber/fiber/v2"
)

var validTypes = map[string]bool{
	models.QuestionTypeBoolean:        true,
	models.QuestionTypeNumber:         true,
	models.QuestionTypeMultipleChoice: true,
}

// CreateQuestion validates a new evaluation question. Weight must be strictly
// positive here so the scoring engine never sees a non-positive weight sum
// from well-formed input.
func CreateQuestion() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			CompanyID uint     `json:"companyId"`
			Text      string   `json:"text"`
			Type      string   `json:"type"`
			Weight    float64  `json:"weight"`
			Options   []string `json:"options"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.CompanyID == 0 {
			errors["companyId"] = "Company ID is required!"
		}
		if strings.TrimSpace(reqData.Text) == "" {
			errors["text"] = "Question text is required!"
		}
		if !validTypes[reqData.Type] {
			errors["type"] = "Question type must be BOOLEAN, NUMBER, or MULTIPLE_CHOICE!"
		}
		if reqData.Weight <= 0 {
			errors["weight"] = "Weight must be greater than 0!"
		}

		if reqData.Type == models.QuestionTypeMultipleChoice {
			options := 0
			for _, option := range reqData.Options {
				if strings.TrimSpace(option) != "" {
					options++
				}
			}
			if options < 2 {
				errors["options"] = "Multiple choice questions need at least 2 options!"
			}
		} else if len(reqData.Options) > 0 {
			errors["options"] = "Options are only allowed for MULTIPLE_CHOICE questions!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCreateQuestion", reqData)
		return c.Next()
	}
}

// UpdateQuestion validates question edits
func UpdateQuestion() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			QuestionID uint      `json:"questionId"`
			Text       *string   `json:"text"`
			Weight     *float64  `json:"weight"`
			Options    *[]string `json:"options"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.QuestionID == 0 {
			errors["questionId"] = "Question ID is required!"
		}
		if reqData.Text != nil && strings.TrimSpace(*reqData.Text) == "" {
			errors["text"] = "Question text cannot be empty!"
		}
		if reqData.Weight != nil && *reqData.Weight <= 0 {
			errors["weight"] = "Weight must be greater than 0!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedUpdateQuestion", reqData)
		return c.Next()
	}
}

// DeleteQuestion validates question removal
func DeleteQuestion() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			QuestionID uint `json:"questionId"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.QuestionID == 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Question ID is required!", nil)
		}

		c.Locals("validatedDeleteQuestion", reqData)
		return c.Next()
	}
}

// ListQuestions validates the company id path param
func ListQuestions() fiber.Handler {
	return func(c *fiber.Ctx) error {
		companyId := c.Params("companyId")
		if companyId == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Company ID is required!", nil)
		}

		c.Locals("validatedCompanyID", companyId)
		return c.Next()
	}
}
