package reportValidator

import (
	"fitscore/middleware"

	"github.com/gofiber/fiber/v2"
)

// GetReport validates the company id path param for report endpoints
func GetReport() fiber.Handler {
	return func(c *fiber.Ctx) error {
		companyId := c.Params("companyId")
		if companyId == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Company ID is required!", nil)
		}

		c.Locals("validatedCompanyID", companyId)
		return c.Next()
	}
}
