package companyRoutes

import (
	companyControllers "fitscore/controllers/company"
	"fitscore/middleware"
	companyValidators "fitscore/validators/company"

	"github.com/gofiber/fiber/v2"
)

func SetupCompanyRoutes(app *fiber.App) {
	companyGroup := app.Group("/company")

	companyGroup.Post("/create", companyValidators.CreateCompany(), middleware.JWTMiddleware, middleware.CheckPermissionMiddleware("create-company"), companyControllers.CreateCompany)
	companyGroup.Put("/update", companyValidators.UpdateCompany(), middleware.JWTMiddleware, middleware.CheckPermissionMiddleware("create-company"), companyControllers.UpdateCompany)
	companyGroup.Get("/list", middleware.JWTMiddleware, companyControllers.ListCompanies)
}
