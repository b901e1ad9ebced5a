package reportRoutes

import (
	reportControllers "fitscore/controllers/report"
	"fitscore/middleware"
	reportValidators "fitscore/validators/report"

	"github.com/gofiber/fiber/v2"
)

func SetupReportRoutes(app *fiber.App) {
	reportGroup := app.Group("/report")

	reportGroup.Get("/:companyId", reportValidators.GetReport(), middleware.JWTMiddleware, middleware.CheckPermissionMiddleware("view-report"), reportControllers.GetReport)
	reportGroup.Get("/:companyId/export", reportValidators.GetReport(), middleware.JWTMiddleware, middleware.CheckPermissionMiddleware("export-report"), reportControllers.ExportReport)
	reportGroup.Get("/:companyId/exports", reportValidators.GetReport(), middleware.JWTMiddleware, middleware.CheckPermissionMiddleware("export-report"), reportControllers.ListExports)
}
