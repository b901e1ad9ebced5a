package accountRoutes

import (
	accountControllers "fitscore/controllers/account"
	"fitscore/middleware"
	accountValidators "fitscore/validators/account"

	"github.com/gofiber/fiber/v2"
)

func SetupAccountRoutes(app *fiber.App) {
	accountGroup := app.Group("/account")

	accountGroup.Post("/create", accountValidators.CreateAccount(), middleware.JWTMiddleware, middleware.CheckPermissionMiddleware("manage-accounts"), accountControllers.CreateAccount)
	accountGroup.Put("/update", accountValidators.UpdateAccount(), middleware.JWTMiddleware, middleware.CheckPermissionMiddleware("manage-accounts"), accountControllers.UpdateAccount)
	accountGroup.Delete("/delete", accountValidators.DeleteAccount(), middleware.JWTMiddleware, middleware.CheckPermissionMiddleware("manage-accounts"), accountControllers.DeleteAccount)
	accountGroup.Get("/list/:companyId", accountValidators.ListAccounts(), middleware.JWTMiddleware, accountControllers.ListAccounts)
	accountGroup.Post("/answer", accountValidators.RecordAnswer(), middleware.JWTMiddleware, middleware.CheckPermissionMiddleware("record-answers"), accountControllers.RecordAnswer)
	accountGroup.Get("/answers/:accountId", middleware.JWTMiddleware, accountControllers.ListAnswers)
}
