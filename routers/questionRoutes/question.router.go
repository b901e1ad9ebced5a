package questionRoutes

import (
	questionControllers "fitscore/controllers/question"
	"fitscore/middleware"
	questionValidators "fitscore/validators/question"

	"github.com/gofiber/fiber/v2"
)

func SetupQuestionRoutes(app *fiber.App) {
	questionGroup := app.Group("/question")

	questionGroup.Post("/create", questionValidators.CreateQuestion(), middleware.JWTMiddleware, middleware.CheckPermissionMiddleware("manage-questions"), questionControllers.CreateQuestion)
	questionGroup.Put("/update", questionValidators.UpdateQuestion(), middleware.JWTMiddleware, middleware.CheckPermissionMiddleware("manage-questions"), questionControllers.UpdateQuestion)
	questionGroup.Delete("/delete", questionValidators.DeleteQuestion(), middleware.JWTMiddleware, middleware.CheckPermissionMiddleware("manage-questions"), questionControllers.DeleteQuestion)
	questionGroup.Get("/list/:companyId", questionValidators.ListQuestions(), middleware.JWTMiddleware, questionControllers.ListQuestions)
}
