package userRoutes

import (
	userControllers "fitscore/controllers/userControllers"
	"fitscore/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App) {
	userGroup := app.Group("/user")

	userGroup.Get("/profile", middleware.JWTMiddleware, middleware.CheckPermissionMiddleware("view-profile"), userControllers.GetProfile)
	userGroup.Put("/profile", middleware.JWTMiddleware, middleware.CheckPermissionMiddleware("view-profile"), userControllers.UpdateProfile)
}
