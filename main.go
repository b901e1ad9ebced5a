package main

import (
	"fitscore/config"
	"fitscore/database"
	accountRoutes "fitscore/routers/accountRoutes"
	authRoutes "fitscore/routers/authRoutes"
	companyRoutes "fitscore/routers/companyRoutes"
	questionRoutes "fitscore/routers/questionRoutes"
	reportRoutes "fitscore/routers/reportRoutes"
	userProfileRoutes "fitscore/routers/userRoutes"
	"fitscore/utils"

	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE",  // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization", // Allowed headers
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve static files from the public folder
	app.Static("/", "./public")

	authRoutes.SetupAuthRoutes(app)
	userProfileRoutes.SetupUserRoutes(app)
	companyRoutes.SetupCompanyRoutes(app)
	questionRoutes.SetupQuestionRoutes(app)
	accountRoutes.SetupAccountRoutes(app)
	reportRoutes.SetupReportRoutes(app)

	// Nightly housekeeping
	utils.InitializeSchedulers()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
