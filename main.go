package main

import (
	"log"

	"rately/config"
	"rately/database"
	adminRoutes "rately/routers/adminRoutes"
	authRoutes "rately/routers/authRoutes"
	ownerRoutes "rately/routers/ownerRoutes"
	storeRoutes "rately/routers/storeRoutes"
	"rately/utils"

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
		AllowMethods: "GET,POST,PUT,PATCH,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	authRoutes.SetupAuthRoutes(app)
	storeRoutes.SetupStoreRoutes(app)
	ownerRoutes.SetupOwnerRoutes(app)
	adminRoutes.SetupAdminRoutes(app)

	// Nightly reconciliation of the denormalized rating aggregates
	utils.StartAggregateScheduler()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
