package main

import (
	"log"
	"wealthgenius/config"
	"wealthgenius/database"
	authRoutes "wealthgenius/routers/authRoutes"
	consultationRoutes "wealthgenius/routers/consultationRoutes"
	contactRoutes "wealthgenius/routers/contactRoutes"
	courseRoutes "wealthgenius/routers/courseRoutes"
	enrollmentRoutes "wealthgenius/routers/enrollmentRoutes"
	testimonialRoutes "wealthgenius/routers/testimonialRoutes"
	"wealthgenius/utils"

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
	enrollmentRoutes.SetupEnrollmentRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	testimonialRoutes.SetupTestimonialRoutes(app)
	contactRoutes.SetupContactRoutes(app)
	consultationRoutes.SetupConsultationRoutes(app)

	utils.InitializeEnrollmentScheduler()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
