package consultationRoutes

import (
	controllers "wealthgenius/controllers/consultation"
	"wealthgenius/middleware"
	validators "wealthgenius/validators/consultation"

	"github.com/gofiber/fiber/v2"
)

func SetupConsultationRoutes(app *fiber.App) {
	consultationGroup := app.Group("/consultation")

	consultationGroup.Post("/", validators.Schedule(), controllers.ScheduleConsultation)
	consultationGroup.Get("/list", middleware.JWTMiddleware, middleware.RequireAdmin, controllers.GetConsultations)
	consultationGroup.Patch("/:id", middleware.JWTMiddleware, middleware.RequireAdmin, validators.UpdateStatus(), controllers.UpdateConsultationStatus)
}
