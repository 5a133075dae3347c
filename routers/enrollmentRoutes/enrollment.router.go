package enrollmentRoutes

import (
	controllers "wealthgenius/controllers/enrollment"
	"wealthgenius/middleware"
	validators "wealthgenius/validators/enrollment"

	"github.com/gofiber/fiber/v2"
)

// SetupEnrollmentRoutes sets up the enrollment intake and lookup routes
func SetupEnrollmentRoutes(app *fiber.App) {
	enrollGroup := app.Group("/enrollment")

	// Public intake form
	enrollGroup.Post("/form", validators.SubmitForm(), controllers.SubmitEnrollmentForm)

	// Lookups (owner or admin)
	enrollGroup.Get("/user/:user_id", middleware.JWTMiddleware, validators.GetUserEnrollments(), controllers.GetUserEnrollments)
	enrollGroup.Get("/:id", middleware.JWTMiddleware, validators.GetEnrollment(), controllers.GetEnrollment)

	// Lesson progress
	enrollGroup.Post("/:id/lesson/:lesson_id/progress", middleware.JWTMiddleware, validators.UpdateProgress(), controllers.UpdateLessonProgress)
}
