package testimonialRoutes

import (
	controllers "wealthgenius/controllers/testimonial"
	"wealthgenius/middleware"
	validators "wealthgenius/validators/testimonial"

	"github.com/gofiber/fiber/v2"
)

func SetupTestimonialRoutes(app *fiber.App) {
	testimonialGroup := app.Group("/testimonial")

	testimonialGroup.Get("/list", controllers.GetApprovedTestimonials)
	testimonialGroup.Post("/", middleware.JWTMiddleware, validators.TestimonialBody(), controllers.CreateTestimonial)
	testimonialGroup.Put("/:id", middleware.JWTMiddleware, validators.TestimonialID(), validators.TestimonialBody(), controllers.UpdateTestimonial)
	testimonialGroup.Delete("/:id", middleware.JWTMiddleware, validators.TestimonialID(), controllers.DeleteTestimonial)
	testimonialGroup.Patch("/:id/approve", middleware.JWTMiddleware, middleware.RequireAdmin, validators.TestimonialID(), controllers.ApproveTestimonial)
	testimonialGroup.Patch("/:id/feature", middleware.JWTMiddleware, middleware.RequireAdmin, validators.TestimonialID(), controllers.FeatureTestimonial)
}
