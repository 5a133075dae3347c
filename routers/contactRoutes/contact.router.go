package contactRoutes

import (
	controllers "wealthgenius/controllers/contact"
	"wealthgenius/middleware"
	validators "wealthgenius/validators/contact"

	"github.com/gofiber/fiber/v2"
)

func SetupContactRoutes(app *fiber.App) {
	contactGroup := app.Group("/contact")

	contactGroup.Post("/", validators.CreateInquiry(), controllers.CreateInquiry)
	contactGroup.Get("/list", middleware.JWTMiddleware, middleware.RequireAdmin, controllers.GetInquiries)
	contactGroup.Patch("/:id/resolve", middleware.JWTMiddleware, middleware.RequireAdmin, validators.InquiryID(), controllers.ResolveInquiry)
}
