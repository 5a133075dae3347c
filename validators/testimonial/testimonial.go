package testimonialValidator

import (
	"strconv"
	"strings"
	"wealthgenius/middleware"

	"github.com/gofiber/fiber/v2"
)

// TestimonialID validates the :id path parameter
func TestimonialID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("id"))
		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Testimonial ID!", nil)
		}

		c.Locals("testimonialID", id)
		return c.Next()
	}
}

// TestimonialBody validates the create/update payload
func TestimonialBody() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title   string `json:"title"`
			Content string `json:"content"`
			Rating  int    `json:"rating"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		}
		if strings.TrimSpace(reqData.Content) == "" {
			errors["content"] = "Content is required!"
		} else if len(strings.TrimSpace(reqData.Content)) < 10 {
			errors["content"] = "Content must be at least 10 characters long!"
		}
		if reqData.Rating < 1 || reqData.Rating > 5 {
			errors["rating"] = "Rating must be between 1 and 5!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedTestimonial", reqData)
		return c.Next()
	}
}
