package contactValidator

import (
	"strconv"
	"strings"
	"wealthgenius/middleware"

	"github.com/gofiber/fiber/v2"
)

// CreateInquiry validates the public contact form payload
func CreateInquiry() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name           string `json:"name"`
			Email          string `json:"email"`
			Phone          string `json:"phone"`
			Subject        string `json:"subject"`
			Message        string `json:"message"`
			CourseInterest string `json:"course_interest"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Name) == "" {
			errors["name"] = "Name is required!"
		}
		if strings.TrimSpace(reqData.Email) == "" || !strings.Contains(reqData.Email, "@") {
			errors["email"] = "A valid email is required!"
		}
		if strings.TrimSpace(reqData.Subject) == "" {
			errors["subject"] = "Subject is required!"
		}
		if strings.TrimSpace(reqData.Message) == "" {
			errors["message"] = "Message is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedInquiry", reqData)
		return c.Next()
	}
}

// InquiryID validates the :id path parameter
func InquiryID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("id"))
		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Inquiry ID!", nil)
		}

		c.Locals("inquiryID", id)
		return c.Next()
	}
}
