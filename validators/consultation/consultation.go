package consultationValidator

import (
	"strconv"
	"strings"
	controllers "wealthgenius/controllers/consultation"
	"wealthgenius/middleware"
	"wealthgenius/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

var validStatuses = map[string]bool{
	models.ConsultationScheduled: true,
	models.ConsultationCompleted: true,
	models.ConsultationCancelled: true,
}

// Schedule validates the public consultation booking payload
func Schedule() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(controllers.ConsultationRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Name = strings.TrimSpace(reqData.Name)
		reqData.Email = strings.TrimSpace(strings.ToLower(reqData.Email))
		reqData.Phone = strings.TrimSpace(reqData.Phone)

		if err := validate.Struct(reqData); err != nil {
			errors := make(map[string]string)
			for _, fieldErr := range err.(validator.ValidationErrors) {
				switch fieldErr.Field() {
				case "Name":
					errors["name"] = "Name is required and must be at least 2 characters!"
				case "Email":
					errors["email"] = "A valid email is required!"
				case "Phone":
					errors["phone"] = "A valid phone number is required!"
				case "Date":
					errors["date"] = "Date must be in YYYY-MM-DD format!"
				case "Time":
					errors["time"] = "Time must be in HH:MM format!"
				}
			}
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedConsultation", reqData)
		return c.Next()
	}
}

// UpdateStatus validates the :id parameter and the status transition
func UpdateStatus() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("id"))
		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Consultation ID!", nil)
		}

		reqData := new(struct {
			Status string `json:"status"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if !validStatuses[reqData.Status] {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"status": "Status must be scheduled, completed or cancelled!",
			})
		}

		c.Locals("consultationID", id)
		c.Locals("consultationStatus", reqData.Status)
		return c.Next()
	}
}
