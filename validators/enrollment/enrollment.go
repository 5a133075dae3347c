package enrollmentValidator

import (
	"strconv"
	"strings"
	controllers "wealthgenius/controllers/enrollment"
	"wealthgenius/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// SubmitForm validates the public enrollment form payload
func SubmitForm() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(controllers.EnrollmentForm)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Name = strings.TrimSpace(reqData.Name)
		reqData.Email = strings.TrimSpace(strings.ToLower(reqData.Email))
		reqData.Phone = strings.TrimSpace(reqData.Phone)
		reqData.City = strings.TrimSpace(reqData.City)
		reqData.CourseTitle = strings.TrimSpace(reqData.CourseTitle)
		reqData.CoursePrice = strings.TrimSpace(reqData.CoursePrice)

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
				case "City":
					errors["city"] = "City is required!"
				case "CourseTitle":
					errors["course_title"] = "Course title is required!"
				case "CoursePrice":
					errors["course_price"] = "Course price is required!"
				}
			}
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedEnrollmentForm", reqData)
		return c.Next()
	}
}

// GetEnrollment validates the enrollment ID path parameter
func GetEnrollment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("id"))
		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Enrollment ID!", nil)
		}

		c.Locals("enrollmentID", id)
		return c.Next()
	}
}

// GetUserEnrollments validates the user ID path parameter
func GetUserEnrollments() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("user_id"))
		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid User ID!", nil)
		}

		c.Locals("targetUserID", id)
		return c.Next()
	}
}

// UpdateProgress validates the lesson progress payload and path params
func UpdateProgress() fiber.Handler {
	return func(c *fiber.Ctx) error {
		enrollmentID, err := strconv.Atoi(strings.TrimSpace(c.Params("id")))
		if err != nil || enrollmentID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Enrollment ID!", nil)
		}

		lessonID, err := strconv.Atoi(strings.TrimSpace(c.Params("lesson_id")))
		if err != nil || lessonID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Lesson ID!", nil)
		}

		reqData := new(struct {
			WatchTimeSeconds *int  `json:"watch_time_seconds"`
			IsCompleted      *bool `json:"is_completed"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)
		if reqData.WatchTimeSeconds != nil && *reqData.WatchTimeSeconds < 0 {
			errors["watch_time_seconds"] = "Watch time cannot be negative!"
		}
		if reqData.WatchTimeSeconds == nil && reqData.IsCompleted == nil {
			errors["body"] = "Nothing to update!"
		}
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("enrollmentID", enrollmentID)
		c.Locals("lessonID", lessonID)
		c.Locals("validatedProgress", reqData)
		return c.Next()
	}
}
