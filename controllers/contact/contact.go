package controllers

import (
	"time"
	"wealthgenius/database"
	"wealthgenius/middleware"
	"wealthgenius/models"
	"wealthgenius/utils"

	"github.com/gofiber/fiber/v2"
)

// notifyInquiry pushes the admin alert email and the best-effort CRM
// webhook. Package-level so tests can swap it out.
var notifyInquiry = func(inquiry models.ContactInquiry) {
	utils.SendContactNotificationEmail(inquiry)
	go utils.PushInquiryToCRM(inquiry)
}

// CreateInquiry handles the public contact form. A logged-in caller gets
// linked to the record; anonymous submissions are fine too.
func CreateInquiry(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedInquiry").(*struct {
		Name           string `json:"name"`
		Email          string `json:"email"`
		Phone          string `json:"phone"`
		Subject        string `json:"subject"`
		Message        string `json:"message"`
		CourseInterest string `json:"course_interest"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	inquiry := models.ContactInquiry{
		Name:           reqData.Name,
		Email:          reqData.Email,
		Phone:          reqData.Phone,
		Subject:        reqData.Subject,
		Message:        reqData.Message,
		CourseInterest: reqData.CourseInterest,
	}

	// Optional auth: attach the user when a valid token was presented
	if userID, ok := c.Locals("userId").(uint); ok {
		inquiry.UserID = &userID
	}

	if err := database.Database.Db.Create(&inquiry).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit inquiry!", nil)
	}

	notifyInquiry(inquiry)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Inquiry submitted successfully! We will get back to you soon.", fiber.Map{
		"inquiry_id": inquiry.ID,
	})
}

// GetInquiries lists contact inquiries. Admin only.
func GetInquiries(c *fiber.Ctx) error {
	var inquiries []models.ContactInquiry
	if err := database.Database.Db.Order("created_at desc").Find(&inquiries).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch inquiries!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Inquiries fetched successfully!", fiber.Map{
		"inquiries": inquiries,
	})
}

// ResolveInquiry marks an inquiry resolved. Admin only.
func ResolveInquiry(c *fiber.Ctx) error {
	inquiryID := c.Locals("inquiryID").(int)

	db := database.Database.Db

	var inquiry models.ContactInquiry
	if err := db.Where("id = ?", inquiryID).First(&inquiry).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Inquiry not found!", nil)
	}

	now := time.Now()
	if err := db.Model(&inquiry).Updates(map[string]interface{}{
		"is_resolved": true,
		"resolved_at": &now,
	}).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to resolve inquiry!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Inquiry resolved successfully!", inquiry)
}
