package controllers

import (
	"wealthgenius/database"
	"wealthgenius/middleware"
	"wealthgenius/models"
	"wealthgenius/utils"

	"github.com/gofiber/fiber/v2"
)

// ConsultationRequest is the public booking payload, validated upstream
type ConsultationRequest struct {
	Name    string `json:"name" validate:"required,min=2"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"required,min=7"`
	Date    string `json:"date" validate:"required,datetime=2006-01-02"`
	Time    string `json:"time" validate:"required,datetime=15:04"`
	Message string `json:"message"`
}

// notifyConsultation sends the confirmation and admin alert mails.
// Package-level so tests can swap it out.
var notifyConsultation = func(cs models.ConsultationSchedule) {
	utils.SendConsultationConfirmationEmail(cs)
	utils.SendConsultationAdminAlert(cs)
}

// ScheduleConsultation handles the public consultation booking form
func ScheduleConsultation(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedConsultation").(*ConsultationRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	consultation := models.ConsultationSchedule{
		Name:          reqData.Name,
		Email:         reqData.Email,
		Phone:         reqData.Phone,
		PreferredDate: reqData.Date,
		PreferredTime: reqData.Time,
		Message:       reqData.Message,
		Status:        models.ConsultationScheduled,
		IsActive:      true,
	}

	if err := database.Database.Db.Create(&consultation).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to schedule consultation!", nil)
	}

	notifyConsultation(consultation)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Consultation scheduled successfully! Check your email for confirmation.", fiber.Map{
		"consultation_id": consultation.ID,
	})
}

// GetConsultations lists consultation requests. Admin only.
func GetConsultations(c *fiber.Ctx) error {
	var consultations []models.ConsultationSchedule
	if err := database.Database.Db.Where("is_active = ?", true).Order("created_at desc").Find(&consultations).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch consultations!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Consultations fetched successfully!", fiber.Map{
		"consultations": consultations,
	})
}

// UpdateConsultationStatus moves a consultation between scheduled,
// completed and cancelled. Admin only.
func UpdateConsultationStatus(c *fiber.Ctx) error {
	consultationID := c.Locals("consultationID").(int)
	status := c.Locals("consultationStatus").(string)

	db := database.Database.Db

	var consultation models.ConsultationSchedule
	if err := db.Where("id = ? AND is_active = ?", consultationID, true).First(&consultation).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Consultation not found!", nil)
	}

	if err := db.Model(&consultation).Update("status", status).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update consultation!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Consultation updated successfully!", consultation)
}
