package controllers

import (
	"wealthgenius/database"
	"wealthgenius/middleware"
	"wealthgenius/models"

	"github.com/gofiber/fiber/v2"
)

// CreateTestimonial lets an authenticated user submit a review. It goes
// live only after admin approval.
func CreateTestimonial(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedTestimonial").(*struct {
		Title   string `json:"title"`
		Content string `json:"content"`
		Rating  int    `json:"rating"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	testimonial := models.Testimonial{
		UserID:  user.ID,
		Title:   reqData.Title,
		Content: reqData.Content,
		Rating:  reqData.Rating,
	}

	if err := database.Database.Db.Create(&testimonial).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create testimonial!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Testimonial submitted successfully! It will appear after approval.", testimonial)
}

// GetApprovedTestimonials lists approved testimonials. Public.
func GetApprovedTestimonials(c *fiber.Ctx) error {
	var testimonials []models.Testimonial
	if err := database.Database.Db.Where("is_approved = ?", true).Order("created_at desc").Find(&testimonials).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch testimonials!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Testimonials fetched successfully!", fiber.Map{
		"testimonials": testimonials,
	})
}

// UpdateTestimonial edits a testimonial (owner or admin). Edits reset
// the approval flag so admins re-review changed content.
func UpdateTestimonial(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	testimonialID := c.Locals("testimonialID").(int)

	reqData, ok := c.Locals("validatedTestimonial").(*struct {
		Title   string `json:"title"`
		Content string `json:"content"`
		Rating  int    `json:"rating"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var testimonial models.Testimonial
	if err := db.Where("id = ?", testimonialID).First(&testimonial).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Testimonial not found!", nil)
	}

	if !middleware.IsOwnerOrAdmin(user, testimonial.UserID) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not have permission to access this resource!", nil)
	}

	updates := map[string]interface{}{
		"title":       reqData.Title,
		"content":     reqData.Content,
		"rating":      reqData.Rating,
		"is_approved": false,
	}
	if err := db.Model(&testimonial).Updates(updates).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update testimonial!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Testimonial updated successfully!", testimonial)
}

// DeleteTestimonial removes a testimonial (owner or admin)
func DeleteTestimonial(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	testimonialID := c.Locals("testimonialID").(int)

	db := database.Database.Db

	var testimonial models.Testimonial
	if err := db.Where("id = ?", testimonialID).First(&testimonial).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Testimonial not found!", nil)
	}

	if !middleware.IsOwnerOrAdmin(user, testimonial.UserID) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not have permission to access this resource!", nil)
	}

	if err := db.Delete(&testimonial).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete testimonial!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Testimonial deleted successfully!", nil)
}

// ApproveTestimonial approves a testimonial for public display. Admin only.
func ApproveTestimonial(c *fiber.Ctx) error {
	testimonialID := c.Locals("testimonialID").(int)

	db := database.Database.Db

	var testimonial models.Testimonial
	if err := db.Where("id = ?", testimonialID).First(&testimonial).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Testimonial not found!", nil)
	}

	if err := db.Model(&testimonial).Updates(map[string]interface{}{
		"is_approved": true,
	}).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to approve testimonial!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Testimonial approved successfully!", testimonial)
}

// FeatureTestimonial toggles whether a testimonial is highlighted on the
// landing page. Admin only.
func FeatureTestimonial(c *fiber.Ctx) error {
	testimonialID := c.Locals("testimonialID").(int)

	db := database.Database.Db

	var testimonial models.Testimonial
	if err := db.Where("id = ?", testimonialID).First(&testimonial).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Testimonial not found!", nil)
	}

	featured := !testimonial.IsFeatured
	if err := db.Model(&testimonial).Updates(map[string]interface{}{
		"is_featured": featured,
	}).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update testimonial!", nil)
	}

	message := "Testimonial featured successfully!"
	if !featured {
		message = "Testimonial unfeatured successfully!"
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, message, testimonial)
}
