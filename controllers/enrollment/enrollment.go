package controllers

import (
	"errors"
	"fmt"
	"time"
	"wealthgenius/database"
	"wealthgenius/middleware"
	"wealthgenius/models"
	"wealthgenius/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// notifyEnrollment fires the two intake emails. Package-level so tests
// can swap it out; failures stay inside the goroutine.
var notifyEnrollment = func(e models.Enrollment) {
	utils.SendEnrollmentConfirmationEmail(e.StudentName, e.StudentEmail, e.CourseTitle, e.CoursePrice, e.ID)
	utils.SendEnrollmentAdminAlert(e)
}

// SubmitEnrollmentForm handles the public enrollment form
func SubmitEnrollmentForm(c *fiber.Ctx) error {
	form, ok := c.Locals("validatedEnrollmentForm").(*EnrollmentForm)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	result, err := submitEnrollment(database.Database.Db, form)
	if err != nil {
		if errors.Is(err, ErrUnknownCourse) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost a race against a concurrent identical submission
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Error creating enrollment. Please try again.", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Internal server error occurred while processing enrollment.", nil)
	}

	data := fiber.Map{
		"enrollment_id": result.Enrollment.ID,
		"user_created":  result.UserCreated,
	}

	if result.AlreadyEnrolled {
		message := fmt.Sprintf("You are already enrolled in %s", result.Enrollment.CourseTitle)
		return middleware.JsonResponse(c, fiber.StatusOK, true, message, data)
	}

	go notifyEnrollment(result.Enrollment)

	message := fmt.Sprintf("Enrollment request submitted successfully for %s! We will contact you soon.", result.Enrollment.CourseTitle)
	return middleware.JsonResponse(c, fiber.StatusCreated, true, message, data)
}

// GetEnrollment returns one enrollment snapshot (owner or admin)
func GetEnrollment(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	enrollmentID := c.Locals("enrollmentID").(int)

	var enrollment models.Enrollment
	if err := database.Database.Db.Where("id = ?", enrollmentID).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Enrollment not found!", nil)
	}

	if !middleware.IsOwnerOrAdmin(user, enrollment.UserID) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not have permission to access this resource!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollment fetched successfully!", enrollment)
}

// GetUserEnrollments returns all enrollments for a user (owner or admin)
func GetUserEnrollments(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	targetID := c.Locals("targetUserID").(int)

	if !middleware.IsOwnerOrAdmin(user, uint(targetID)) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not have permission to access this resource!", nil)
	}

	var enrollments []models.Enrollment
	if err := database.Database.Db.Where("user_id = ?", targetID).Order("created_at desc").Find(&enrollments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", fiber.Map{
		"enrollments": enrollments,
	})
}

// UpdateLessonProgress upserts the caller's progress on one lesson of an
// enrolled course. Progress rows are created lazily on first watch.
func UpdateLessonProgress(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	enrollmentID := c.Locals("enrollmentID").(int)
	lessonID := c.Locals("lessonID").(int)

	reqData, ok := c.Locals("validatedProgress").(*struct {
		WatchTimeSeconds *int  `json:"watch_time_seconds"`
		IsCompleted      *bool `json:"is_completed"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var enrollment models.Enrollment
	if err := db.Where("id = ?", enrollmentID).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Enrollment not found!", nil)
	}

	if !middleware.IsOwnerOrAdmin(user, enrollment.UserID) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not have permission to access this resource!", nil)
	}

	var lesson models.Lesson
	if err := db.Where("id = ? AND course_id = ?", lessonID, enrollment.CourseID).First(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found in this course!", nil)
	}

	now := time.Now()

	var progress models.LessonProgress
	err := db.Where("enrollment_id = ? AND lesson_id = ?", enrollment.ID, lesson.ID).First(&progress).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update progress!", nil)
		}
		progress = models.LessonProgress{
			EnrollmentID: enrollment.ID,
			LessonID:     lesson.ID,
		}
	}

	if reqData.WatchTimeSeconds != nil {
		progress.WatchTimeSeconds += *reqData.WatchTimeSeconds
	}
	progress.LastWatchedAt = &now
	if reqData.IsCompleted != nil && *reqData.IsCompleted && !progress.IsCompleted {
		progress.IsCompleted = true
		progress.CompletedAt = &now
	}

	if err := db.Save(&progress).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update progress!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress updated successfully!", progress)
}
