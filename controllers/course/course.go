package controllers

import (
	"errors"
	"wealthgenius/database"
	"wealthgenius/middleware"
	"wealthgenius/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CourseRequest is the create-course payload, validated upstream
type CourseRequest struct {
	Title            string   `json:"title"`
	Slug             string   `json:"slug"`
	Description      string   `json:"description"`
	ShortDescription string   `json:"short_description"`
	Level            string   `json:"level"`
	Category         string   `json:"category"`
	DurationWeeks    int      `json:"duration_weeks"`
	Price            float64  `json:"price"`
	OriginalPrice    *float64 `json:"original_price"`
	IsFeatured       bool     `json:"is_featured"`
	IsPublished      bool     `json:"is_published"`
	ThumbnailURL     string   `json:"thumbnail_url"`
	VideoIntroURL    string   `json:"video_intro_url"`
}

// GetAllCourses lists published courses with optional filters. Public.
func GetAllCourses(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCourseList").(*struct {
		Skip     int    `json:"skip"`
		Limit    int    `json:"limit"`
		Level    string `json:"level"`
		Category string `json:"category"`
		Featured *bool  `json:"featured"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
	}

	db := database.Database.Db.Model(&models.Course{}).Where("is_published = ?", true)

	if reqData.Level != "" {
		db = db.Where("level = ?", reqData.Level)
	}
	if reqData.Category != "" {
		db = db.Where("category = ?", reqData.Category)
	}
	if reqData.Featured != nil {
		db = db.Where("is_featured = ?", *reqData.Featured)
	}

	var total int64
	db.Count(&total)

	var courses []models.Course
	if err := db.Offset(reqData.Skip).Limit(reqData.Limit).Order("created_at desc").Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"courses": courses,
		"total":   total,
	})
}

// GetCourseDetails returns one course with its features and lessons
func GetCourseDetails(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	db := database.Database.Db

	var course models.Course
	if err := db.Where("id = ?", courseID).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var features []models.CourseFeature
	db.Where("course_id = ?", course.ID).Order("sort_order").Find(&features)

	var lessons []models.Lesson
	db.Where("course_id = ?", course.ID).Order("sort_order").Find(&lessons)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully!", fiber.Map{
		"course":   course,
		"features": features,
		"lessons":  lessons,
	})
}

// CreateCourse creates a course owned by the calling instructor/admin
func CreateCourse(c *fiber.Ctx) error {
	user := c.Locals("currentUser").(*models.User)

	reqData, ok := c.Locals("validatedCourse").(*CourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	// Slug is globally unique
	if err := db.Where("slug = ?", reqData.Slug).First(&models.Course{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course with this slug already exists!", nil)
	}

	course := models.Course{
		Title:            reqData.Title,
		Slug:             reqData.Slug,
		Description:      reqData.Description,
		ShortDescription: reqData.ShortDescription,
		Level:            reqData.Level,
		Category:         reqData.Category,
		DurationWeeks:    reqData.DurationWeeks,
		Price:            reqData.Price,
		OriginalPrice:    reqData.OriginalPrice,
		IsFeatured:       reqData.IsFeatured,
		IsPublished:      reqData.IsPublished,
		ThumbnailURL:     reqData.ThumbnailURL,
		VideoIntroURL:    reqData.VideoIntroURL,
		InstructorID:     user.ID,
	}

	if err := db.Create(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course with this slug already exists!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", course)
}

// UpdateCourse updates a course (owning instructor or admin)
func UpdateCourse(c *fiber.Ctx) error {
	user := c.Locals("currentUser").(*models.User)
	courseID := c.Locals("courseID").(int)

	reqData, ok := c.Locals("validatedCourseUpdate").(map[string]interface{})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var course models.Course
	if err := db.Where("id = ?", courseID).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if !middleware.IsOwnerOrAdmin(user, course.InstructorID) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not have permission to access this resource!", nil)
	}

	if err := db.Model(&course).Updates(reqData).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course with this slug already exists!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully!", course)
}

// DeleteCourse removes a course and its lessons and features (owning
// instructor or admin). Children go first, the schema has no cascade.
func DeleteCourse(c *fiber.Ctx) error {
	user := c.Locals("currentUser").(*models.User)
	courseID := c.Locals("courseID").(int)

	db := database.Database.Db

	var course models.Course
	if err := db.Where("id = ?", courseID).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if !middleware.IsOwnerOrAdmin(user, course.InstructorID) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not have permission to access this resource!", nil)
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("course_id = ?", course.ID).Delete(&models.Lesson{}).Error; err != nil {
			return err
		}
		if err := tx.Where("course_id = ?", course.ID).Delete(&models.CourseFeature{}).Error; err != nil {
			return err
		}
		return tx.Delete(&course).Error
	})
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully!", nil)
}

// AddCourseFeature adds a bullet descriptor to a course
func AddCourseFeature(c *fiber.Ctx) error {
	user := c.Locals("currentUser").(*models.User)
	courseID := c.Locals("courseID").(int)

	reqData, ok := c.Locals("validatedFeature").(*struct {
		FeatureName        string `json:"feature_name"`
		FeatureDescription string `json:"feature_description"`
		Icon               string `json:"icon"`
		SortOrder          int    `json:"sort_order"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var course models.Course
	if err := db.Where("id = ?", courseID).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if !middleware.IsOwnerOrAdmin(user, course.InstructorID) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not have permission to access this resource!", nil)
	}

	feature := models.CourseFeature{
		CourseID:           course.ID,
		FeatureName:        reqData.FeatureName,
		FeatureDescription: reqData.FeatureDescription,
		Icon:               reqData.Icon,
		SortOrder:          reqData.SortOrder,
	}

	if err := db.Create(&feature).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to add feature!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Feature added successfully!", feature)
}

// AddLesson adds a lesson to a course
func AddLesson(c *fiber.Ctx) error {
	user := c.Locals("currentUser").(*models.User)
	courseID := c.Locals("courseID").(int)

	reqData, ok := c.Locals("validatedLesson").(*struct {
		Title           string `json:"title"`
		Description     string `json:"description"`
		Content         string `json:"content"`
		VideoURL        string `json:"video_url"`
		DurationMinutes int    `json:"duration_minutes"`
		SortOrder       int    `json:"sort_order"`
		IsFree          bool   `json:"is_free"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var course models.Course
	if err := db.Where("id = ?", courseID).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if !middleware.IsOwnerOrAdmin(user, course.InstructorID) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not have permission to access this resource!", nil)
	}

	lesson := models.Lesson{
		CourseID:        course.ID,
		Title:           reqData.Title,
		Description:     reqData.Description,
		Content:         reqData.Content,
		VideoURL:        reqData.VideoURL,
		DurationMinutes: reqData.DurationMinutes,
		SortOrder:       reqData.SortOrder,
		IsFree:          reqData.IsFree,
	}

	if err := db.Create(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to add lesson!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Lesson added successfully!", lesson)
}
