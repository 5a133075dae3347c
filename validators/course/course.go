package courseValidator

import (
	"strconv"
	"strings"
	controllers "wealthgenius/controllers/course"
	"wealthgenius/middleware"
	"wealthgenius/models"

	"github.com/gofiber/fiber/v2"
)

var validLevels = map[string]bool{
	models.LevelBeginner:     true,
	models.LevelIntermediate: true,
	models.LevelAdvanced:     true,
}

var validCategories = map[string]bool{
	models.CategoryStockMarket:         true,
	models.CategoryTechnicalAnalysis:   true,
	models.CategoryOptionsTrading:      true,
	models.CategoryDayTrading:          true,
	models.CategoryPortfolioManagement: true,
	models.CategoryAlgorithmicTrading:  true,
}

// CourseID validates the :id path parameter
func CourseID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("id"))
		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		c.Locals("courseID", id)
		return c.Next()
	}
}

// CourseList validates the course listing query parameters
func CourseList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := &struct {
			Skip     int    `json:"skip"`
			Limit    int    `json:"limit"`
			Level    string `json:"level"`
			Category string `json:"category"`
			Featured *bool  `json:"featured"`
		}{
			Skip:  c.QueryInt("skip", 0),
			Limit: c.QueryInt("limit", 100),
			Level: c.Query("level"),
		}
		reqData.Category = c.Query("category")
		if c.Query("featured") != "" {
			featured := c.QueryBool("featured")
			reqData.Featured = &featured
		}

		errors := make(map[string]string)

		if reqData.Skip < 0 {
			errors["skip"] = "Skip cannot be negative!"
		}
		if reqData.Limit < 1 || reqData.Limit > 100 {
			errors["limit"] = "Limit must be between 1 and 100!"
		}
		if reqData.Level != "" && !validLevels[reqData.Level] {
			errors["level"] = "Invalid course level!"
		}
		if reqData.Category != "" && !validCategories[reqData.Category] {
			errors["category"] = "Invalid course category!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourseList", reqData)
		return c.Next()
	}
}

// CreateCourse validates the create-course payload
func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(controllers.CourseRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		} else if len(strings.TrimSpace(reqData.Title)) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}
		if strings.TrimSpace(reqData.Slug) == "" {
			errors["slug"] = "Slug is required!"
		}
		if !validLevels[reqData.Level] {
			errors["level"] = "Invalid course level!"
		}
		if !validCategories[reqData.Category] {
			errors["category"] = "Invalid course category!"
		}
		if reqData.DurationWeeks < 1 {
			errors["duration_weeks"] = "Duration must be at least 1 week!"
		}
		if reqData.Price < 0 {
			errors["price"] = "Price cannot be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

// UpdateCourse validates the partial update payload and whitelists the
// columns a caller may touch
func UpdateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := map[string]interface{}{}
		if err := c.BodyParser(&raw); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		allowed := map[string]bool{
			"title": true, "slug": true, "description": true,
			"short_description": true, "level": true, "category": true,
			"duration_weeks": true, "price": true, "original_price": true,
			"is_featured": true, "is_published": true,
			"thumbnail_url": true, "video_intro_url": true,
		}

		updates := map[string]interface{}{}
		for key, value := range raw {
			if allowed[key] {
				updates[key] = value
			}
		}

		errors := make(map[string]string)

		if len(updates) == 0 {
			errors["body"] = "Nothing to update!"
		}
		if level, ok := updates["level"].(string); ok && !validLevels[level] {
			errors["level"] = "Invalid course level!"
		}
		if category, ok := updates["category"].(string); ok && !validCategories[category] {
			errors["category"] = "Invalid course category!"
		}
		if price, ok := updates["price"].(float64); ok && price < 0 {
			errors["price"] = "Price cannot be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourseUpdate", updates)
		return c.Next()
	}
}

// AddFeature validates the course feature payload
func AddFeature() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			FeatureName        string `json:"feature_name"`
			FeatureDescription string `json:"feature_description"`
			Icon               string `json:"icon"`
			SortOrder          int    `json:"sort_order"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if strings.TrimSpace(reqData.FeatureName) == "" {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"feature_name": "Feature name is required!",
			})
		}

		c.Locals("validatedFeature", reqData)
		return c.Next()
	}
}

// AddLesson validates the lesson payload
func AddLesson() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title           string `json:"title"`
			Description     string `json:"description"`
			Content         string `json:"content"`
			VideoURL        string `json:"video_url"`
			DurationMinutes int    `json:"duration_minutes"`
			SortOrder       int    `json:"sort_order"`
			IsFree          bool   `json:"is_free"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		}
		if reqData.DurationMinutes < 0 {
			errors["duration_minutes"] = "Duration cannot be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedLesson", reqData)
		return c.Next()
	}
}
