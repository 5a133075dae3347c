package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"wealthgenius/middleware"
	"wealthgenius/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// enrollmentApp mounts the protected enrollment routes with the path
// parameters parsed inline, skipping the validator middleware.
func enrollmentApp() *fiber.App {
	app := fiber.New()
	app.Get("/enrollment/user/:user_id", middleware.JWTMiddleware, func(c *fiber.Ctx) error {
		id, _ := strconv.Atoi(c.Params("user_id"))
		c.Locals("targetUserID", id)
		return GetUserEnrollments(c)
	})
	app.Get("/enrollment/:id", middleware.JWTMiddleware, func(c *fiber.Ctx) error {
		id, _ := strconv.Atoi(c.Params("id"))
		c.Locals("enrollmentID", id)
		return GetEnrollment(c)
	})
	app.Post("/enrollment/:id/lesson/:lesson_id/progress", middleware.JWTMiddleware, func(c *fiber.Ctx) error {
		id, _ := strconv.Atoi(c.Params("id"))
		lessonID, _ := strconv.Atoi(c.Params("lesson_id"))
		reqData := new(struct {
			WatchTimeSeconds *int  `json:"watch_time_seconds"`
			IsCompleted      *bool `json:"is_completed"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		c.Locals("enrollmentID", id)
		c.Locals("lessonID", lessonID)
		c.Locals("validatedProgress", reqData)
		return UpdateLessonProgress(c)
	})
	return app
}

func seedUser(t *testing.T, db *gorm.DB, email, role string) *models.User {
	user := &models.User{
		Email:    email,
		Username: email,
		FullName: "Test User",
		Password: "x",
		Role:     role,
		IsActive: true,
	}
	assert.NoError(t, db.Create(user).Error)
	return user
}

func bearerToken(t *testing.T, user *models.User) string {
	token, err := middleware.GenerateJWT(user.ID, user.FullName, user.Role, user.Email)
	assert.NoError(t, err)
	return "Bearer " + token
}

func TestGetUserEnrollmentsAuthorization(t *testing.T) {
	db := setupTestDB(t)

	owner := seedUser(t, db, "owner@test.com", models.RoleStudent)
	other := seedUser(t, db, "other@test.com", models.RoleStudent)
	admin := seedUser(t, db, "admin@test.com", models.RoleAdmin)

	app := enrollmentApp()

	path := fmt.Sprintf("/enrollment/user/%d", owner.ID)

	cases := []struct {
		name   string
		caller *models.User
		status int
	}{
		{"owner reads own enrollments", owner, http.StatusOK},
		{"other student is denied", other, http.StatusForbidden},
		{"admin reads any user's enrollments", admin, http.StatusOK},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", path, nil)
			req.Header.Set("Authorization", bearerToken(t, tc.caller))
			resp, err := app.Test(req, -1)
			assert.NoError(t, err)
			assert.Equal(t, tc.status, resp.StatusCode)
		})
	}
}

func TestGetEnrollmentAuthorization(t *testing.T) {
	db := setupTestDB(t)

	owner := seedUser(t, db, "owner@test.com", models.RoleStudent)
	other := seedUser(t, db, "other@test.com", models.RoleStudent)
	instructor := seedUser(t, db, "teach@test.com", models.RoleInstructor)

	course := &models.Course{
		Title: "C", Slug: "c",
		Level: models.LevelBeginner, Category: models.CategoryStockMarket,
		InstructorID: instructor.ID, IsPublished: true,
	}
	assert.NoError(t, db.Create(course).Error)

	enrollment := &models.Enrollment{
		UserID: owner.ID, CourseID: course.ID,
		StudentName: "O", StudentEmail: "owner@test.com",
		StudentPhone: "9", StudentCity: "c",
		CourseTitle: "C", CoursePrice: "₹1",
		Status: models.EnrollmentActive,
	}
	assert.NoError(t, db.Create(enrollment).Error)

	app := enrollmentApp()

	path := fmt.Sprintf("/enrollment/%d", enrollment.ID)

	req := httptest.NewRequest("GET", path, nil)
	req.Header.Set("Authorization", bearerToken(t, owner))
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	req = httptest.NewRequest("GET", path, nil)
	req.Header.Set("Authorization", bearerToken(t, other))
	resp, err = app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	req = httptest.NewRequest("GET", path, nil)
	resp, err = app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestUpdateLessonProgressAccumulates(t *testing.T) {
	db := setupTestDB(t)

	student := seedUser(t, db, "student@test.com", models.RoleStudent)
	instructor := seedUser(t, db, "teach@test.com", models.RoleInstructor)

	course := &models.Course{
		Title: "C", Slug: "c",
		Level: models.LevelBeginner, Category: models.CategoryStockMarket,
		InstructorID: instructor.ID, IsPublished: true,
	}
	assert.NoError(t, db.Create(course).Error)

	lesson := &models.Lesson{CourseID: course.ID, Title: "L1", SortOrder: 1}
	assert.NoError(t, db.Create(lesson).Error)

	enrollment := &models.Enrollment{
		UserID: student.ID, CourseID: course.ID,
		StudentName: "S", StudentEmail: "student@test.com",
		StudentPhone: "9", StudentCity: "c",
		CourseTitle: "C", CoursePrice: "₹1",
		Status: models.EnrollmentActive,
	}
	assert.NoError(t, db.Create(enrollment).Error)

	app := enrollmentApp()

	path := fmt.Sprintf("/enrollment/%d/lesson/%d/progress", enrollment.ID, lesson.ID)
	token := bearerToken(t, student)

	post := func(payload map[string]interface{}) *http.Response {
		body, _ := json.Marshal(payload)
		req := httptest.NewRequest("POST", path, bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", token)
		resp, err := app.Test(req, -1)
		assert.NoError(t, err)
		return resp
	}

	resp := post(map[string]interface{}{"watch_time_seconds": 120})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = post(map[string]interface{}{"watch_time_seconds": 60, "is_completed": true})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var progress models.LessonProgress
	assert.NoError(t, db.Where("enrollment_id = ? AND lesson_id = ?", enrollment.ID, lesson.ID).First(&progress).Error)
	assert.Equal(t, 180, progress.WatchTimeSeconds)
	assert.True(t, progress.IsCompleted)
	assert.NotNil(t, progress.CompletedAt)

	// Only one progress row per enrollment/lesson pair
	var count int64
	db.Model(&models.LessonProgress{}).Count(&count)
	assert.Equal(t, int64(1), count)
}
