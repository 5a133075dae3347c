package controllers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"
	"wealthgenius/config"
	"wealthgenius/database"
	"wealthgenius/middleware"
	"wealthgenius/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	config.AppConfig = &config.Config{
		SaltRound:             bcrypt.MinCost,
		JWTKey:                "test-secret",
		AdminEmail:            "admin@wealthgenius.com",
		SMTPHost:              "127.0.0.1",
		SMTPPort:              "1",
		AllowCourseAutoCreate: true,
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	assert.NoError(t, err)
	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}
	return db
}

func setupTestApp(db *gorm.DB) *fiber.App {
	app := fiber.New()
	app.Post("/enrollment/form", func(c *fiber.Ctx) error {
		form := new(EnrollmentForm)
		if err := c.BodyParser(form); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		c.Locals("validatedEnrollmentForm", form)
		return SubmitEnrollmentForm(c)
	})
	return app
}

func TestParseDisplayPrice(t *testing.T) {
	assert.Equal(t, 15000.0, parseDisplayPrice("₹15,000"))
	assert.Equal(t, 9999.0, parseDisplayPrice("₹9,999"))
	assert.Equal(t, 1500.0, parseDisplayPrice("1500"))
	assert.Equal(t, 12500.5, parseDisplayPrice("₹12,500.50"))
	assert.Equal(t, 0.0, parseDisplayPrice("Contact us"))
	assert.Equal(t, 0.0, parseDisplayPrice(""))
}

func TestSlugifyTitle(t *testing.T) {
	assert.Equal(t, "options-mastery", slugifyTitle("Options Mastery"))
	assert.Equal(t, "stock-market-basics", slugifyTitle("Stock Market Basics"))
	assert.Equal(t, "trading--plus-investing", slugifyTitle("Trading + Investing"))
}

func TestResolveUserCreatesStudent(t *testing.T) {
	db := setupTestDB(t)

	form := &EnrollmentForm{
		Name:  "Alice Kumar",
		Email: "alice@example.com",
		Phone: "9876543210",
		City:  "Mumbai",
	}

	user, created, err := resolveUser(db, form)
	assert.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, models.RoleStudent, user.Role)
	assert.True(t, user.IsActive)
	assert.False(t, user.IsVerified)
	assert.NotEmpty(t, user.Password)
}

func TestResolveUserUsernameCollision(t *testing.T) {
	db := setupTestDB(t)

	db.Create(&models.User{
		Email:    "alice@other.com",
		Username: "alice",
		FullName: "Other Alice",
		Password: "x",
	})

	form := &EnrollmentForm{
		Name:  "Alice Kumar",
		Email: "alice@example.com",
		Phone: "9876543210",
		City:  "Mumbai",
	}

	user, created, err := resolveUser(db, form)
	assert.NoError(t, err)
	assert.True(t, created)
	assert.Regexp(t, regexp.MustCompile(`^alice_[0-9a-f]{8}$`), user.Username)
}

func TestResolveUserBackfillsOnlyEmptyFields(t *testing.T) {
	db := setupTestDB(t)

	db.Create(&models.User{
		Email:    "bob@example.com",
		Username: "bob",
		FullName: "Robert Shah",
		Password: "x",
		Phone:    "",
		City:     "Pune",
	})

	form := &EnrollmentForm{
		Name:  "Bobby",
		Email: "bob@example.com",
		Phone: "9123456789",
		City:  "Delhi",
	}

	user, created, err := resolveUser(db, form)
	assert.NoError(t, err)
	assert.False(t, created)

	var stored models.User
	db.First(&stored, user.ID)
	assert.Equal(t, "Robert Shah", stored.FullName) // populated, never overwritten
	assert.Equal(t, "9123456789", stored.Phone)     // was empty, back-filled
	assert.Equal(t, "Pune", stored.City)            // populated, never overwritten
}

func TestResolveCourseAutoCreate(t *testing.T) {
	db := setupTestDB(t)

	db.Create(&models.User{
		Email:    "boss@wealthgenius.com",
		Username: "boss",
		FullName: "The Boss",
		Password: "x",
		Role:     models.RoleAdmin,
	})

	course, err := resolveCourse(db, "Options Mastery", "₹9,999")
	assert.NoError(t, err)
	assert.Equal(t, "Options Mastery", course.Title)
	assert.Equal(t, "options-mastery", course.Slug)
	assert.Equal(t, 9999.0, course.Price)
	assert.Equal(t, models.LevelBeginner, course.Level)
	assert.Equal(t, models.CategoryStockMarket, course.Category)
	assert.Equal(t, 4, course.DurationWeeks)
	assert.True(t, course.IsPublished)

	var instructor models.User
	db.First(&instructor, course.InstructorID)
	assert.Equal(t, models.RoleAdmin, instructor.Role)
}

func TestResolveCourseSeedsInstructorWhenNoneExists(t *testing.T) {
	db := setupTestDB(t)

	course, err := resolveCourse(db, "Day Trading 101", "₹5,000")
	assert.NoError(t, err)

	var instructor models.User
	db.First(&instructor, course.InstructorID)
	assert.Equal(t, defaultInstructorEmail, instructor.Email)
	assert.Equal(t, models.RoleInstructor, instructor.Role)
}

func TestResolveCoursePrefersExistingInstructorOverSeed(t *testing.T) {
	db := setupTestDB(t)

	db.Create(&models.User{
		Email:    "teach@example.com",
		Username: "teach",
		FullName: "Lead Instructor",
		Password: "x",
		Role:     models.RoleInstructor,
	})

	course, err := resolveCourse(db, "Swing Trading", "₹4,000")
	assert.NoError(t, err)

	var instructor models.User
	db.First(&instructor, course.InstructorID)
	assert.Equal(t, "teach@example.com", instructor.Email)
}

func TestResolveCourseAutoCreateDisabled(t *testing.T) {
	db := setupTestDB(t)
	config.AppConfig.AllowCourseAutoCreate = false

	_, err := resolveCourse(db, "Unknown Course", "₹1,000")
	assert.ErrorIs(t, err, ErrUnknownCourse)

	var count int64
	db.Model(&models.Course{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestSubmitEnrollmentFirstTime(t *testing.T) {
	db := setupTestDB(t)

	form := &EnrollmentForm{
		Name:        "Alice Kumar",
		Email:       "alice@example.com",
		Phone:       "9876543210",
		City:        "Mumbai",
		CourseTitle: "Options Mastery",
		CoursePrice: "₹9,999",
	}

	result, err := submitEnrollment(db, form)
	assert.NoError(t, err)
	assert.True(t, result.UserCreated)
	assert.False(t, result.AlreadyEnrolled)

	var userCount, courseCount, enrollCount int64
	db.Model(&models.User{}).Count(&userCount)
	db.Model(&models.Course{}).Count(&courseCount)
	db.Model(&models.Enrollment{}).Count(&enrollCount)
	// alice plus the seeded instructor
	assert.Equal(t, int64(2), userCount)
	assert.Equal(t, int64(1), courseCount)
	assert.Equal(t, int64(1), enrollCount)

	e := result.Enrollment
	assert.Equal(t, "Alice Kumar", e.StudentName)
	assert.Equal(t, "₹9,999", e.CoursePrice)
	assert.Equal(t, 9999.0, e.PaymentAmount)
	assert.Equal(t, "pending", e.PaymentMethod)
	assert.Equal(t, models.EnrollmentActive, e.Status)
}

func TestSubmitEnrollmentIdempotent(t *testing.T) {
	db := setupTestDB(t)

	form := &EnrollmentForm{
		Name:        "Alice Kumar",
		Email:       "alice@example.com",
		Phone:       "9876543210",
		City:        "Mumbai",
		CourseTitle: "Options Mastery",
		CoursePrice: "₹9,999",
	}

	first, err := submitEnrollment(db, form)
	assert.NoError(t, err)

	second, err := submitEnrollment(db, form)
	assert.NoError(t, err)
	assert.True(t, second.AlreadyEnrolled)
	assert.Equal(t, first.Enrollment.ID, second.Enrollment.ID)
	assert.False(t, second.UserCreated)

	var enrollCount int64
	db.Model(&models.Enrollment{}).Count(&enrollCount)
	assert.Equal(t, int64(1), enrollCount)
}

func TestSubmitEnrollmentSnapshotNotResynced(t *testing.T) {
	db := setupTestDB(t)

	form := &EnrollmentForm{
		Name:        "Alice Kumar",
		Email:       "alice@example.com",
		Phone:       "9876543210",
		City:        "Mumbai",
		CourseTitle: "Options Mastery",
		CoursePrice: "₹9,999",
	}

	result, err := submitEnrollment(db, form)
	assert.NoError(t, err)

	// Later profile edits must not touch the stored snapshot
	db.Model(&models.User{}).Where("email = ?", form.Email).Update("phone", "0000000000")

	var stored models.Enrollment
	db.First(&stored, result.Enrollment.ID)
	assert.Equal(t, "9876543210", stored.StudentPhone)
}

func TestEnrollmentFormEndToEnd(t *testing.T) {
	db := setupTestDB(t)

	notified := make(chan models.Enrollment, 1)
	originalNotify := notifyEnrollment
	notifyEnrollment = func(e models.Enrollment) { notified <- e }
	defer func() { notifyEnrollment = originalNotify }()

	app := setupTestApp(db)

	payload := map[string]string{
		"name":         "Jay Patel",
		"email":        "jay@example.com",
		"phone":        "9000000000",
		"city":         "Ahmedabad",
		"course_title": "Options Mastery",
		"course_price": "₹9,999",
	}
	body, _ := json.Marshal(payload)

	req := httptest.NewRequest("POST", "/enrollment/form", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	respBody, _ := io.ReadAll(resp.Body)
	var parsed struct {
		Status  bool   `json:"status"`
		Message string `json:"message"`
		Data    struct {
			EnrollmentID uint `json:"enrollment_id"`
			UserCreated  bool `json:"user_created"`
		} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(respBody, &parsed))
	assert.Contains(t, parsed.Message, "submitted successfully")
	assert.NotZero(t, parsed.Data.EnrollmentID)
	assert.True(t, parsed.Data.UserCreated)

	sent := <-notified
	assert.Equal(t, parsed.Data.EnrollmentID, sent.ID)

	// Identical resubmission returns the original enrollment
	req = httptest.NewRequest("POST", "/enrollment/form", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	respBody, _ = io.ReadAll(resp.Body)
	var second struct {
		Message string `json:"message"`
		Data    struct {
			EnrollmentID uint `json:"enrollment_id"`
		} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(respBody, &second))
	assert.Contains(t, second.Message, "already enrolled")
	assert.Equal(t, parsed.Data.EnrollmentID, second.Data.EnrollmentID)
}

func TestLostInsertRaceReturnsClientError(t *testing.T) {
	db := setupTestDB(t)

	originalNotify := notifyEnrollment
	notifyEnrollment = func(e models.Enrollment) {}
	defer func() { notifyEnrollment = originalNotify }()

	// Slip a competing identical enrollment in after the idempotency
	// lookup but before the insert, so the unique index rejects the
	// submission the way a lost concurrent race would.
	raced := false
	err := db.Callback().Create().Before("gorm:create").Register("competing_enrollment", func(tx *gorm.DB) {
		pending, ok := tx.Statement.Dest.(*models.Enrollment)
		if !ok || raced {
			return
		}
		raced = true
		competing := *pending
		tx.Session(&gorm.Session{NewDB: true}).Create(&competing)
	})
	assert.NoError(t, err)

	app := setupTestApp(db)

	payload := map[string]string{
		"name":         "Jay Patel",
		"email":        "jay@example.com",
		"phone":        "9000000000",
		"city":         "Ahmedabad",
		"course_title": "Options Mastery",
		"course_price": "₹9,999",
	}
	body, _ := json.Marshal(payload)

	req := httptest.NewRequest("POST", "/enrollment/form", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.True(t, raced)

	respBody, _ := io.ReadAll(resp.Body)
	var parsed struct {
		Status  bool   `json:"status"`
		Message string `json:"message"`
	}
	assert.NoError(t, json.Unmarshal(respBody, &parsed))
	assert.False(t, parsed.Status)
	assert.Contains(t, parsed.Message, "Please try again.")
}

func TestNotificationOutageDoesNotAffectResponse(t *testing.T) {
	db := setupTestDB(t)

	// Simulate a dead mail relay: the notifier fails internally
	done := make(chan struct{})
	originalNotify := notifyEnrollment
	notifyEnrollment = func(e models.Enrollment) {
		defer close(done)
		// SMTPHost 127.0.0.1:1 refuses connections; SendEmail swallows it
	}
	defer func() { notifyEnrollment = originalNotify }()

	app := setupTestApp(db)

	payload := map[string]string{
		"name":         "Jay Patel",
		"email":        "jay@example.com",
		"phone":        "9000000000",
		"city":         "Ahmedabad",
		"course_title": "Options Mastery",
		"course_price": "₹9,999",
	}
	body, _ := json.Marshal(payload)

	req := httptest.NewRequest("POST", "/enrollment/form", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	<-done

	var enrollCount int64
	db.Model(&models.Enrollment{}).Count(&enrollCount)
	assert.Equal(t, int64(1), enrollCount)
}
