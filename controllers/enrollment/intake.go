package controllers

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"wealthgenius/config"
	"wealthgenius/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Default instructor seeded when a course must be auto-created and no
// admin or instructor account exists yet.
const defaultInstructorEmail = "instructor@wealthgenius.com"

// ErrUnknownCourse is returned by resolveCourse when the submitted title
// matches nothing and catalog auto-creation is switched off.
var ErrUnknownCourse = errors.New("course not found")

// EnrollmentForm is the public enrollment form payload
type EnrollmentForm struct {
	Name        string `json:"name" validate:"required,min=2"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone" validate:"required,min=7"`
	City        string `json:"city" validate:"required"`
	CourseTitle string `json:"course_title" validate:"required"`
	CoursePrice string `json:"course_price" validate:"required"`
}

type intakeResult struct {
	Enrollment      models.Enrollment
	UserCreated     bool
	AlreadyEnrolled bool
}

// parseDisplayPrice converts a marketing price string like "₹15,000" to
// its numeric value. Malformed input degrades to zero instead of failing
// the enrollment.
func parseDisplayPrice(display string) float64 {
	cleaned := strings.TrimSpace(display)
	cleaned = strings.ReplaceAll(cleaned, "₹", "")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	cleaned = strings.TrimSpace(cleaned)

	price, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return price
}

// slugifyTitle derives a URL-safe slug from a course title
func slugifyTitle(title string) string {
	slug := strings.ToLower(title)
	slug = strings.ReplaceAll(slug, " ", "-")
	slug = strings.ReplaceAll(slug, "+", "-plus")
	return slug
}

// randomHexSuffix returns 8 hex characters for username deduplication
func randomHexSuffix() string {
	buf := make([]byte, 4)
	if _, err := rand.Read(buf); err != nil {
		// rand.Read only fails when the OS entropy source is broken
		return fmt.Sprintf("%08x", uuid.New().ID())
	}
	return hex.EncodeToString(buf)
}

// resolveUser finds the account matching the form email or provisions a
// new student account with a generated username and temporary password.
// Existing accounts get empty profile fields back-filled from the form;
// populated fields are never overwritten.
func resolveUser(tx *gorm.DB, form *EnrollmentForm) (*models.User, bool, error) {
	var existing models.User
	err := tx.Where("email = ?", form.Email).First(&existing).Error
	if err == nil {
		updates := map[string]interface{}{}
		if form.Name != "" && existing.FullName == "" {
			updates["full_name"] = form.Name
		}
		if form.Phone != "" && existing.Phone == "" {
			updates["phone"] = form.Phone
		}
		if form.City != "" && existing.City == "" {
			updates["city"] = form.City
		}
		if len(updates) > 0 {
			if err := tx.Model(&existing).Updates(updates).Error; err != nil {
				return nil, false, err
			}
		}
		return &existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	// Derive username from the email local part, suffixing until unique
	localPart := strings.Split(form.Email, "@")[0]
	username := localPart
	for {
		var count int64
		if err := tx.Model(&models.User{}).Where("username = ?", username).Count(&count).Error; err != nil {
			return nil, false, err
		}
		if count == 0 {
			break
		}
		username = fmt.Sprintf("%s_%s", localPart, randomHexSuffix())
	}

	// Temporary password, user resets it later
	tempPassword := uuid.NewString()
	hashed, err := bcrypt.GenerateFromPassword([]byte(tempPassword), config.AppConfig.SaltRound)
	if err != nil {
		return nil, false, err
	}

	newUser := models.User{
		Email:      form.Email,
		Username:   username,
		FullName:   form.Name,
		Phone:      form.Phone,
		City:       form.City,
		Password:   string(hashed),
		Role:       models.RoleStudent,
		IsActive:   true,
		IsVerified: false,
	}

	if err := tx.Create(&newUser).Error; err != nil {
		return nil, false, err
	}

	return &newUser, true, nil
}

// defaultInstructor picks the account a provisioned course is attributed
// to: first admin, else first instructor, else a seeded placeholder.
func defaultInstructor(tx *gorm.DB) (*models.User, error) {
	var instructor models.User
	err := tx.Where("role = ?", models.RoleAdmin).Order("id").First(&instructor).Error
	if err == nil {
		return &instructor, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	err = tx.Where("role = ?", models.RoleInstructor).Order("id").First(&instructor).Error
	if err == nil {
		return &instructor, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(uuid.NewString()), config.AppConfig.SaltRound)
	if err != nil {
		return nil, err
	}
	instructor = models.User{
		Email:    defaultInstructorEmail,
		Username: "default_instructor",
		FullName: "Default Instructor",
		Password: string(hashed),
		Role:     models.RoleInstructor,
		IsActive: true,
	}
	if err := tx.Create(&instructor).Error; err != nil {
		return nil, err
	}
	return &instructor, nil
}

// resolveCourse finds the course matching the submitted title, or
// provisions a published placeholder so marketing can collect signups
// before the catalog entry exists.
func resolveCourse(tx *gorm.DB, title, priceDisplay string) (*models.Course, error) {
	var course models.Course
	err := tx.Where("title = ?", title).First(&course).Error
	if err == nil {
		return &course, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if !config.AppConfig.AllowCourseAutoCreate {
		return nil, ErrUnknownCourse
	}

	instructor, err := defaultInstructor(tx)
	if err != nil {
		return nil, err
	}

	course = models.Course{
		Title:         title,
		Slug:          slugifyTitle(title),
		Description:   fmt.Sprintf("Course enrollment for %s", title),
		Level:         models.LevelBeginner,
		Category:      models.CategoryStockMarket,
		DurationWeeks: 4,
		Price:         parseDisplayPrice(priceDisplay),
		IsPublished:   true,
		InstructorID:  instructor.ID,
	}
	if err := tx.Create(&course).Error; err != nil {
		return nil, err
	}
	return &course, nil
}

// submitEnrollment runs the whole intake in one transaction: resolve or
// provision the user and course, then insert the enrollment unless one
// already exists for the pair. A unique-index violation at insert time
// (a concurrent submission won the race) surfaces as
// gorm.ErrDuplicatedKey.
func submitEnrollment(db *gorm.DB, form *EnrollmentForm) (*intakeResult, error) {
	result := &intakeResult{}

	err := db.Transaction(func(tx *gorm.DB) error {
		user, created, err := resolveUser(tx, form)
		if err != nil {
			return err
		}
		result.UserCreated = created

		course, err := resolveCourse(tx, form.CourseTitle, form.CoursePrice)
		if err != nil {
			return err
		}

		// Idempotent resubmission: keep the profile back-fill, return
		// the original enrollment.
		var existing models.Enrollment
		err = tx.Where("user_id = ? AND course_id = ?", user.ID, course.ID).First(&existing).Error
		if err == nil {
			result.Enrollment = existing
			result.AlreadyEnrolled = true
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		enrollment := models.Enrollment{
			UserID:        user.ID,
			CourseID:      course.ID,
			StudentName:   form.Name,
			StudentEmail:  form.Email,
			StudentPhone:  form.Phone,
			StudentCity:   form.City,
			CourseTitle:   form.CourseTitle,
			CoursePrice:   form.CoursePrice,
			Status:        models.EnrollmentActive,
			PaymentAmount: course.Price,
			PaymentMethod: "pending",
		}
		if err := tx.Create(&enrollment).Error; err != nil {
			return err
		}

		result.Enrollment = enrollment
		return nil
	})
	if err != nil {
		log.Printf("[ENROLLMENT] intake failed for %s / %q: %v", form.Email, form.CourseTitle, err)
		return nil, err
	}

	return result, nil
}
