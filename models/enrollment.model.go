package models

import (
	"time"

	"gorm.io/gorm"
)

// Enrollment statuses
const (
	EnrollmentActive    = "active"
	EnrollmentCompleted = "completed"
	EnrollmentCancelled = "cancelled"
	EnrollmentExpired   = "expired"
)

// Enrollment links a user to a course. The Student*/Course* columns are a
// snapshot of the form exactly as submitted; they are never resynced when
// the User or Course record changes later.
type Enrollment struct {
	gorm.Model
	UserID   uint `json:"user_id" gorm:"not null;uniqueIndex:idx_user_course"`
	CourseID uint `json:"course_id" gorm:"not null;uniqueIndex:idx_user_course"`

	StudentName  string `json:"student_name" gorm:"not null"`
	StudentEmail string `json:"student_email" gorm:"not null"`
	StudentPhone string `json:"student_phone" gorm:"not null"`
	StudentCity  string `json:"student_city" gorm:"not null"`
	CourseTitle  string `json:"course_title" gorm:"not null"`
	CoursePrice  string `json:"course_price" gorm:"not null"` // display string, e.g. "₹15,000"

	Status        string    `json:"status" gorm:"default:'active'"` // active, completed, cancelled, expired
	EnrolledAt    time.Time `json:"enrolled_at" gorm:"autoCreateTime"`
	PaymentAmount float64   `json:"payment_amount" gorm:"default:0"`
	PaymentMethod string    `json:"payment_method" gorm:"default:'pending'"`
	ReminderSent  bool      `json:"reminder_sent" gorm:"default:false"`
}

// LessonProgress tracks per-lesson completion, created lazily as the
// student watches lessons.
type LessonProgress struct {
	gorm.Model
	EnrollmentID     uint       `json:"enrollment_id" gorm:"not null;uniqueIndex:idx_enrollment_lesson"`
	LessonID         uint       `json:"lesson_id" gorm:"not null;uniqueIndex:idx_enrollment_lesson"`
	IsCompleted      bool       `json:"is_completed" gorm:"default:false"`
	CompletedAt      *time.Time `json:"completed_at"`
	WatchTimeSeconds int        `json:"watch_time_seconds" gorm:"default:0"`
	LastWatchedAt    *time.Time `json:"last_watched_at"`
}
