package models

import (
	"time"

	"gorm.io/gorm"
)

// ContactInquiry is a message from the contact form. UserID is set only
// when a logged-in user submits it.
type ContactInquiry struct {
	gorm.Model
	UserID         *uint      `json:"user_id" gorm:"index"`
	Name           string     `json:"name" gorm:"not null"`
	Email          string     `json:"email" gorm:"not null"`
	Phone          string     `json:"phone"`
	Subject        string     `json:"subject" gorm:"not null"`
	Message        string     `json:"message" gorm:"not null"`
	CourseInterest string     `json:"course_interest"`
	IsResolved     bool       `json:"is_resolved" gorm:"default:false"`
	ResolvedAt     *time.Time `json:"resolved_at"`
}
