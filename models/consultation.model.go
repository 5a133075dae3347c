package models

import "gorm.io/gorm"

// Consultation statuses
const (
	ConsultationScheduled = "scheduled"
	ConsultationCompleted = "completed"
	ConsultationCancelled = "cancelled"
)

// ConsultationSchedule is a free consultation request from the public
// site. Not linked to User or Course.
type ConsultationSchedule struct {
	gorm.Model
	Name          string `json:"name" gorm:"not null"`
	Email         string `json:"email" gorm:"not null"`
	Phone         string `json:"phone" gorm:"not null"`
	PreferredDate string `json:"preferred_date" gorm:"not null"` // YYYY-MM-DD
	PreferredTime string `json:"preferred_time" gorm:"not null"` // HH:MM
	Message       string `json:"message"`
	Status        string `json:"status" gorm:"default:'scheduled'"` // scheduled, completed, cancelled
	IsActive      bool   `json:"is_active" gorm:"default:true"`
}
