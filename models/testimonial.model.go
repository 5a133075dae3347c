package models

import "gorm.io/gorm"

// Testimonial is a student review shown on the site after admin approval
type Testimonial struct {
	gorm.Model
	UserID     uint   `json:"user_id" gorm:"index;not null"`
	Title      string `json:"title" gorm:"not null"`
	Content    string `json:"content" gorm:"not null"`
	Rating     int    `json:"rating" gorm:"not null"` // 1-5 stars
	IsFeatured bool   `json:"is_featured" gorm:"default:false"`
	IsApproved bool   `json:"is_approved" gorm:"default:false"`
}
