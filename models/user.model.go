package models

import (
	"gorm.io/gorm"
)

// User roles
const (
	RoleStudent    = "student"
	RoleInstructor = "instructor"
	RoleAdmin      = "admin"
)

type User struct {
	gorm.Model
	Email           string `json:"email" gorm:"unique;not null"`
	Username        string `json:"username" gorm:"unique;not null"`
	FullName        string `json:"full_name" gorm:"not null"`
	Password        string `json:"-" gorm:"not null"`
	Role            string `json:"role" gorm:"default:'student'"` // student, instructor, admin
	IsActive        bool   `json:"is_active" gorm:"default:true"`
	IsVerified      bool   `json:"is_verified" gorm:"default:false"`
	Phone           string `json:"phone" gorm:"default:''"`
	City            string `json:"city" gorm:"default:''"`
	Bio             string `json:"bio" gorm:"default:''"`
	ProfileImageURL string `json:"profile_image_url" gorm:"default:''"`
}
