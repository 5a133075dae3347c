package models

import (
	"gorm.io/gorm"
)

// Course levels
const (
	LevelBeginner     = "beginner"
	LevelIntermediate = "intermediate"
	LevelAdvanced     = "advanced"
)

// Course categories
const (
	CategoryStockMarket         = "stock_market"
	CategoryTechnicalAnalysis   = "technical_analysis"
	CategoryOptionsTrading      = "options_trading"
	CategoryDayTrading          = "day_trading"
	CategoryPortfolioManagement = "portfolio_management"
	CategoryAlgorithmicTrading  = "algorithmic_trading"
)

// Course represents a learning course
type Course struct {
	gorm.Model
	Title            string   `json:"title" gorm:"not null"`
	Slug             string   `json:"slug" gorm:"unique;not null"`
	Description      string   `json:"description"`
	ShortDescription string   `json:"short_description"`
	Level            string   `json:"level" gorm:"default:'beginner'"`
	Category         string   `json:"category" gorm:"default:'stock_market'"`
	DurationWeeks    int      `json:"duration_weeks" gorm:"default:0"`
	Price            float64  `json:"price" gorm:"default:0"`
	OriginalPrice    *float64 `json:"original_price"`
	IsFeatured       bool     `json:"is_featured" gorm:"default:false"`
	IsPublished      bool     `json:"is_published" gorm:"default:false"`
	ThumbnailURL     string   `json:"thumbnail_url"`
	VideoIntroURL    string   `json:"video_intro_url"`
	InstructorID     uint     `json:"instructor_id" gorm:"index;not null"`
}

// Lesson belongs to a course, ordered by SortOrder
type Lesson struct {
	gorm.Model
	CourseID        uint   `json:"course_id" gorm:"index;not null"`
	Title           string `json:"title" gorm:"not null"`
	Description     string `json:"description"`
	Content         string `json:"content"`
	VideoURL        string `json:"video_url"`
	DurationMinutes int    `json:"duration_minutes" gorm:"default:0"`
	SortOrder       int    `json:"sort_order" gorm:"default:0"`
	IsFree          bool   `json:"is_free" gorm:"default:false"` // free preview lesson
}

// CourseFeature is a bullet descriptor shown on the course page
type CourseFeature struct {
	gorm.Model
	CourseID           uint   `json:"course_id" gorm:"index;not null"`
	FeatureName        string `json:"feature_name" gorm:"not null"`
	FeatureDescription string `json:"feature_description"`
	Icon               string `json:"icon"`
	SortOrder          int    `json:"sort_order" gorm:"default:0"`
}
