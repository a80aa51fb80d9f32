package models

import (
	"time"

	"gorm.io/gorm"
)

// Photographer is the extended profile for photographer users. Rating and
// TotalReviews are derived; only the review sync writes them.
type Photographer struct {
	ID              uint    `gorm:"primaryKey" json:"id"`
	UserID          uint    `gorm:"uniqueIndex;not null" json:"user_id"`
	BusinessName    string  `gorm:"size:255" json:"business_name"`
	Bio             string  `gorm:"type:text" json:"bio"`
	YearsExperience int     `json:"years_experience"`
	HourlyRate      float64 `gorm:"default:0" json:"hourly_rate"`
	City            string  `gorm:"size:100;not null" json:"city"`
	Region          string  `gorm:"size:100;not null;default:'Quebec'" json:"region"`
	PortfolioURL    string  `gorm:"size:512" json:"portfolio_url"`
	InstagramHandle string  `gorm:"size:100" json:"instagram_handle"`
	IsVerified      bool    `gorm:"default:false" json:"is_verified"`

	Rating        float64 `gorm:"default:0" json:"rating"`
	TotalReviews  int     `gorm:"default:0" json:"total_reviews"`
	TotalBookings int     `gorm:"default:0" json:"total_bookings"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (Photographer) TableName() string {
	return "photographers"
}
