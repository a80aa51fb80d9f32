package models

import (
	"time"

	"gorm.io/gorm"
)

// Earning is written once per completed booking and drives payout reporting.
type Earning struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	PhotographerID uint       `gorm:"not null;index" json:"photographer_id"`
	BookingID      uint       `gorm:"uniqueIndex;not null" json:"booking_id"`
	Month          int        `gorm:"not null" json:"month"` // 1-12
	Year           int        `gorm:"not null" json:"year"`
	TotalAmount    float64    `gorm:"not null" json:"total_amount"`
	Commission     float64    `gorm:"not null" json:"commission"`
	Earnings       float64    `gorm:"not null" json:"earnings"`
	PayoutStatus   string     `gorm:"size:20;not null;index;default:'pending'" json:"payout_status"`
	PayoutDate     *time.Time `json:"payout_date,omitempty"`
	PayoutRef      string     `gorm:"size:255" json:"payout_ref,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Photographer Photographer `gorm:"foreignKey:PhotographerID" json:"-"`
	Booking      Booking      `gorm:"foreignKey:BookingID" json:"-"`
}

func (Earning) TableName() string {
	return "earnings"
}
