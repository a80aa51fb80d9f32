package models

import (
	"time"

	"gorm.io/gorm"
)

type Media struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	PhotographerID uint   `gorm:"not null;index" json:"photographer_id"`
	BookingID      *uint  `gorm:"index" json:"booking_id,omitempty"` // set for delivered booking photos
	URL            string `gorm:"size:512;not null" json:"url"`
	ThumbnailURL   string `gorm:"size:512" json:"thumbnail_url"`
	Type           string `gorm:"size:10;not null;default:'image'" json:"type"` // image | video
	Title          string `gorm:"size:255" json:"title"`
	Description    string `gorm:"type:text" json:"description"`
	IsPortfolio    bool   `gorm:"default:false;index" json:"is_portfolio"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Photographer Photographer `gorm:"foreignKey:PhotographerID" json:"-"`
	Booking      *Booking     `gorm:"foreignKey:BookingID" json:"-"`
}

func (Media) TableName() string {
	return "media"
}
