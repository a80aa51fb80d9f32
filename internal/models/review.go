package models

import (
	"time"

	"gorm.io/gorm"
)

type Review struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	BookingID      uint   `gorm:"uniqueIndex;not null" json:"booking_id"` // one review per booking
	PhotographerID uint   `gorm:"not null;index" json:"photographer_id"`
	ClientID       uint   `gorm:"not null;index" json:"client_id"`
	Rating         int    `gorm:"not null" json:"rating"` // 1-5
	Comment        string `gorm:"type:text" json:"comment"`
	IsVisible      bool   `gorm:"default:true;index" json:"is_visible"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Booking      Booking      `gorm:"foreignKey:BookingID" json:"-"`
	Photographer Photographer `gorm:"foreignKey:PhotographerID" json:"-"`
	Client       User         `gorm:"foreignKey:ClientID" json:"-"`
}

func (Review) TableName() string {
	return "reviews"
}
