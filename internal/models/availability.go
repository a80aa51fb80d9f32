package models

import (
	"time"

	"gorm.io/gorm"
)

// Availability is one weekly recurring window for a photographer.
type Availability struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	PhotographerID uint   `gorm:"not null;index" json:"photographer_id"`
	DayOfWeek      int    `gorm:"not null" json:"day_of_week"`        // 0=Sunday .. 6=Saturday
	StartTime      string `gorm:"size:5;not null" json:"start_time"` // HH:MM
	EndTime        string `gorm:"size:5;not null" json:"end_time"`
	IsAvailable    bool   `gorm:"default:true" json:"is_available"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Photographer Photographer `gorm:"foreignKey:PhotographerID" json:"-"`
}

func (Availability) TableName() string {
	return "availabilities"
}

// BlockedDate marks a single calendar day as unbookable.
type BlockedDate struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	PhotographerID uint      `gorm:"not null;index" json:"photographer_id"`
	Date           time.Time `gorm:"not null;index" json:"date"`
	Reason         string    `gorm:"size:255" json:"reason"`

	CreatedAt time.Time      `json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Photographer Photographer `gorm:"foreignKey:PhotographerID" json:"-"`
}

func (BlockedDate) TableName() string {
	return "blocked_dates"
}
