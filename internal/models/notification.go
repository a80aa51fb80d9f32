package models

import (
	"time"

	"gorm.io/gorm"
)

type Notification struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	UserID uint   `gorm:"not null;index" json:"user_id"`
	Type   string `gorm:"size:30;not null" json:"type"`
	Title  string `gorm:"size:255;not null" json:"title"`
	Body   string `gorm:"size:1000" json:"body"`
	Data   string `gorm:"type:text" json:"data"` // JSON payload (booking id, etc.)
	IsRead bool   `gorm:"default:false;index" json:"is_read"`

	CreatedAt time.Time      `json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (Notification) TableName() string {
	return "notifications"
}
