package models

import (
	"time"

	"gorm.io/gorm"
)

// AdminLog records privileged actions for audit.
type AdminLog struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	AdminID    uint   `gorm:"not null;index" json:"admin_id"`
	Action     string `gorm:"size:50;not null" json:"action"`
	EntityType string `gorm:"size:20;not null" json:"entity_type"` // user | booking | payment | system
	EntityID   uint   `gorm:"index" json:"entity_id"`
	Notes      string `gorm:"size:500" json:"notes"`
	IP         string `gorm:"size:45" json:"ip"`

	CreatedAt time.Time      `json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Admin User `gorm:"foreignKey:AdminID" json:"-"`
}

func (AdminLog) TableName() string {
	return "admin_logs"
}
