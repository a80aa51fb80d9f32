package models

import (
	"time"

	"focal/internal/domain"

	"gorm.io/gorm"
)

type Booking struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	ClientID       uint      `gorm:"not null;index" json:"client_id"`
	PhotographerID uint      `gorm:"not null;index" json:"photographer_id"`
	Date           time.Time `gorm:"not null;index" json:"date"`
	StartTime      string    `gorm:"size:5;not null" json:"start_time"` // HH:MM, 24h
	EndTime        string    `gorm:"size:5;not null" json:"end_time"`
	Location       string    `gorm:"size:512;not null" json:"location"`
	Notes          string    `gorm:"size:500" json:"notes"`
	Status         string    `gorm:"size:20;not null;index;default:'pending'" json:"status"`

	// Pricing breakdown. Base inputs are client/photographer facing; the
	// derived fields are platform-owned and recomputed whenever an input
	// changes.
	BasePrice            float64 `gorm:"not null" json:"base_price"`
	HourlyRate           float64 `gorm:"default:0" json:"hourly_rate"`
	DurationHours        int     `gorm:"not null" json:"duration_hours"`
	Subtotal             float64 `gorm:"not null" json:"subtotal"`
	Commission           float64 `gorm:"not null" json:"commission"`
	CommissionPercentage float64 `gorm:"default:9" json:"commission_percentage"`
	CommissionFixed      float64 `gorm:"default:2" json:"commission_fixed"`
	Total                float64 `gorm:"not null" json:"total"`
	PhotographerEarnings float64 `gorm:"not null" json:"photographer_earnings"`

	CancelledBy        string     `gorm:"size:20" json:"cancelled_by,omitempty"` // client | photographer | admin
	CancellationReason string     `gorm:"size:500" json:"cancellation_reason,omitempty"`
	CancelledAt        *time.Time `json:"cancelled_at,omitempty"`
	CompletedAt        *time.Time `json:"completed_at,omitempty"`
	DeliveredAt        *time.Time `json:"delivered_at,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Client       User         `gorm:"foreignKey:ClientID" json:"-"`
	Photographer Photographer `gorm:"foreignKey:PhotographerID" json:"-"`
	Payment      *Payment     `gorm:"foreignKey:BookingID" json:"payment,omitempty"`
	Review       *Review      `gorm:"foreignKey:BookingID" json:"review,omitempty"`
}

func (Booking) TableName() string {
	return "bookings"
}

// Recalculate rederives the platform-owned pricing fields from the current
// inputs, applying platform defaults when no commission override is set.
// Idempotent; the caller persists.
func (b *Booking) Recalculate() {
	if b.CommissionPercentage == 0 {
		b.CommissionPercentage = domain.DefaultCommissionPercentage
	}
	if b.CommissionFixed == 0 {
		b.CommissionFixed = domain.DefaultCommissionFixed
	}
	p := domain.ComputePricing(b.BasePrice, b.HourlyRate, b.DurationHours, b.CommissionPercentage, b.CommissionFixed)
	b.Subtotal = p.Subtotal
	b.Commission = p.Commission
	b.Total = p.Total
	b.PhotographerEarnings = p.PhotographerEarnings
}

func (b *Booking) IsTerminal() bool { return domain.IsTerminalStatus(b.Status) }
