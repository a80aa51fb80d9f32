package models

import (
	"time"

	"gorm.io/gorm"
)

// Payment is one-to-one with a booking; mutated by gateway callbacks.
type Payment struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	BookingID  uint       `gorm:"uniqueIndex;not null" json:"booking_id"`
	Amount     float64    `gorm:"not null" json:"amount"`
	Commission float64    `gorm:"not null" json:"commission"`
	Method     string     `gorm:"size:30;not null" json:"method"` // credit_card | debit_card | bank_account
	Status     string     `gorm:"size:20;not null;index;default:'pending'" json:"status"`
	GatewayRef *string    `gorm:"uniqueIndex;size:255" json:"gateway_ref,omitempty"` // nil until the gateway reports back
	Currency   string     `gorm:"size:3;default:'CAD'" json:"currency"`
	PaidAt     *time.Time `json:"paid_at,omitempty"`
	RefundedAt *time.Time `json:"refunded_at,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Booking Booking `gorm:"foreignKey:BookingID" json:"-"`
}

func (Payment) TableName() string {
	return "payments"
}

type Refund struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	PaymentID   uint       `gorm:"not null;index" json:"payment_id"`
	BookingID   uint       `gorm:"not null;index" json:"booking_id"`
	Amount      float64    `gorm:"not null" json:"amount"`
	Percentage  float64    `gorm:"not null" json:"percentage"`
	PolicyTier  string     `gorm:"size:30;not null" json:"policy_tier"`
	Reason      string     `gorm:"size:500;not null" json:"reason"`
	Status      string     `gorm:"size:20;not null;index;default:'pending'" json:"status"`
	ProcessedAt *time.Time `json:"processed_at,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Payment Payment `gorm:"foreignKey:PaymentID" json:"-"`
	Booking Booking `gorm:"foreignKey:BookingID" json:"-"`
}

func (Refund) TableName() string {
	return "refunds"
}
