package models

import (
	"time"

	"gorm.io/gorm"
)

// Conversation is a two-party thread between a customer and a photographer,
// optionally attached to a booking.
type Conversation struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	CustomerID     uint      `gorm:"not null;index" json:"customer_id"`
	PhotographerID uint      `gorm:"not null;index" json:"photographer_id"` // user ID, not profile ID
	BookingID      *uint     `gorm:"index" json:"booking_id,omitempty"`
	LastMessageAt  time.Time `gorm:"index" json:"last_message_at"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Customer     User     `gorm:"foreignKey:CustomerID" json:"-"`
	Photographer User     `gorm:"foreignKey:PhotographerID" json:"-"`
	Booking      *Booking `gorm:"foreignKey:BookingID" json:"-"`
}

func (Conversation) TableName() string {
	return "conversations"
}

// HasParticipant reports whether the user is one of the two parties.
func (c *Conversation) HasParticipant(userID uint) bool {
	return c.CustomerID == userID || c.PhotographerID == userID
}

type Message struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	ConversationID uint       `gorm:"not null;index" json:"conversation_id"`
	SenderID       uint       `gorm:"not null;index" json:"sender_id"`
	Text           string     `gorm:"size:5000;not null" json:"text"`
	Status         string     `gorm:"size:15;not null;default:'sent'" json:"status"` // sent | delivered | read
	ReadAt         *time.Time `json:"read_at,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Conversation Conversation `gorm:"foreignKey:ConversationID" json:"-"`
	Sender       User         `gorm:"foreignKey:SenderID" json:"-"`
}

func (Message) TableName() string {
	return "messages"
}
