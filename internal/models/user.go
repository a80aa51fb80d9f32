package models

import (
	"time"

	"focal/internal/domain"

	"gorm.io/gorm"
)

type User struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	FirstName    string  `gorm:"size:100;not null" json:"first_name"`
	LastName     string  `gorm:"size:100;not null" json:"last_name"`
	Email        string  `gorm:"uniqueIndex;size:255;not null" json:"email"`
	PasswordHash string  `gorm:"size:255" json:"-"`
	Phone        string  `gorm:"size:30" json:"phone"`
	Role         string  `gorm:"size:20;not null;index" json:"role"` // customer | photographer | admin
	GoogleID     *string `gorm:"uniqueIndex;size:255" json:"-"`      // nil for email signups (avoids duplicate '' on unique index)
	AvatarURL    string  `gorm:"size:512" json:"avatar_url"`
	City         string  `gorm:"size:100" json:"city"`
	Province     string  `gorm:"size:100;default:'Quebec'" json:"province"`
	Country      string  `gorm:"size:100;default:'Canada'" json:"country"`

	EmailVerified bool `gorm:"default:false" json:"email_verified"`
	IsActive      bool `gorm:"default:true" json:"is_active"`

	// Single active session: replaced on every login/refresh, cleared on logout.
	RefreshToken string `gorm:"size:512" json:"-"`

	ResetPasswordToken     string     `gorm:"size:255" json:"-"`
	ResetPasswordExpiresAt *time.Time `json:"-"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Photographer *Photographer `gorm:"foreignKey:UserID" json:"photographer,omitempty"`
}

func (u *User) IsPhotographer() bool { return u.Role == domain.RolePhotographer }
func (u *User) IsCustomer() bool     { return u.Role == domain.RoleCustomer }
func (u *User) IsAdmin() bool        { return u.Role == domain.RoleAdmin }

func (u *User) FullName() string {
	if u.FirstName == "" {
		return u.LastName
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
