package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User roles.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Accessibility levels: 0 without disability, 1 visual impairment, 2 motor disability.
const (
	AccessibilityNone   = 0
	AccessibilityVisual = 1
	AccessibilityMotor  = 2
)

// User represents a registered account of the mapping application.
type User struct {
	ID               uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Name             string    `json:"name" gorm:"size:255;not null"`
	Email            string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	Password         string    `json:"-" gorm:"size:255;not null"` // bcrypt hash, never exposed
	Image            string    `json:"image" gorm:"size:512;default:''"`
	Role             string    `json:"role" gorm:"size:50;default:'user';index"`
	Active           bool      `json:"active" gorm:"default:true;index"`
	AccessibilityLvl int       `json:"accessibilityLvl" gorm:"not null"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
