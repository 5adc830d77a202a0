package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Built-in user roles. Additional roles live in the roles table.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

// User represents an account holder of the restaurant app.
type User struct {
	ID               uint    `json:"id" gorm:"primaryKey"`
	SlugID           string  `json:"slug_id" gorm:"size:36;uniqueIndex;not null"`
	Name             string  `json:"name" gorm:"size:255;not null"`
	Email            string  `json:"email" gorm:"uniqueIndex;size:255;not null"`
	Phone            string  `json:"phone" gorm:"size:20"`
	PasswordHash     string  `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	Role             string  `json:"role" gorm:"size:50;not null;default:'user';index"`
	IsVerified       bool    `json:"is_verified" gorm:"not null;default:false"`
	VerifiedAt       *int64  `json:"verified_at,omitempty"`
	ResetTokenHash   *string `json:"-" gorm:"size:64;index"`
	ResetTokenExpiry *int64  `json:"-"`
	CreatedAt        int64   `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt        int64   `json:"updated_at" gorm:"autoUpdateTime"`
}

// BeforeCreate assigns the external slug id.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.SlugID == "" {
		u.SlugID = uuid.NewString()
	}
	return nil
}

// UserSummary is the public projection of a user embedded in joined views.
type UserSummary struct {
	SlugID string `json:"slug_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
}

// Summary projects the user for joined views.
func (u *User) Summary() *UserSummary {
	return &UserSummary{SlugID: u.SlugID, Name: u.Name, Email: u.Email, Phone: u.Phone}
}
