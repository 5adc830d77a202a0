package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OTP is a one-time verification code issued to a user.
type OTP struct {
	ID         uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	UserID     string    `json:"user_id" gorm:"size:36;not null;index:idx_otp_user_code"`
	Code       string    `json:"-" gorm:"size:6;not null;index:idx_otp_user_code"`
	ExpiresAt  int64     `json:"expires_at" gorm:"not null"`
	Verified   bool      `json:"verified" gorm:"not null;default:false"`
	VerifiedAt *int64    `json:"verified_at,omitempty"`
	CreatedAt  int64     `json:"created_at" gorm:"autoCreateTime"`
}

// TableName keeps the lowercase table name.
func (OTP) TableName() string {
	return "otps"
}

// BeforeCreate sets UUID before creating the record.
func (o *OTP) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}
