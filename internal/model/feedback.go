package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Feedback is a user's rating and comment on an order.
type Feedback struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	UserID    string    `json:"user_id" gorm:"size:36;not null;index"`
	OrderID   uuid.UUID `json:"order_id" gorm:"type:char(36);not null;index"`
	Comment   string    `json:"comment" gorm:"size:1000"`
	Rating    int       `json:"rating" gorm:"not null"`
	Likes     int       `json:"likes" gorm:"not null;default:0"`
	Dislikes  int       `json:"dislikes" gorm:"not null;default:0"`
	CreatedAt int64     `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt int64     `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName keeps the singular table name.
func (Feedback) TableName() string {
	return "feedback"
}

// BeforeCreate sets UUID before creating the record.
func (f *Feedback) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}
