package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category groups menu items.
type Category struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	SlugID      string `json:"slug_id" gorm:"size:36;uniqueIndex;not null"`
	Name        string `json:"name" gorm:"size:255;uniqueIndex;not null"`
	Description string `json:"description" gorm:"size:255"`
	CreatedAt   int64  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   int64  `json:"updated_at" gorm:"autoUpdateTime"`
}

// BeforeCreate assigns the external slug id.
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.SlugID == "" {
		c.SlugID = uuid.NewString()
	}
	return nil
}
