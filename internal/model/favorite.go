package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Favorite marks a menu item as a favorite of a user. One row per (user, menu item).
type Favorite struct {
	ID         uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	UserID     string    `json:"user_id" gorm:"size:36;not null;uniqueIndex:idx_favorite_user_item"`
	MenuItemID string    `json:"menu_item_id" gorm:"size:36;not null;uniqueIndex:idx_favorite_user_item"`
	IsFavorite bool      `json:"is_favorite" gorm:"not null;default:true"`
	CreatedAt  int64     `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt  int64     `json:"updated_at" gorm:"autoUpdateTime"`
}

// BeforeCreate sets UUID before creating the record.
func (f *Favorite) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}

// FavoriteDetail is a favorite joined with its menu item.
type FavoriteDetail struct {
	Favorite
	MenuItem *MenuItemSummary `json:"menu_item"`
}
