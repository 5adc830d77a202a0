package model

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CartEntry is one menu item with a quantity in a user's cart.
type CartEntry struct {
	ID         uint                                `json:"id" gorm:"primaryKey"`
	SlugID     string                              `json:"slug_id" gorm:"size:36;uniqueIndex;not null"`
	UserID     string                              `json:"user_id" gorm:"size:36;not null;index"`
	MenuItemID string                              `json:"menu_item_id" gorm:"size:36;not null;index"`
	Quantity   int                                 `json:"quantity" gorm:"not null"`
	Menu       datatypes.JSONType[MenuItemSummary] `json:"menu"`
	CreatedAt  int64                               `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt  int64                               `json:"updated_at" gorm:"autoUpdateTime"`
}

// BeforeCreate assigns the external slug id.
func (c *CartEntry) BeforeCreate(tx *gorm.DB) error {
	if c.SlugID == "" {
		c.SlugID = uuid.NewString()
	}
	return nil
}

// CartEntryDetail is a cart entry joined with its user and current menu item.
type CartEntryDetail struct {
	CartEntry
	User     *UserSummary     `json:"user"`
	MenuItem *MenuItemSummary `json:"menu_item"`
}
