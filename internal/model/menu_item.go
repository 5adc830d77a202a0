package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// MenuItem is a priced dish belonging to a category.
type MenuItem struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	SlugID      string          `json:"slug_id" gorm:"size:36;uniqueIndex;not null"`
	Name        string          `json:"name" gorm:"size:255;uniqueIndex;not null"`
	Description string          `json:"description" gorm:"size:255"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	CategoryID  string          `json:"category_id" gorm:"size:36;not null;index"`
	Image       string          `json:"image,omitempty" gorm:"size:255"`
	CreatedAt   int64           `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   int64           `json:"updated_at" gorm:"autoUpdateTime"`
}

// BeforeCreate assigns the external slug id.
func (m *MenuItem) BeforeCreate(tx *gorm.DB) error {
	if m.SlugID == "" {
		m.SlugID = uuid.NewString()
	}
	return nil
}

// MenuItemSummary is the projection of a menu item embedded in carts, orders and favorites.
type MenuItemSummary struct {
	SlugID      string          `json:"slug_id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image,omitempty"`
}

// Summary projects the menu item for joined views.
func (m *MenuItem) Summary() MenuItemSummary {
	return MenuItemSummary{
		SlugID:      m.SlugID,
		Name:        m.Name,
		Description: m.Description,
		Price:       m.Price,
		Image:       m.Image,
	}
}

// MenuItemWithCategory is a menu item joined with its category.
type MenuItemWithCategory struct {
	MenuItem
	Category *Category `json:"category"`
}
