package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// OrderStatus represents the lifecycle state of an order.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "Pending"
	OrderStatusCompleted OrderStatus = "Completed"
	OrderStatusCancelled OrderStatus = "Cancelled"
)

// OrderItem is a point-in-time copy of one cart line.
type OrderItem struct {
	MenuItemID string `json:"menu_item_id"`
	Quantity   int    `json:"quantity"`
}

// Order is a placed order. Items and total never change after creation.
type Order struct {
	ID         uuid.UUID                      `json:"id" gorm:"type:char(36);primaryKey"`
	UserID     string                         `json:"user_id" gorm:"size:36;not null;index"`
	Items      datatypes.JSONSlice[OrderItem] `json:"items" gorm:"not null"`
	TotalPrice decimal.Decimal                `json:"total_price" gorm:"type:decimal(10,2);not null"`
	Status     OrderStatus                    `json:"status" gorm:"type:varchar(20);not null;default:'Pending';index"`
	CreatedAt  int64                          `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt  int64                          `json:"updated_at" gorm:"autoUpdateTime"`
}

// BeforeCreate sets UUID before creating the record.
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// OrderItemDetail is an order line joined with the current menu item.
type OrderItemDetail struct {
	OrderItem
	MenuItem *MenuItemSummary `json:"menu_item"`
}

// OrderDetail is an order whose lines carry menu item details.
type OrderDetail struct {
	ID         uuid.UUID         `json:"id"`
	UserID     string            `json:"user_id"`
	Items      []OrderItemDetail `json:"items"`
	TotalPrice decimal.Decimal   `json:"total_price"`
	Status     OrderStatus       `json:"status"`
	CreatedAt  int64             `json:"created_at"`
	UpdatedAt  int64             `json:"updated_at"`
}
