package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Bill is the priced settlement of an order.
type Bill struct {
	ID             uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	OrderID        uuid.UUID       `json:"order_id" gorm:"type:char(36);not null;index"`
	UserID         string          `json:"user_id" gorm:"size:36;not null;index"`
	Amount         decimal.Decimal `json:"amount" gorm:"type:decimal(10,2);not null"`
	Discount       bool            `json:"discount" gorm:"not null;default:false"`
	DiscountAmount decimal.Decimal `json:"discount_amount" gorm:"type:decimal(10,2);not null"`
	TotalPrice     decimal.Decimal `json:"total_price" gorm:"type:decimal(10,2);not null"`
	PaymentMode    string          `json:"payment_mode" gorm:"size:50;not null"`
	CreatedAt      int64           `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt      int64           `json:"updated_at" gorm:"autoUpdateTime"`
}

// BeforeCreate sets UUID before creating the record.
func (b *Bill) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// BillDetail is a bill joined with its order.
type BillDetail struct {
	Bill
	Order *Order `json:"order"`
}
