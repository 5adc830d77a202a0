package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PerformanceMetrics is an append-only snapshot of order, revenue and feedback aggregates.
type PerformanceMetrics struct {
	ID                uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	TotalOrders       int64           `json:"total_orders" gorm:"not null"`
	CompletedOrders   int64           `json:"completed_orders" gorm:"not null"`
	CancelledOrders   int64           `json:"cancelled_orders" gorm:"not null"`
	TopSellingOrderID *uuid.UUID      `json:"top_selling_order_id" gorm:"type:char(36)"`
	TopSellingRevenue decimal.Decimal `json:"top_selling_revenue" gorm:"type:decimal(12,2);not null"`
	TotalRevenue      decimal.Decimal `json:"total_revenue" gorm:"type:decimal(12,2);not null"`
	TotalLikes        int64           `json:"total_likes" gorm:"not null"`
	CreatedAt         int64           `json:"created_at" gorm:"autoCreateTime"`
	Seq               int64           `json:"-" gorm:"not null;index"`
}

// BeforeCreate sets UUID before creating the record.
func (p *PerformanceMetrics) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
