package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestOrderTotal(t *testing.T) {
	tests := []struct {
		name  string
		lines []PricedLine
		want  string
	}{
		{"empty", nil, "0"},
		{"single line", []PricedLine{{d("12.50"), 2}}, "25"},
		{"mixed cart", []PricedLine{{d("12.50"), 2}, {d("7.25"), 1}}, "32.25"},
		{"float drift", []PricedLine{{d("0.1"), 3}}, "0.3"},
		{"half-up", []PricedLine{{d("0.125"), 1}}, "0.13"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, d(tt.want).Equal(OrderTotal(tt.lines)), "got %s", OrderTotal(tt.lines))
		})
	}
}

func TestComputeBill(t *testing.T) {
	tests := []struct {
		name         string
		amount       string
		discount     bool
		wantDiscount string
		wantTotal    string
	}{
		{"with discount", "32.25", true, "3.23", "29.02"},
		{"without discount", "32.25", false, "0", "32.25"},
		{"round amount", "100", true, "10", "90"},
		{"small amount", "0.05", true, "0.01", "0.04"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeBill(d(tt.amount), tt.discount, DefaultDiscountRate)
			assert.True(t, d(tt.amount).Equal(got.Amount))
			assert.True(t, d(tt.wantDiscount).Equal(got.DiscountAmount), "discount %s", got.DiscountAmount)
			assert.True(t, d(tt.wantTotal).Equal(got.TotalPrice), "total %s", got.TotalPrice)
			assert.True(t, got.Amount.Sub(got.DiscountAmount).Equal(got.TotalPrice))
		})
	}
}
