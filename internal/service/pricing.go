package service

import "github.com/shopspring/decimal"

// DefaultDiscountRate is the bill discount applied when no rate is configured.
var DefaultDiscountRate = decimal.RequireFromString("0.10")

// PricedLine is one order line resolved against the current menu price.
type PricedLine struct {
	UnitPrice decimal.Decimal
	Quantity  int
}

// OrderTotal sums unit price times quantity and rounds half-up to two decimals.
func OrderTotal(lines []PricedLine) decimal.Decimal {
	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return total.Round(2)
}

// BillAmounts are the money fields of a bill.
type BillAmounts struct {
	Amount         decimal.Decimal
	DiscountAmount decimal.Decimal
	TotalPrice     decimal.Decimal
}

// ComputeBill derives the discount and payable total from an order amount.
// The discount is zero unless requested; both results are rounded to two decimals.
func ComputeBill(amount decimal.Decimal, discount bool, rate decimal.Decimal) BillAmounts {
	amount = amount.Round(2)
	discountAmount := decimal.Zero
	if discount {
		discountAmount = rate.Mul(amount).Round(2)
	}
	return BillAmounts{
		Amount:         amount,
		DiscountAmount: discountAmount,
		TotalPrice:     amount.Sub(discountAmount).Round(2),
	}
}
