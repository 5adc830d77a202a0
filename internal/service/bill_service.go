package service

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	apperrors "restaurant/internal/errors"
	"restaurant/internal/model"
	"restaurant/internal/repository"
)

const billSheet = "Bills"

// GenerateBillInput describes a bill to derive from an order.
type GenerateBillInput struct {
	OrderID     uuid.UUID
	UserID      string // defaults to the order's user
	PaymentMode string
	Discount    bool
}

// UpdateBillInput changes the payment mode and/or the discount flag of a bill.
type UpdateBillInput struct {
	PaymentMode *string
	Discount    *bool
}

// BillService derives bills from orders.
type BillService interface {
	Generate(ctx context.Context, in GenerateBillInput) (*model.Bill, error)
	List(ctx context.Context) ([]model.Bill, error)
	Get(ctx context.Context, id uuid.UUID) (*model.BillDetail, error)
	Update(ctx context.Context, id uuid.UUID, in UpdateBillInput) (*model.Bill, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Export(ctx context.Context, w io.Writer) error
}

type billService struct {
	bills        repository.BillRepository
	orders       repository.OrderRepository
	discountRate decimal.Decimal
}

// NewBillService creates a new bill service applying discountRate to discounted bills.
func NewBillService(bills repository.BillRepository, orders repository.OrderRepository, discountRate decimal.Decimal) BillService {
	if discountRate.IsZero() {
		discountRate = DefaultDiscountRate
	}
	return &billService{bills: bills, orders: orders, discountRate: discountRate}
}

// Generate bills the order's total. The order status is left untouched, so Pending orders can be billed.
func (s *billService) Generate(ctx context.Context, in GenerateBillInput) (*model.Bill, error) {
	order, err := s.orders.FindByID(ctx, in.OrderID)
	if err != nil {
		return nil, notFound(err, apperrors.ErrOrderNotFound)
	}

	userID := in.UserID
	if userID == "" {
		userID = order.UserID
	}

	amounts := ComputeBill(order.TotalPrice, in.Discount, s.discountRate)
	bill := &model.Bill{
		OrderID:        order.ID,
		UserID:         userID,
		Amount:         amounts.Amount,
		Discount:       in.Discount,
		DiscountAmount: amounts.DiscountAmount,
		TotalPrice:     amounts.TotalPrice,
		PaymentMode:    in.PaymentMode,
	}
	if err := s.bills.Create(ctx, bill); err != nil {
		return nil, fmt.Errorf("create bill: %w", err)
	}
	return bill, nil
}

func (s *billService) List(ctx context.Context) ([]model.Bill, error) {
	return s.bills.List(ctx)
}

// Get returns the bill joined with its order; the order is nil when it no longer exists.
func (s *billService) Get(ctx context.Context, id uuid.UUID) (*model.BillDetail, error) {
	bill, err := s.bills.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, apperrors.ErrBillNotFound)
	}

	detail := &model.BillDetail{Bill: *bill}
	order, err := s.orders.FindByID(ctx, bill.OrderID)
	switch {
	case err == nil:
		detail.Order = order
	case !isNotFound(err):
		return nil, fmt.Errorf("load order: %w", err)
	}
	return detail, nil
}

// Update changes payment details and recomputes the discount from the billed amount.
func (s *billService) Update(ctx context.Context, id uuid.UUID, in UpdateBillInput) (*model.Bill, error) {
	bill, err := s.bills.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, apperrors.ErrBillNotFound)
	}

	if in.PaymentMode != nil {
		bill.PaymentMode = *in.PaymentMode
	}
	if in.Discount != nil {
		bill.Discount = *in.Discount
	}
	amounts := ComputeBill(bill.Amount, bill.Discount, s.discountRate)
	bill.DiscountAmount = amounts.DiscountAmount
	bill.TotalPrice = amounts.TotalPrice

	if err := s.bills.Update(ctx, bill); err != nil {
		return nil, fmt.Errorf("update bill: %w", err)
	}
	return bill, nil
}

func (s *billService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.bills.Delete(ctx, id); err != nil {
		return notFound(err, apperrors.ErrBillNotFound)
	}
	return nil
}

// Export writes every bill as one row of an xlsx workbook.
func (s *billService) Export(ctx context.Context, w io.Writer) error {
	bills, err := s.bills.List(ctx)
	if err != nil {
		return fmt.Errorf("list bills: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", billSheet); err != nil {
		return fmt.Errorf("name sheet: %w", err)
	}
	header := []interface{}{"Bill ID", "Order ID", "User ID", "Amount", "Discount", "Discount Amount", "Total Price", "Payment Mode", "Created At"}
	if err := f.SetSheetRow(billSheet, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, bill := range bills {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{
			bill.ID.String(),
			bill.OrderID.String(),
			bill.UserID,
			bill.Amount.InexactFloat64(),
			bill.Discount,
			bill.DiscountAmount.InexactFloat64(),
			bill.TotalPrice.InexactFloat64(),
			bill.PaymentMode,
			bill.CreatedAt,
		}
		if err := f.SetSheetRow(billSheet, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
