package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"restaurant/internal/model"
)

// OrderRevenue is the summed bill total of one order.
type OrderRevenue struct {
	OrderID uuid.UUID
	Revenue decimal.Decimal
}

// BillRepository defines bill persistence and aggregation operations.
type BillRepository interface {
	Create(ctx context.Context, bill *model.Bill) error
	Update(ctx context.Context, bill *model.Bill) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Bill, error)
	List(ctx context.Context) ([]model.Bill, error)
	TopOrderByRevenue(ctx context.Context) (*OrderRevenue, error)
	TotalRevenue(ctx context.Context) (decimal.Decimal, error)
}

type billRepository struct {
	db *gorm.DB
}

// NewBillRepository creates a new bill repository.
func NewBillRepository(db *gorm.DB) BillRepository {
	return &billRepository{db: db}
}

func (r *billRepository) Create(ctx context.Context, bill *model.Bill) error {
	return r.db.WithContext(ctx).Create(bill).Error
}

func (r *billRepository) Update(ctx context.Context, bill *model.Bill) error {
	return r.db.WithContext(ctx).Save(bill).Error
}

func (r *billRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Bill{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *billRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Bill, error) {
	var bill model.Bill
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&bill).Error; err != nil {
		return nil, err
	}
	return &bill, nil
}

func (r *billRepository) List(ctx context.Context) ([]model.Bill, error) {
	var bills []model.Bill
	if err := r.db.WithContext(ctx).Order("created_at ASC, id ASC").Find(&bills).Error; err != nil {
		return nil, err
	}
	return bills, nil
}

// TopOrderByRevenue groups bills by order and returns the order with the highest summed total.
// Equal sums resolve to the lowest order id. It returns nil when there are no bills.
func (r *billRepository) TopOrderByRevenue(ctx context.Context) (*OrderRevenue, error) {
	var rows []struct {
		OrderID uuid.UUID
		Revenue decimal.Decimal
	}
	err := r.db.WithContext(ctx).Model(&model.Bill{}).
		Select("order_id, SUM(total_price) AS revenue").
		Group("order_id").
		Order("revenue DESC, order_id ASC").
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &OrderRevenue{OrderID: rows[0].OrderID, Revenue: rows[0].Revenue.Round(2)}, nil
}

func (r *billRepository) TotalRevenue(ctx context.Context) (decimal.Decimal, error) {
	var result struct {
		Total decimal.NullDecimal
	}
	err := r.db.WithContext(ctx).Model(&model.Bill{}).
		Select("SUM(total_price) AS total").
		Scan(&result).Error
	if err != nil {
		return decimal.Zero, err
	}
	if !result.Total.Valid {
		return decimal.Zero, nil
	}
	return result.Total.Decimal.Round(2), nil
}
