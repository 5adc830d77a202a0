package repository

import (
	"context"

	"gorm.io/gorm"
)

// Repositories bundles every repository over one connection or transaction.
type Repositories struct {
	db         *gorm.DB
	Users      UserRepository
	Roles      RoleRepository
	OTPs       OTPRepository
	Categories CategoryRepository
	Menu       MenuRepository
	Carts      CartRepository
	Orders     OrderRepository
	Bills      BillRepository
	Feedback   FeedbackRepository
	Favorites  FavoriteRepository
	Staff      StaffRepository
	Metrics    MetricsRepository
}

// New builds all repositories over db.
func New(db *gorm.DB) *Repositories {
	return &Repositories{
		db:         db,
		Users:      NewUserRepository(db),
		Roles:      NewRoleRepository(db),
		OTPs:       NewOTPRepository(db),
		Categories: NewCategoryRepository(db),
		Menu:       NewMenuRepository(db),
		Carts:      NewCartRepository(db),
		Orders:     NewOrderRepository(db),
		Bills:      NewBillRepository(db),
		Feedback:   NewFeedbackRepository(db),
		Favorites:  NewFavoriteRepository(db),
		Staff:      NewStaffRepository(db),
		Metrics:    NewMetricsRepository(db),
	}
}

// WithTransaction executes a function within a database transaction.
func (r *Repositories) WithTransaction(ctx context.Context, fn func(ctx context.Context, tx *Repositories) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, New(tx))
	})
}
