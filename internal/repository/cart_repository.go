package repository

import (
	"context"

	"gorm.io/gorm"

	"restaurant/internal/model"
)

// CartRepository defines cart persistence operations.
type CartRepository interface {
	Create(ctx context.Context, entry *model.CartEntry) error
	Update(ctx context.Context, entry *model.CartEntry) error
	DeleteBySlugID(ctx context.Context, slugID string) error
	DeleteByUser(ctx context.Context, userID string) error
	FindBySlugID(ctx context.Context, slugID string) (*model.CartEntry, error)
	FindByUserAndItem(ctx context.Context, userID, menuItemID string) (*model.CartEntry, error)
	ListByUser(ctx context.Context, userID string) ([]model.CartEntry, error)
	List(ctx context.Context) ([]model.CartEntry, error)
}

type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository creates a new cart repository.
func NewCartRepository(db *gorm.DB) CartRepository {
	return &cartRepository{db: db}
}

func (r *cartRepository) Create(ctx context.Context, entry *model.CartEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *cartRepository) Update(ctx context.Context, entry *model.CartEntry) error {
	return r.db.WithContext(ctx).Save(entry).Error
}

func (r *cartRepository) DeleteBySlugID(ctx context.Context, slugID string) error {
	res := r.db.WithContext(ctx).Where("slug_id = ?", slugID).Delete(&model.CartEntry{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *cartRepository) DeleteByUser(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.CartEntry{}).Error
}

func (r *cartRepository) FindBySlugID(ctx context.Context, slugID string) (*model.CartEntry, error) {
	var entry model.CartEntry
	if err := r.db.WithContext(ctx).Where("slug_id = ?", slugID).First(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *cartRepository) FindByUserAndItem(ctx context.Context, userID, menuItemID string) (*model.CartEntry, error) {
	var entry model.CartEntry
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND menu_item_id = ?", userID, menuItemID).
		First(&entry).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *cartRepository) ListByUser(ctx context.Context, userID string) ([]model.CartEntry, error) {
	var entries []model.CartEntry
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *cartRepository) List(ctx context.Context) ([]model.CartEntry, error) {
	var entries []model.CartEntry
	if err := r.db.WithContext(ctx).Order("id").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
