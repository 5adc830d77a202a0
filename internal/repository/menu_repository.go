package repository

import (
	"context"

	"gorm.io/gorm"

	"restaurant/internal/model"
)

// MenuRepository defines menu item persistence operations.
type MenuRepository interface {
	Create(ctx context.Context, item *model.MenuItem) error
	CreateBatch(ctx context.Context, items []model.MenuItem) error
	Update(ctx context.Context, item *model.MenuItem) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*model.MenuItem, error)
	FindBySlugID(ctx context.Context, slugID string) (*model.MenuItem, error)
	FindBySlugIDs(ctx context.Context, slugIDs []string) ([]model.MenuItem, error)
	FindByName(ctx context.Context, name string) (*model.MenuItem, error)
	List(ctx context.Context) ([]model.MenuItem, error)
	ListByCategory(ctx context.Context, categoryID string) ([]model.MenuItem, error)
	Page(ctx context.Context, q PageQuery) ([]model.MenuItem, int64, error)
}

type menuRepository struct {
	db *gorm.DB
}

// NewMenuRepository creates a new menu repository.
func NewMenuRepository(db *gorm.DB) MenuRepository {
	return &menuRepository{db: db}
}

func (r *menuRepository) Create(ctx context.Context, item *model.MenuItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *menuRepository) CreateBatch(ctx context.Context, items []model.MenuItem) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(items, 100).Error
}

func (r *menuRepository) Update(ctx context.Context, item *model.MenuItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *menuRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.MenuItem{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *menuRepository) FindByID(ctx context.Context, id uint) (*model.MenuItem, error) {
	var item model.MenuItem
	if err := r.db.WithContext(ctx).First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *menuRepository) FindBySlugID(ctx context.Context, slugID string) (*model.MenuItem, error) {
	var item model.MenuItem
	if err := r.db.WithContext(ctx).Where("slug_id = ?", slugID).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *menuRepository) FindBySlugIDs(ctx context.Context, slugIDs []string) ([]model.MenuItem, error) {
	var items []model.MenuItem
	if len(slugIDs) == 0 {
		return items, nil
	}
	if err := r.db.WithContext(ctx).Where("slug_id IN ?", slugIDs).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *menuRepository) FindByName(ctx context.Context, name string) (*model.MenuItem, error) {
	var item model.MenuItem
	if err := r.db.WithContext(ctx).Where("LOWER(name) = LOWER(?)", name).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *menuRepository) List(ctx context.Context) ([]model.MenuItem, error) {
	var items []model.MenuItem
	if err := r.db.WithContext(ctx).Order("id").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Page returns one window of menu items matching the search and the total match count.
func (r *menuRepository) ListByCategory(ctx context.Context, categoryID string) ([]model.MenuItem, error) {
	var items []model.MenuItem
	if err := r.db.WithContext(ctx).Where("category_id = ?", categoryID).Order("id").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *menuRepository) Page(ctx context.Context, q PageQuery) ([]model.MenuItem, int64, error) {
	scoped := func() *gorm.DB {
		tx := r.db.WithContext(ctx).Model(&model.MenuItem{})
		if q.Search != "" {
			tx = tx.Where("LOWER(name) LIKE ? ESCAPE '!'", containsPattern(q.Search))
		}
		return tx
	}

	var total int64
	if err := scoped().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	orderBy := q.OrderBy
	if orderBy == "" {
		orderBy = "created_at ASC, id ASC"
	}
	find := scoped().Order(orderBy)
	if q.Limit > 0 {
		find = find.Offset(q.Offset).Limit(q.Limit)
	}

	var items []model.MenuItem
	if err := find.Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}
