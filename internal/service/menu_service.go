package service

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/labstack/gommon/log"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"restaurant/internal/cache"
	apperrors "restaurant/internal/errors"
	"restaurant/internal/model"
	"restaurant/internal/repository"
	"restaurant/internal/storage"
)

const menuCacheTTL = 10 * time.Minute

var allowedImageExts = map[string]bool{".jpg": true, ".jpeg": true, ".png": true}

// MenuItemInput carries the fields of a new menu item.
type MenuItemInput struct {
	Name        string
	Description string
	Price       decimal.Decimal
	CategoryID  string
}

// MenuUpdateInput carries the fields to change; nil fields are left as they are.
type MenuUpdateInput struct {
	SlugID      string
	Name        *string
	Description *string
	Price       *decimal.Decimal
	CategoryID  *string
}

// PageParams selects a page of menu items. Limit zero returns every match.
type PageParams struct {
	Search string
	Page   int
	Limit  int
	Sort   string // "", "asc" or "desc" by name
}

// Pagination describes the window returned with a page.
type Pagination struct {
	TotalDocuments int64 `json:"total_documents"`
	TotalPages     int   `json:"total_pages"`
	CurrentPage    int   `json:"current_page"`
	PageSize       int   `json:"page_size"`
	RemainingPages int   `json:"remaining_pages"`
}

// MenuPage is one page of menu items.
type MenuPage struct {
	Items      []model.MenuItem `json:"items"`
	Pagination Pagination       `json:"pagination"`
}

// ImportResult reports a workbook import. Skipped rows are 1-based sheet row numbers.
type ImportResult struct {
	Imported int   `json:"imported"`
	Skipped  []int `json:"skipped_rows"`
}

// MenuService manages menu items.
type MenuService interface {
	Create(ctx context.Context, in MenuItemInput) (*model.MenuItem, error)
	Get(ctx context.Context, id uint) (*model.MenuItem, error)
	GetBySlugID(ctx context.Context, slugID string) (*model.MenuItem, error)
	List(ctx context.Context) ([]model.MenuItem, error)
	ListWithCategory(ctx context.Context) ([]model.MenuItemWithCategory, error)
	ListByCategory(ctx context.Context, categorySlugID string) ([]model.MenuItem, error)
	Update(ctx context.Context, in MenuUpdateInput) (*model.MenuItem, error)
	Delete(ctx context.Context, id uint) error
	Page(ctx context.Context, p PageParams) (*MenuPage, error)
	UploadImage(ctx context.Context, slugID, filename string, size int64, r io.Reader) (*model.MenuItem, error)
	Import(ctx context.Context, r io.Reader) (*ImportResult, error)
}

type menuService struct {
	menu          repository.MenuRepository
	categories    repository.CategoryRepository
	images        storage.ImageStore
	cache         *cache.Client
	maxImageBytes int64
	now           func() time.Time
}

// NewMenuService creates a new menu service.
func NewMenuService(menu repository.MenuRepository, categories repository.CategoryRepository, images storage.ImageStore, cache *cache.Client, maxImageBytes int64) MenuService {
	return &menuService{
		menu:          menu,
		categories:    categories,
		images:        images,
		cache:         cache,
		maxImageBytes: maxImageBytes,
		now:           time.Now,
	}
}

func (s *menuService) cacheKey(slugID string) string {
	return fmt.Sprintf("menu:%s", slugID)
}

func (s *menuService) Create(ctx context.Context, in MenuItemInput) (*model.MenuItem, error) {
	name := strings.TrimSpace(in.Name)
	if err := s.ensureNameFree(ctx, name, ""); err != nil {
		return nil, err
	}
	if err := s.ensureCategory(ctx, in.CategoryID); err != nil {
		return nil, err
	}

	item := &model.MenuItem{
		Name:        name,
		Description: in.Description,
		Price:       in.Price.Round(2),
		CategoryID:  in.CategoryID,
	}
	if err := s.menu.Create(ctx, item); err != nil {
		if isDuplicate(err) {
			return nil, apperrors.ErrMenuNameExists
		}
		return nil, fmt.Errorf("create menu item: %w", err)
	}
	return item, nil
}

func (s *menuService) Get(ctx context.Context, id uint) (*model.MenuItem, error) {
	item, err := s.menu.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, apperrors.ErrMenuItemNotFound)
	}
	return item, nil
}

// GetBySlugID reads through the cache.
func (s *menuService) GetBySlugID(ctx context.Context, slugID string) (*model.MenuItem, error) {
	var cached model.MenuItem
	if s.cache.GetJSON(ctx, s.cacheKey(slugID), &cached) {
		return &cached, nil
	}

	item, err := s.menu.FindBySlugID(ctx, slugID)
	if err != nil {
		return nil, notFound(err, apperrors.ErrMenuItemNotFound)
	}
	s.cache.SetJSON(ctx, s.cacheKey(slugID), item, menuCacheTTL)
	return item, nil
}

func (s *menuService) List(ctx context.Context) ([]model.MenuItem, error) {
	return s.menu.List(ctx)
}

// ListWithCategory joins every item with its category; the category is nil when it was deleted.
func (s *menuService) ListWithCategory(ctx context.Context) ([]model.MenuItemWithCategory, error) {
	items, err := s.menu.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list menu items: %w", err)
	}

	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.CategoryID)
	}
	categories, err := s.categories.FindBySlugIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load categories: %w", err)
	}
	bySlug := make(map[string]*model.Category, len(categories))
	for i := range categories {
		bySlug[categories[i].SlugID] = &categories[i]
	}

	out := make([]model.MenuItemWithCategory, 0, len(items))
	for _, item := range items {
		out = append(out, model.MenuItemWithCategory{MenuItem: item, Category: bySlug[item.CategoryID]})
	}
	return out, nil
}

func (s *menuService) ListByCategory(ctx context.Context, categorySlugID string) ([]model.MenuItem, error) {
	if err := s.ensureCategory(ctx, categorySlugID); err != nil {
		return nil, err
	}
	return s.menu.ListByCategory(ctx, categorySlugID)
}

func (s *menuService) Update(ctx context.Context, in MenuUpdateInput) (*model.MenuItem, error) {
	item, err := s.menu.FindBySlugID(ctx, in.SlugID)
	if err != nil {
		return nil, notFound(err, apperrors.ErrMenuItemNotFound)
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if err := s.ensureNameFree(ctx, name, item.SlugID); err != nil {
			return nil, err
		}
		item.Name = name
	}
	if in.Description != nil {
		item.Description = *in.Description
	}
	if in.Price != nil {
		item.Price = in.Price.Round(2)
	}
	if in.CategoryID != nil {
		if err := s.ensureCategory(ctx, *in.CategoryID); err != nil {
			return nil, err
		}
		item.CategoryID = *in.CategoryID
	}

	if err := s.menu.Update(ctx, item); err != nil {
		if isDuplicate(err) {
			return nil, apperrors.ErrMenuNameExists
		}
		return nil, fmt.Errorf("update menu item: %w", err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(item.SlugID))
	return item, nil
}

func (s *menuService) Delete(ctx context.Context, id uint) error {
	item, err := s.menu.FindByID(ctx, id)
	if err != nil {
		return notFound(err, apperrors.ErrMenuItemNotFound)
	}
	if err := s.menu.Delete(ctx, id); err != nil {
		return notFound(err, apperrors.ErrMenuItemNotFound)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(item.SlugID))
	if s.images != nil {
		if err := s.images.Remove(item.Image); err != nil {
			log.Warnf("menu item %s: remove image: %v", item.SlugID, err)
		}
	}
	return nil
}

// Page searches names case-insensitively and returns one offset/limit window.
func (s *menuService) Page(ctx context.Context, p PageParams) (*MenuPage, error) {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 0 {
		return nil, apperrors.ErrBadRequest
	}

	var orderBy string
	switch strings.ToLower(p.Sort) {
	case "":
	case "asc":
		orderBy = "name ASC, id ASC"
	case "desc":
		orderBy = "name DESC, id ASC"
	default:
		return nil, apperrors.ErrBadRequest
	}

	items, total, err := s.menu.Page(ctx, repository.PageQuery{
		Search:  strings.TrimSpace(p.Search),
		Offset:  (p.Page - 1) * p.Limit,
		Limit:   p.Limit,
		OrderBy: orderBy,
	})
	if err != nil {
		return nil, fmt.Errorf("page menu items: %w", err)
	}
	if items == nil {
		items = []model.MenuItem{}
	}
	return &MenuPage{Items: items, Pagination: paginate(total, p.Page, p.Limit)}, nil
}

func paginate(total int64, page, limit int) Pagination {
	p := Pagination{TotalDocuments: total, CurrentPage: page, PageSize: limit}
	switch {
	case limit > 0:
		p.TotalPages = int((total + int64(limit) - 1) / int64(limit))
	case total > 0:
		p.TotalPages = 1
		p.PageSize = int(total)
	}
	if p.TotalPages > page {
		p.RemainingPages = p.TotalPages - page
	}
	return p
}

// UploadImage stores a jpg or png as the item's image and removes the one it replaces.
func (s *menuService) UploadImage(ctx context.Context, slugID, filename string, size int64, r io.Reader) (*model.MenuItem, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedImageExts[ext] {
		return nil, apperrors.ErrInvalidImage
	}
	if s.maxImageBytes > 0 && size > s.maxImageBytes {
		return nil, apperrors.ErrImageTooLarge
	}

	item, err := s.menu.FindBySlugID(ctx, slugID)
	if err != nil {
		return nil, notFound(err, apperrors.ErrMenuItemNotFound)
	}

	name := fmt.Sprintf("menu_%s_%d%s", item.SlugID, s.now().Unix(), ext)
	ref, err := s.images.Save(name, r)
	if err != nil {
		return nil, fmt.Errorf("save image: %w", err)
	}

	previous := item.Image
	item.Image = ref
	if err := s.menu.Update(ctx, item); err != nil {
		_ = s.images.Remove(ref)
		return nil, fmt.Errorf("update menu item: %w", err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(item.SlugID))

	if previous != "" && previous != ref {
		if err := s.images.Remove(previous); err != nil {
			log.Warnf("menu item %s: remove old image: %v", item.SlugID, err)
		}
	}
	return item, nil
}

// Import creates menu items from the first sheet of an xlsx workbook. The first row is a header;
// columns are name, description, price and category name. Invalid rows are skipped.
func (s *menuService) Import(ctx context.Context, r io.Reader) (*ImportResult, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		log.Infof("menu import: open workbook: %v", err)
		return nil, apperrors.ErrInvalidWorkbook
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		log.Infof("menu import: read rows: %v", err)
		return nil, apperrors.ErrInvalidWorkbook
	}

	result := &ImportResult{Skipped: []int{}}
	categories := map[string]string{}
	seen := map[string]bool{}
	var items []model.MenuItem

	for i, row := range rows {
		if i == 0 {
			continue
		}
		item, ok := s.importRow(ctx, row, categories, seen)
		if !ok {
			result.Skipped = append(result.Skipped, i+1)
			continue
		}
		items = append(items, item)
	}
	if len(items) == 0 {
		return nil, apperrors.ErrInvalidWorkbook
	}

	if err := s.menu.CreateBatch(ctx, items); err != nil {
		if isDuplicate(err) {
			return nil, apperrors.ErrMenuNameExists
		}
		return nil, fmt.Errorf("import menu items: %w", err)
	}
	result.Imported = len(items)
	return result, nil
}

func (s *menuService) importRow(ctx context.Context, row []string, categories map[string]string, seen map[string]bool) (model.MenuItem, bool) {
	if len(row) < 4 {
		return model.MenuItem{}, false
	}
	name := strings.TrimSpace(row[0])
	categoryName := strings.TrimSpace(row[3])
	key := strings.ToLower(name)
	if name == "" || categoryName == "" || seen[key] {
		return model.MenuItem{}, false
	}

	price, err := decimal.NewFromString(strings.TrimSpace(row[2]))
	if err != nil || price.IsNegative() || !price.Equal(price.Round(2)) {
		return model.MenuItem{}, false
	}

	categoryID, ok := categories[strings.ToLower(categoryName)]
	if !ok {
		category, err := s.categories.FindByName(ctx, categoryName)
		if err != nil {
			return model.MenuItem{}, false
		}
		categoryID = category.SlugID
		categories[strings.ToLower(categoryName)] = categoryID
	}

	if _, err := s.menu.FindByName(ctx, name); err == nil || !isNotFound(err) {
		return model.MenuItem{}, false
	}

	seen[key] = true
	return model.MenuItem{
		Name:        name,
		Description: strings.TrimSpace(row[1]),
		Price:       price,
		CategoryID:  categoryID,
	}, true
}

func (s *menuService) ensureNameFree(ctx context.Context, name, selfSlugID string) error {
	existing, err := s.menu.FindByName(ctx, name)
	if err == nil && existing.SlugID != selfSlugID {
		return apperrors.ErrMenuNameExists
	}
	if err != nil && !isNotFound(err) {
		return fmt.Errorf("check menu name: %w", err)
	}
	return nil
}

func (s *menuService) ensureCategory(ctx context.Context, slugID string) error {
	if _, err := s.categories.FindBySlugID(ctx, slugID); err != nil {
		return notFound(err, apperrors.ErrCategoryNotFound)
	}
	return nil
}
