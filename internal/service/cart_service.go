package service

import (
	"context"
	"fmt"

	"gorm.io/datatypes"

	apperrors "restaurant/internal/errors"
	"restaurant/internal/model"
	"restaurant/internal/repository"
)

// CartService manages per-user carts.
type CartService interface {
	Add(ctx context.Context, userID, menuItemID string, quantity int) (*model.CartEntry, error)
	List(ctx context.Context) ([]model.CartEntry, error)
	ListDetailed(ctx context.Context) ([]model.CartEntryDetail, error)
	Get(ctx context.Context, slugID string) (*model.CartEntry, error)
	GetDetail(ctx context.Context, slugID string) (*model.CartEntryDetail, error)
	ListByUserDetailed(ctx context.Context, userID string) ([]model.CartEntryDetail, error)
	UpdateQuantity(ctx context.Context, slugID string, quantity int) (*model.CartEntry, error)
	Remove(ctx context.Context, slugID string) error
}

type cartService struct {
	carts repository.CartRepository
	menu  repository.MenuRepository
	users repository.UserRepository
}

// NewCartService creates a new cart service.
func NewCartService(carts repository.CartRepository, menu repository.MenuRepository, users repository.UserRepository) CartService {
	return &cartService{carts: carts, menu: menu, users: users}
}

// Add puts a menu item in the user's cart. Adding an item already in the cart increases its quantity.
func (s *cartService) Add(ctx context.Context, userID, menuItemID string, quantity int) (*model.CartEntry, error) {
	if quantity < 1 {
		return nil, apperrors.ErrInvalidQuantity
	}
	if _, err := s.users.FindBySlugID(ctx, userID); err != nil {
		return nil, notFound(err, apperrors.ErrUserNotFound)
	}
	item, err := s.menu.FindBySlugID(ctx, menuItemID)
	if err != nil {
		return nil, notFound(err, apperrors.ErrMenuItemNotFound)
	}

	entry, err := s.carts.FindByUserAndItem(ctx, userID, menuItemID)
	switch {
	case err == nil:
		entry.Quantity += quantity
		entry.Menu = datatypes.NewJSONType(item.Summary())
		if err := s.carts.Update(ctx, entry); err != nil {
			return nil, fmt.Errorf("update cart entry: %w", err)
		}
		return entry, nil
	case !isNotFound(err):
		return nil, fmt.Errorf("find cart entry: %w", err)
	}

	entry = &model.CartEntry{
		UserID:     userID,
		MenuItemID: menuItemID,
		Quantity:   quantity,
		Menu:       datatypes.NewJSONType(item.Summary()),
	}
	if err := s.carts.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("create cart entry: %w", err)
	}
	return entry, nil
}

func (s *cartService) List(ctx context.Context) ([]model.CartEntry, error) {
	return s.carts.List(ctx)
}

func (s *cartService) ListDetailed(ctx context.Context) ([]model.CartEntryDetail, error) {
	entries, err := s.carts.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list cart: %w", err)
	}
	return s.join(ctx, entries)
}

func (s *cartService) Get(ctx context.Context, slugID string) (*model.CartEntry, error) {
	entry, err := s.carts.FindBySlugID(ctx, slugID)
	if err != nil {
		return nil, notFound(err, apperrors.ErrCartItemNotFound)
	}
	return entry, nil
}

func (s *cartService) GetDetail(ctx context.Context, slugID string) (*model.CartEntryDetail, error) {
	entry, err := s.Get(ctx, slugID)
	if err != nil {
		return nil, err
	}
	details, err := s.join(ctx, []model.CartEntry{*entry})
	if err != nil {
		return nil, err
	}
	return &details[0], nil
}

func (s *cartService) ListByUserDetailed(ctx context.Context, userID string) ([]model.CartEntryDetail, error) {
	entries, err := s.carts.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list cart: %w", err)
	}
	return s.join(ctx, entries)
}

func (s *cartService) UpdateQuantity(ctx context.Context, slugID string, quantity int) (*model.CartEntry, error) {
	if quantity < 1 {
		return nil, apperrors.ErrInvalidQuantity
	}
	entry, err := s.carts.FindBySlugID(ctx, slugID)
	if err != nil {
		return nil, notFound(err, apperrors.ErrCartItemNotFound)
	}
	entry.Quantity = quantity
	if err := s.carts.Update(ctx, entry); err != nil {
		return nil, fmt.Errorf("update cart entry: %w", err)
	}
	return entry, nil
}

func (s *cartService) Remove(ctx context.Context, slugID string) error {
	if err := s.carts.DeleteBySlugID(ctx, slugID); err != nil {
		return notFound(err, apperrors.ErrCartItemNotFound)
	}
	return nil
}

// join attaches the owning user and the current menu item to each entry.
func (s *cartService) join(ctx context.Context, entries []model.CartEntry) ([]model.CartEntryDetail, error) {
	userIDs := make([]string, 0, len(entries))
	itemIDs := make([]string, 0, len(entries))
	for _, entry := range entries {
		userIDs = append(userIDs, entry.UserID)
		itemIDs = append(itemIDs, entry.MenuItemID)
	}

	users, err := s.users.FindBySlugIDs(ctx, userIDs)
	if err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}
	items, err := s.menu.FindBySlugIDs(ctx, itemIDs)
	if err != nil {
		return nil, fmt.Errorf("load menu items: %w", err)
	}

	userByID := make(map[string]*model.UserSummary, len(users))
	for i := range users {
		userByID[users[i].SlugID] = users[i].Summary()
	}
	itemByID := make(map[string]model.MenuItemSummary, len(items))
	for _, item := range items {
		itemByID[item.SlugID] = item.Summary()
	}

	details := make([]model.CartEntryDetail, 0, len(entries))
	for _, entry := range entries {
		detail := model.CartEntryDetail{CartEntry: entry, User: userByID[entry.UserID]}
		if summary, ok := itemByID[entry.MenuItemID]; ok {
			summary := summary
			detail.MenuItem = &summary
		}
		details = append(details, detail)
	}
	return details, nil
}
