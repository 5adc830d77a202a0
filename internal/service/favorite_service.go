package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	apperrors "restaurant/internal/errors"
	"restaurant/internal/model"
	"restaurant/internal/repository"
)

// FavoriteService manages users' favorite menu items.
type FavoriteService interface {
	Add(ctx context.Context, userID, menuItemID string) (*model.Favorite, error)
	ListByUser(ctx context.Context, userID string) ([]model.FavoriteDetail, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Clear(ctx context.Context, userID string) (int64, error)
}

type favoriteService struct {
	favorites repository.FavoriteRepository
	menu      repository.MenuRepository
	users     repository.UserRepository
}

// NewFavoriteService creates a new favorite service.
func NewFavoriteService(favorites repository.FavoriteRepository, menu repository.MenuRepository, users repository.UserRepository) FavoriteService {
	return &favoriteService{favorites: favorites, menu: menu, users: users}
}

// Add marks an item as a favorite. Each (user, item) pair is stored once.
func (s *favoriteService) Add(ctx context.Context, userID, menuItemID string) (*model.Favorite, error) {
	if _, err := s.users.FindBySlugID(ctx, userID); err != nil {
		return nil, notFound(err, apperrors.ErrUserNotFound)
	}
	if _, err := s.menu.FindBySlugID(ctx, menuItemID); err != nil {
		return nil, notFound(err, apperrors.ErrMenuItemNotFound)
	}

	if _, err := s.favorites.FindByUserAndItem(ctx, userID, menuItemID); err == nil {
		return nil, apperrors.ErrFavoriteExists
	} else if !isNotFound(err) {
		return nil, fmt.Errorf("find favorite: %w", err)
	}

	favorite := &model.Favorite{UserID: userID, MenuItemID: menuItemID, IsFavorite: true}
	if err := s.favorites.Create(ctx, favorite); err != nil {
		if isDuplicate(err) {
			return nil, apperrors.ErrFavoriteExists
		}
		return nil, fmt.Errorf("create favorite: %w", err)
	}
	return favorite, nil
}

// ListByUser returns the user's favorites joined with their menu items.
func (s *favoriteService) ListByUser(ctx context.Context, userID string) ([]model.FavoriteDetail, error) {
	favorites, err := s.favorites.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}

	ids := make([]string, 0, len(favorites))
	for _, favorite := range favorites {
		ids = append(ids, favorite.MenuItemID)
	}
	items, err := s.menu.FindBySlugIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load menu items: %w", err)
	}
	byID := make(map[string]model.MenuItemSummary, len(items))
	for _, item := range items {
		byID[item.SlugID] = item.Summary()
	}

	details := make([]model.FavoriteDetail, 0, len(favorites))
	for _, favorite := range favorites {
		detail := model.FavoriteDetail{Favorite: favorite}
		if summary, ok := byID[favorite.MenuItemID]; ok {
			summary := summary
			detail.MenuItem = &summary
		}
		details = append(details, detail)
	}
	return details, nil
}

func (s *favoriteService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.favorites.Delete(ctx, id); err != nil {
		return notFound(err, apperrors.ErrFavoriteNotFound)
	}
	return nil
}

// Clear removes every favorite of the user and reports how many were removed.
func (s *favoriteService) Clear(ctx context.Context, userID string) (int64, error) {
	n, err := s.favorites.DeleteByUser(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("clear favorites: %w", err)
	}
	return n, nil
}
