package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"restaurant/internal/auth"
	"restaurant/internal/cache"
	apperrors "restaurant/internal/errors"
	"restaurant/internal/model"
	"restaurant/internal/repository"
)

const userCacheTTL = 5 * time.Minute

// UpdateProfileInput carries the profile fields to change; nil fields are left as they are.
type UpdateProfileInput struct {
	SlugID string
	Name   *string
	Email  *string
	Phone  *string
}

// UserService exposes user profile operations.
type UserService interface {
	GetByID(ctx context.Context, id uint) (*model.User, error)
	GetBySlugID(ctx context.Context, slugID string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	UpdateProfile(ctx context.Context, actor auth.Identity, in UpdateProfileInput) (*model.User, error)
	Delete(ctx context.Context, actor auth.Identity, id uint) error
	AssignRole(ctx context.Context, slugID, role string) (*model.User, error)
}

type userService struct {
	users repository.UserRepository
	roles repository.RoleRepository
	cache *cache.Client
}

// NewUserService builds a UserService with repositories and cache.
func NewUserService(users repository.UserRepository, roles repository.RoleRepository, cache *cache.Client) UserService {
	return &userService{users: users, roles: roles, cache: cache}
}

func (s *userService) cacheKey(slugID string) string {
	return fmt.Sprintf("user:%s", slugID)
}

func (s *userService) GetByID(ctx context.Context, id uint) (*model.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, apperrors.ErrUserNotFound)
	}
	return user, nil
}

// GetBySlugID reads through the cache.
func (s *userService) GetBySlugID(ctx context.Context, slugID string) (*model.User, error) {
	var cached model.User
	if s.cache.GetJSON(ctx, s.cacheKey(slugID), &cached) {
		return &cached, nil
	}

	user, err := s.users.FindBySlugID(ctx, slugID)
	if err != nil {
		return nil, notFound(err, apperrors.ErrUserNotFound)
	}
	s.cache.SetJSON(ctx, s.cacheKey(slugID), user, userCacheTTL)
	return user, nil
}

func (s *userService) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	email = normalizeEmail(email)
	if email == "" {
		return nil, apperrors.ErrEmailRequired
	}
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, notFound(err, apperrors.ErrUserNotFound)
	}
	return user, nil
}

func (s *userService) List(ctx context.Context) ([]model.User, error) {
	return s.users.List(ctx)
}

// UpdateProfile changes the caller's own profile. Admins may change any profile.
func (s *userService) UpdateProfile(ctx context.Context, actor auth.Identity, in UpdateProfileInput) (*model.User, error) {
	user, err := s.users.FindBySlugID(ctx, in.SlugID)
	if err != nil {
		return nil, notFound(err, apperrors.ErrUserNotFound)
	}
	if !canManage(actor, user) {
		return nil, apperrors.ErrInsufficientPermission
	}

	if in.Name != nil {
		user.Name = strings.TrimSpace(*in.Name)
	}
	if in.Phone != nil {
		user.Phone = *in.Phone
	}
	if in.Email != nil {
		email := normalizeEmail(*in.Email)
		if email != user.Email {
			if _, err := s.users.FindByEmail(ctx, email); err == nil {
				return nil, apperrors.ErrEmailExists
			} else if !isNotFound(err) {
				return nil, fmt.Errorf("check email: %w", err)
			}
			user.Email = email
		}
	}

	if err := s.users.Update(ctx, user); err != nil {
		if isDuplicate(err) {
			return nil, apperrors.ErrEmailExists
		}
		return nil, fmt.Errorf("update user: %w", err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(user.SlugID))
	return user, nil
}

func (s *userService) Delete(ctx context.Context, actor auth.Identity, id uint) error {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return notFound(err, apperrors.ErrUserNotFound)
	}
	if !canManage(actor, user) {
		return apperrors.ErrInsufficientPermission
	}
	if err := s.users.Delete(ctx, id); err != nil {
		return notFound(err, apperrors.ErrUserNotFound)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(user.SlugID))
	return nil
}

// AssignRole sets the user's role to an existing role.
func (s *userService) AssignRole(ctx context.Context, slugID, role string) (*model.User, error) {
	if _, err := s.roles.FindRole(ctx, role); err != nil {
		return nil, notFound(err, apperrors.ErrRoleNotFound)
	}
	user, err := s.users.FindBySlugID(ctx, slugID)
	if err != nil {
		return nil, notFound(err, apperrors.ErrUserNotFound)
	}

	user.Role = role
	if err := s.users.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(user.SlugID))
	return user, nil
}

func canManage(actor auth.Identity, user *model.User) bool {
	return actor.Role == model.RoleAdmin || actor.UserID == user.SlugID
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
