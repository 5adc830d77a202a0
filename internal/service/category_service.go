package service

import (
	"context"
	"fmt"
	"strings"

	apperrors "restaurant/internal/errors"
	"restaurant/internal/model"
	"restaurant/internal/repository"
)

// CategoryInput carries category fields for create and update.
type CategoryInput struct {
	Name        string
	Description string
}

// CategoryService manages menu categories.
type CategoryService interface {
	Create(ctx context.Context, in CategoryInput) (*model.Category, error)
	Get(ctx context.Context, id uint) (*model.Category, error)
	GetBySlugID(ctx context.Context, slugID string) (*model.Category, error)
	List(ctx context.Context) ([]model.Category, error)
	Update(ctx context.Context, slugID string, in CategoryInput) (*model.Category, error)
	Delete(ctx context.Context, id uint) error
}

type categoryService struct {
	categories repository.CategoryRepository
}

// NewCategoryService creates a new category service.
func NewCategoryService(categories repository.CategoryRepository) CategoryService {
	return &categoryService{categories: categories}
}

func (s *categoryService) Create(ctx context.Context, in CategoryInput) (*model.Category, error) {
	name := strings.TrimSpace(in.Name)
	if err := s.ensureNameFree(ctx, name, ""); err != nil {
		return nil, err
	}

	category := &model.Category{Name: name, Description: in.Description}
	if err := s.categories.Create(ctx, category); err != nil {
		if isDuplicate(err) {
			return nil, apperrors.ErrCategoryNameExists
		}
		return nil, fmt.Errorf("create category: %w", err)
	}
	return category, nil
}

func (s *categoryService) Get(ctx context.Context, id uint) (*model.Category, error) {
	category, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, apperrors.ErrCategoryNotFound)
	}
	return category, nil
}

func (s *categoryService) GetBySlugID(ctx context.Context, slugID string) (*model.Category, error) {
	category, err := s.categories.FindBySlugID(ctx, slugID)
	if err != nil {
		return nil, notFound(err, apperrors.ErrCategoryNotFound)
	}
	return category, nil
}

func (s *categoryService) List(ctx context.Context) ([]model.Category, error) {
	return s.categories.List(ctx)
}

func (s *categoryService) Update(ctx context.Context, slugID string, in CategoryInput) (*model.Category, error) {
	category, err := s.categories.FindBySlugID(ctx, slugID)
	if err != nil {
		return nil, notFound(err, apperrors.ErrCategoryNotFound)
	}

	if name := strings.TrimSpace(in.Name); name != "" {
		if err := s.ensureNameFree(ctx, name, category.SlugID); err != nil {
			return nil, err
		}
		category.Name = name
	}
	if in.Description != "" {
		category.Description = in.Description
	}

	if err := s.categories.Update(ctx, category); err != nil {
		if isDuplicate(err) {
			return nil, apperrors.ErrCategoryNameExists
		}
		return nil, fmt.Errorf("update category: %w", err)
	}
	return category, nil
}

func (s *categoryService) Delete(ctx context.Context, id uint) error {
	if err := s.categories.Delete(ctx, id); err != nil {
		return notFound(err, apperrors.ErrCategoryNotFound)
	}
	return nil
}

// ensureNameFree fails when another category already uses name, ignoring case.
func (s *categoryService) ensureNameFree(ctx context.Context, name, selfSlugID string) error {
	existing, err := s.categories.FindByName(ctx, name)
	if err == nil && existing.SlugID != selfSlugID {
		return apperrors.ErrCategoryNameExists
	}
	if err != nil && !isNotFound(err) {
		return fmt.Errorf("check category name: %w", err)
	}
	return nil
}
