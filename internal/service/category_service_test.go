package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "restaurant/internal/errors"
)

func TestCategoryService_RoundTrip(t *testing.T) {
	ctx := context.Background()
	svc := NewCategoryService(newTestRepos(t).Categories)

	created, err := svc.Create(ctx, CategoryInput{Name: "Desserts", Description: "Sweet things after dinner"})
	require.NoError(t, err)

	byID, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Desserts", byID.Name)
	assert.Equal(t, "Sweet things after dinner", byID.Description)

	bySlug, err := svc.GetBySlugID(ctx, created.SlugID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, bySlug.ID)
}

func TestCategoryService_NameUniqueness(t *testing.T) {
	ctx := context.Background()
	svc := NewCategoryService(newTestRepos(t).Categories)

	starters, err := svc.Create(ctx, CategoryInput{Name: "Starters", Description: "Small plates"})
	require.NoError(t, err)
	mains, err := svc.Create(ctx, CategoryInput{Name: "Mains", Description: "Large plates"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, CategoryInput{Name: "starters"})
	assert.Equal(t, apperrors.ErrCategoryNameExists, err)

	_, err = svc.Update(ctx, mains.SlugID, CategoryInput{Name: "Starters"})
	assert.Equal(t, apperrors.ErrCategoryNameExists, err)

	updated, err := svc.Update(ctx, starters.SlugID, CategoryInput{Name: "Starters", Description: "Tapas"})
	require.NoError(t, err)
	assert.Equal(t, "Tapas", updated.Description)

	require.NoError(t, svc.Delete(ctx, mains.ID))
	_, err = svc.Get(ctx, mains.ID)
	assert.Equal(t, apperrors.ErrCategoryNotFound, err)
	assert.Equal(t, apperrors.ErrCategoryNotFound, svc.Delete(ctx, mains.ID))
}
