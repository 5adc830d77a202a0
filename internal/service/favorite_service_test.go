package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "restaurant/internal/errors"
)

func TestFavoriteService(t *testing.T) {
	ctx := context.Background()
	repos := newTestRepos(t)
	svc := NewFavoriteService(repos.Favorites, repos.Menu, repos.Users)
	user := seedUser(t, repos, "fav@example.com")
	category := seedCategory(t, repos, "Mains")
	tacos := seedMenuItem(t, repos, category.SlugID, "Tacos", "8.00")
	nachos := seedMenuItem(t, repos, category.SlugID, "Nachos", "6.00")

	first, err := svc.Add(ctx, user.SlugID, tacos.SlugID)
	require.NoError(t, err)
	assert.True(t, first.IsFavorite)

	_, err = svc.Add(ctx, user.SlugID, tacos.SlugID)
	assert.Equal(t, apperrors.ErrFavoriteExists, err)
	_, err = svc.Add(ctx, user.SlugID, uuid.NewString())
	assert.Equal(t, apperrors.ErrMenuItemNotFound, err)
	_, err = svc.Add(ctx, uuid.NewString(), tacos.SlugID)
	assert.Equal(t, apperrors.ErrUserNotFound, err)

	_, err = svc.Add(ctx, user.SlugID, nachos.SlugID)
	require.NoError(t, err)

	list, err := svc.ListByUser(ctx, user.SlugID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.NotNil(t, list[0].MenuItem)

	require.NoError(t, svc.Delete(ctx, first.ID))
	assert.Equal(t, apperrors.ErrFavoriteNotFound, svc.Delete(ctx, first.ID))

	n, err := svc.Clear(ctx, user.SlugID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	list, err = svc.ListByUser(ctx, user.SlugID)
	require.NoError(t, err)
	assert.Empty(t, list)
}
