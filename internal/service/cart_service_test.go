package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "restaurant/internal/errors"
)

func TestCartService(t *testing.T) {
	ctx := context.Background()
	repos := newTestRepos(t)
	svc := NewCartService(repos.Carts, repos.Menu, repos.Users)
	user := seedUser(t, repos, "cart@example.com")
	item := seedMenuItem(t, repos, seedCategory(t, repos, "Mains").SlugID, "Ramen", "13.00")

	tests := []struct {
		name    string
		userID  string
		itemID  string
		qty     int
		wantErr error
	}{
		{"zero quantity", user.SlugID, item.SlugID, 0, apperrors.ErrInvalidQuantity},
		{"unknown user", uuid.NewString(), item.SlugID, 1, apperrors.ErrUserNotFound},
		{"unknown item", user.SlugID, uuid.NewString(), 1, apperrors.ErrMenuItemNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Add(ctx, tt.userID, tt.itemID, tt.qty)
			assert.Equal(t, tt.wantErr, err)
		})
	}

	entry, err := svc.Add(ctx, user.SlugID, item.SlugID, 2)
	require.NoError(t, err)
	assert.Equal(t, "Ramen", entry.Menu.Data().Name)

	merged, err := svc.Add(ctx, user.SlugID, item.SlugID, 1)
	require.NoError(t, err)
	assert.Equal(t, entry.SlugID, merged.SlugID)
	assert.Equal(t, 3, merged.Quantity)

	detail, err := svc.GetDetail(ctx, entry.SlugID)
	require.NoError(t, err)
	require.NotNil(t, detail.User)
	require.NotNil(t, detail.MenuItem)
	assert.Equal(t, user.Email, detail.User.Email)
	assert.Equal(t, item.SlugID, detail.MenuItem.SlugID)

	byUser, err := svc.ListByUserDetailed(ctx, user.SlugID)
	require.NoError(t, err)
	assert.Len(t, byUser, 1)

	_, err = svc.UpdateQuantity(ctx, entry.SlugID, 0)
	assert.Equal(t, apperrors.ErrInvalidQuantity, err)
	updated, err := svc.UpdateQuantity(ctx, entry.SlugID, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, updated.Quantity)

	require.NoError(t, svc.Remove(ctx, entry.SlugID))
	assert.Equal(t, apperrors.ErrCartItemNotFound, svc.Remove(ctx, entry.SlugID))
	_, err = svc.Get(ctx, entry.SlugID)
	assert.Equal(t, apperrors.ErrCartItemNotFound, err)
}
