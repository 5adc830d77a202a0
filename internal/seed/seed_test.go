package seed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"restaurant/internal/model"
	"restaurant/internal/repository"
	"restaurant/internal/testutil"
)

func TestRun(t *testing.T) {
	ctx := context.Background()
	repos := repository.New(testutil.NewDB(t))

	res, err := Run(ctx, repos, "Admin@Restaurant.local", "admin123")
	require.NoError(t, err)
	assert.Equal(t, 3, res.Roles)
	assert.Equal(t, len(Resources)*len(Suffixes), res.Permissions)
	assert.Equal(t, len(Permissions())+16+2, res.Bindings)
	assert.True(t, res.AdminCreated)

	admin, err := repos.Users.FindByEmail(ctx, "admin@restaurant.local")
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, admin.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("admin123")))

	again, err := Run(ctx, repos, "admin@restaurant.local", "admin123")
	require.NoError(t, err)
	assert.Equal(t, &Result{}, again)
}

func TestRun_PromotesExistingAdmin(t *testing.T) {
	ctx := context.Background()
	repos := repository.New(testutil.NewDB(t))
	require.NoError(t, repos.Users.Create(ctx, &model.User{Name: "Owner", Email: "owner@example.com", PasswordHash: "x", Role: model.RoleUser}))

	res, err := Run(ctx, repos, "owner@example.com", "ignored1")
	require.NoError(t, err)
	assert.False(t, res.AdminCreated)
	assert.True(t, res.AdminUpdated)

	owner, err := repos.Users.FindByEmail(ctx, "owner@example.com")
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, owner.Role)
	assert.Equal(t, "x", owner.PasswordHash)
}

func TestBindings(t *testing.T) {
	bindings := Bindings()

	assert.ElementsMatch(t, []string{"menu_read", "category_read"}, bindings[model.RoleUser])
	assert.Contains(t, bindings[model.RoleStaff], "orders_update")
	assert.NotContains(t, bindings[model.RoleStaff], "roles_add")
	assert.Len(t, bindings[model.RoleAdmin], len(Permissions()))
}
