package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"restaurant/internal/auth"
	apperrors "restaurant/internal/errors"
	"restaurant/internal/model"
)

func TestUserService_UpdateProfile(t *testing.T) {
	ctx := context.Background()
	repos := newTestRepos(t)
	svc := NewUserService(repos.Users, repos.Roles, nil)
	alice := seedUser(t, repos, "alice@example.com")
	bob := seedUser(t, repos, "bob@example.com")

	name := "Alice Smith"
	updated, err := svc.UpdateProfile(ctx, auth.Identity{UserID: alice.SlugID, Role: model.RoleUser},
		UpdateProfileInput{SlugID: alice.SlugID, Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Alice Smith", updated.Name)

	stored, err := repos.Users.FindBySlugID(ctx, alice.SlugID)
	require.NoError(t, err)
	assert.Equal(t, "x", stored.PasswordHash)

	_, err = svc.UpdateProfile(ctx, auth.Identity{UserID: bob.SlugID, Role: model.RoleUser},
		UpdateProfileInput{SlugID: alice.SlugID, Name: &name})
	assert.Equal(t, apperrors.ErrInsufficientPermission, err)

	taken := "BOB@example.com"
	_, err = svc.UpdateProfile(ctx, auth.Identity{UserID: alice.SlugID, Role: model.RoleUser},
		UpdateProfileInput{SlugID: alice.SlugID, Email: &taken})
	assert.Equal(t, apperrors.ErrEmailExists, err)

	_, err = svc.UpdateProfile(ctx, auth.Identity{Role: model.RoleAdmin},
		UpdateProfileInput{SlugID: bob.SlugID, Name: &name})
	assert.NoError(t, err)
}

func TestUserService_Delete(t *testing.T) {
	ctx := context.Background()
	repos := newTestRepos(t)
	svc := NewUserService(repos.Users, repos.Roles, nil)
	alice := seedUser(t, repos, "alice@example.com")

	assert.Equal(t, apperrors.ErrInsufficientPermission,
		svc.Delete(ctx, auth.Identity{UserID: "someone-else", Role: model.RoleUser}, alice.ID))
	require.NoError(t, svc.Delete(ctx, auth.Identity{UserID: alice.SlugID, Role: model.RoleUser}, alice.ID))

	_, err := svc.GetByID(ctx, alice.ID)
	assert.Equal(t, apperrors.ErrUserNotFound, err)
}

func TestUserService_AssignRole(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockRoles := new(MockRoleRepository)
	user := &model.User{SlugID: "u-1", Role: model.RoleUser}

	mockRoles.On("FindRole", mock.Anything, "chef").Return(nil, gorm.ErrRecordNotFound)
	mockRoles.On("FindRole", mock.Anything, "staff").Return(&model.Role{Name: "staff"}, nil)
	mockUsers.On("FindBySlugID", mock.Anything, "u-1").Return(user, nil)
	mockUsers.On("Update", mock.Anything, user).Return(nil)

	svc := NewUserService(mockUsers, mockRoles, nil)

	_, err := svc.AssignRole(context.Background(), "u-1", "chef")
	assert.Equal(t, apperrors.ErrRoleNotFound, err)

	updated, err := svc.AssignRole(context.Background(), "u-1", "staff")
	require.NoError(t, err)
	assert.Equal(t, "staff", updated.Role)

	mockUsers.AssertExpectations(t)
	mockRoles.AssertExpectations(t)
}

func TestUserService_GetByEmail(t *testing.T) {
	ctx := context.Background()
	repos := newTestRepos(t)
	svc := NewUserService(repos.Users, repos.Roles, nil)
	seedUser(t, repos, "carol@example.com")

	user, err := svc.GetByEmail(ctx, " Carol@Example.com ")
	require.NoError(t, err)
	assert.Equal(t, "carol@example.com", user.Email)

	_, err = svc.GetByEmail(ctx, "")
	assert.Equal(t, apperrors.ErrEmailRequired, err)
	_, err = svc.GetByEmail(ctx, "dave@example.com")
	assert.Equal(t, apperrors.ErrUserNotFound, err)
}
