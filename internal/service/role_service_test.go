package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "restaurant/internal/errors"
)

func TestRoleService(t *testing.T) {
	ctx := context.Background()
	repos := newTestRepos(t)
	svc := NewRoleService(repos.Roles)

	_, err := svc.AddRole(ctx, "admin", "Administrators")
	require.NoError(t, err)
	_, err = svc.AddRole(ctx, "staff", "Staff")
	require.NoError(t, err)
	_, err = svc.AddRole(ctx, "admin", "again")
	assert.Equal(t, apperrors.ErrRoleExists, err)

	_, err = svc.AddPermission(ctx, "bills_read", "Read bills")
	require.NoError(t, err)
	_, err = svc.AddPermission(ctx, "bills_read", "again")
	assert.Equal(t, apperrors.ErrPermissionExists, err)

	tests := []struct {
		name       string
		role       string
		permission string
		wantErr    error
	}{
		{"bind admin", "admin", "bills_read", nil},
		{"same permission on second role", "staff", "bills_read", nil},
		{"duplicate pair", "admin", "bills_read", apperrors.ErrRolePermissionExists},
		{"unknown role", "chef", "bills_read", apperrors.ErrRoleNotFound},
		{"unknown permission", "admin", "bills_delete", apperrors.ErrUnknownPermission},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			binding, err := svc.AssignPermission(ctx, tt.role, tt.permission)
			if tt.wantErr != nil {
				assert.Equal(t, tt.wantErr, err)
				assert.Nil(t, binding)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.role, binding.Role)
		})
	}

	roles, err := svc.ListRoles(ctx)
	require.NoError(t, err)
	assert.Len(t, roles, 2)

	bindings, err := svc.ListBindings(ctx, "")
	require.NoError(t, err)
	assert.Len(t, bindings, 2)
}
