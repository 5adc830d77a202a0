package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	apperrors "restaurant/internal/errors"
	"restaurant/internal/model"
)

func TestPermissionName(t *testing.T) {
	tests := []struct {
		method string
		want   string
		ok     bool
	}{
		{http.MethodGet, "menu_read", true},
		{http.MethodPost, "menu_add", true},
		{http.MethodPut, "menu_update", true},
		{http.MethodPatch, "menu_update", true},
		{http.MethodDelete, "menu_delete", true},
		{http.MethodOptions, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			got, ok := PermissionName("menu", tt.method)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAccessService_Authorize(t *testing.T) {
	tests := []struct {
		name          string
		role          string
		method        string
		setupMock     func(*MockRoleRepository)
		expectedError error
	}{
		{
			name:          "no role",
			role:          "",
			method:        http.MethodGet,
			setupMock:     func(m *MockRoleRepository) {},
			expectedError: apperrors.ErrNoRoleAssigned,
		},
		{
			name:          "method without permission",
			role:          "staff",
			method:        http.MethodHead,
			setupMock:     func(m *MockRoleRepository) {},
			expectedError: apperrors.ErrInvalidPermissionMethod,
		},
		{
			name:   "undefined permission",
			role:   "staff",
			method: http.MethodDelete,
			setupMock: func(m *MockRoleRepository) {
				m.On("FindPermission", mock.Anything, "menu_delete").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrPermissionNotFound,
		},
		{
			name:   "role not bound",
			role:   "user",
			method: http.MethodPut,
			setupMock: func(m *MockRoleRepository) {
				m.On("FindPermission", mock.Anything, "menu_update").Return(&model.Permission{Name: "menu_update"}, nil)
				m.On("HasBinding", mock.Anything, "user", "menu_update").Return(false, nil)
			},
			expectedError: apperrors.ErrInsufficientPermission,
		},
		{
			name:   "allowed",
			role:   "staff",
			method: http.MethodPut,
			setupMock: func(m *MockRoleRepository) {
				m.On("FindPermission", mock.Anything, "menu_update").Return(&model.Permission{Name: "menu_update"}, nil)
				m.On("HasBinding", mock.Anything, "staff", "menu_update").Return(true, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockRoleRepository)
			tt.setupMock(mockRepo)

			err := NewAccessService(mockRepo).Authorize(context.Background(), tt.role, "menu", tt.method)
			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
			} else {
				assert.NoError(t, err)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAccessService_StoreError(t *testing.T) {
	mockRepo := new(MockRoleRepository)
	mockRepo.On("FindPermission", mock.Anything, "bills_read").Return(nil, errors.New("timeout"))

	err := NewAccessService(mockRepo).Authorize(context.Background(), "staff", "bills", http.MethodGet)
	require.Error(t, err)
	assert.Equal(t, apperrors.KindInternal, apperrors.KindOf(err))
}

// A role with no bindings is denied everywhere; a role bound only to menu_update may PUT but not DELETE.
func TestAccessService_BindingMatrix(t *testing.T) {
	ctx := context.Background()
	repos := newTestRepos(t)
	roles := NewRoleService(repos.Roles)
	access := NewAccessService(repos.Roles)

	for _, name := range []string{"editor", "guest"} {
		_, err := roles.AddRole(ctx, name, name)
		require.NoError(t, err)
	}
	for _, suffix := range []string{"read", "add", "update", "delete"} {
		_, err := roles.AddPermission(ctx, "menu_"+suffix, "")
		require.NoError(t, err)
	}
	_, err := roles.AssignPermission(ctx, "editor", "menu_update")
	require.NoError(t, err)

	for _, method := range []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete} {
		assert.Equal(t, apperrors.ErrInsufficientPermission, access.Authorize(ctx, "guest", "menu", method), method)
	}
	assert.NoError(t, access.Authorize(ctx, "editor", "menu", http.MethodPut))
	assert.Equal(t, apperrors.ErrInsufficientPermission, access.Authorize(ctx, "editor", "menu", http.MethodDelete))
}
