package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "restaurant/internal/errors"
	"restaurant/internal/model"
)

func TestStaffService(t *testing.T) {
	ctx := context.Background()
	svc := NewStaffService(newTestRepos(t).Staff)

	chef, err := svc.Create(ctx, StaffInput{Name: "Ana", Email: "Ana@Example.com", Phone: "9876543210", Role: model.StaffRoleChef})
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", chef.Email)
	assert.Equal(t, model.StaffStatusActive, chef.Status)

	waiter, err := svc.Create(ctx, StaffInput{Name: "Ben", Email: "ben@example.com", Role: model.StaffRoleWaiter})
	require.NoError(t, err)

	_, err = svc.Create(ctx, StaffInput{Name: "Copy", Email: "ana@example.com", Role: model.StaffRoleCleaner})
	assert.Equal(t, apperrors.ErrEmailExists, err)
	_, err = svc.Update(ctx, waiter.ID, StaffInput{Email: "ana@example.com"})
	assert.Equal(t, apperrors.ErrEmailExists, err)

	updated, err := svc.Update(ctx, waiter.ID, StaffInput{Status: model.StaffStatusInactive})
	require.NoError(t, err)
	assert.Equal(t, model.StaffStatusInactive, updated.Status)
	assert.Equal(t, "Ben", updated.Name)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	require.NoError(t, svc.Delete(ctx, chef.ID))
	_, err = svc.Get(ctx, chef.ID)
	assert.Equal(t, apperrors.ErrStaffNotFound, err)
	assert.Equal(t, apperrors.ErrStaffNotFound, svc.Delete(ctx, uuid.New()))
}
