package service

import (
	"context"
	"fmt"

	apperrors "restaurant/internal/errors"
	"restaurant/internal/model"
	"restaurant/internal/repository"
)

// RoleService manages roles, permissions and their bindings.
type RoleService interface {
	AddRole(ctx context.Context, name, description string) (*model.Role, error)
	AddPermission(ctx context.Context, name, description string) (*model.Permission, error)
	AssignPermission(ctx context.Context, role, permission string) (*model.RolePermission, error)
	ListRoles(ctx context.Context) ([]model.Role, error)
	ListPermissions(ctx context.Context) ([]model.Permission, error)
	ListBindings(ctx context.Context, role string) ([]model.RolePermission, error)
}

type roleService struct {
	roles repository.RoleRepository
}

// NewRoleService creates a new role service.
func NewRoleService(roles repository.RoleRepository) RoleService {
	return &roleService{roles: roles}
}

func (s *roleService) AddRole(ctx context.Context, name, description string) (*model.Role, error) {
	if _, err := s.roles.FindRole(ctx, name); err == nil {
		return nil, apperrors.ErrRoleExists
	} else if !isNotFound(err) {
		return nil, fmt.Errorf("find role: %w", err)
	}

	role := &model.Role{Name: name, Description: description}
	if err := s.roles.CreateRole(ctx, role); err != nil {
		if isDuplicate(err) {
			return nil, apperrors.ErrRoleExists
		}
		return nil, fmt.Errorf("create role: %w", err)
	}
	return role, nil
}

func (s *roleService) AddPermission(ctx context.Context, name, description string) (*model.Permission, error) {
	if _, err := s.roles.FindPermission(ctx, name); err == nil {
		return nil, apperrors.ErrPermissionExists
	} else if !isNotFound(err) {
		return nil, fmt.Errorf("find permission: %w", err)
	}

	permission := &model.Permission{Name: name, Description: description}
	if err := s.roles.CreatePermission(ctx, permission); err != nil {
		if isDuplicate(err) {
			return nil, apperrors.ErrPermissionExists
		}
		return nil, fmt.Errorf("create permission: %w", err)
	}
	return permission, nil
}

// AssignPermission binds an existing permission to an existing role. A pair is bound at most once;
// the same permission may be bound to several roles.
func (s *roleService) AssignPermission(ctx context.Context, role, permission string) (*model.RolePermission, error) {
	if _, err := s.roles.FindRole(ctx, role); err != nil {
		return nil, notFound(err, apperrors.ErrRoleNotFound)
	}
	if _, err := s.roles.FindPermission(ctx, permission); err != nil {
		return nil, notFound(err, apperrors.ErrUnknownPermission)
	}

	bound, err := s.roles.HasBinding(ctx, role, permission)
	if err != nil {
		return nil, fmt.Errorf("check binding: %w", err)
	}
	if bound {
		return nil, apperrors.ErrRolePermissionExists
	}

	binding := &model.RolePermission{Role: role, Permission: permission}
	if err := s.roles.CreateBinding(ctx, binding); err != nil {
		if isDuplicate(err) {
			return nil, apperrors.ErrRolePermissionExists
		}
		return nil, fmt.Errorf("create binding: %w", err)
	}
	return binding, nil
}

func (s *roleService) ListRoles(ctx context.Context) ([]model.Role, error) {
	return s.roles.ListRoles(ctx)
}

func (s *roleService) ListPermissions(ctx context.Context) ([]model.Permission, error) {
	return s.roles.ListPermissions(ctx)
}

func (s *roleService) ListBindings(ctx context.Context, role string) ([]model.RolePermission, error) {
	return s.roles.ListBindings(ctx, role)
}
