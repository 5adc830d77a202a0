package repository

import (
	"context"

	"gorm.io/gorm"

	"restaurant/internal/model"
)

// RoleRepository persists roles, permissions and their bindings.
type RoleRepository interface {
	CreateRole(ctx context.Context, role *model.Role) error
	FindRole(ctx context.Context, name string) (*model.Role, error)
	ListRoles(ctx context.Context) ([]model.Role, error)
	CreatePermission(ctx context.Context, permission *model.Permission) error
	FindPermission(ctx context.Context, name string) (*model.Permission, error)
	ListPermissions(ctx context.Context) ([]model.Permission, error)
	CreateBinding(ctx context.Context, binding *model.RolePermission) error
	HasBinding(ctx context.Context, role, permission string) (bool, error)
	ListBindings(ctx context.Context, role string) ([]model.RolePermission, error)
}

type roleRepository struct {
	db *gorm.DB
}

// NewRoleRepository creates a new role repository.
func NewRoleRepository(db *gorm.DB) RoleRepository {
	return &roleRepository{db: db}
}

func (r *roleRepository) CreateRole(ctx context.Context, role *model.Role) error {
	return r.db.WithContext(ctx).Create(role).Error
}

func (r *roleRepository) FindRole(ctx context.Context, name string) (*model.Role, error) {
	var role model.Role
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&role).Error; err != nil {
		return nil, err
	}
	return &role, nil
}

func (r *roleRepository) ListRoles(ctx context.Context) ([]model.Role, error) {
	var roles []model.Role
	if err := r.db.WithContext(ctx).Order("name").Find(&roles).Error; err != nil {
		return nil, err
	}
	return roles, nil
}

func (r *roleRepository) CreatePermission(ctx context.Context, permission *model.Permission) error {
	return r.db.WithContext(ctx).Create(permission).Error
}

func (r *roleRepository) FindPermission(ctx context.Context, name string) (*model.Permission, error) {
	var permission model.Permission
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&permission).Error; err != nil {
		return nil, err
	}
	return &permission, nil
}

func (r *roleRepository) ListPermissions(ctx context.Context) ([]model.Permission, error) {
	var permissions []model.Permission
	if err := r.db.WithContext(ctx).Order("name").Find(&permissions).Error; err != nil {
		return nil, err
	}
	return permissions, nil
}

func (r *roleRepository) CreateBinding(ctx context.Context, binding *model.RolePermission) error {
	return r.db.WithContext(ctx).Create(binding).Error
}

func (r *roleRepository) HasBinding(ctx context.Context, role, permission string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.RolePermission{}).
		Where("role = ? AND permission = ?", role, permission).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *roleRepository) ListBindings(ctx context.Context, role string) ([]model.RolePermission, error) {
	var bindings []model.RolePermission
	q := r.db.WithContext(ctx).Order("role, permission")
	if role != "" {
		q = q.Where("role = ?", role)
	}
	if err := q.Find(&bindings).Error; err != nil {
		return nil, err
	}
	return bindings, nil
}
