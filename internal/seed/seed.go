// Package seed installs the built-in roles, the permission grid and the admin account.
package seed

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"restaurant/internal/model"
	"restaurant/internal/repository"
)

// Resources guarded by permissions. Each gets "<resource>_<suffix>" for every suffix.
var Resources = []string{"roles", "category", "menu", "orders", "bills", "staff", "metrics"}

// Suffixes matches the HTTP method mapping used for authorization.
var Suffixes = []string{"read", "add", "update", "delete"}

var roleDescriptions = map[string]string{
	model.RoleAdmin: "Full access",
	model.RoleStaff: "Restaurant operations",
	model.RoleUser:  "Customer",
}

// Result counts what a run created.
type Result struct {
	Roles        int
	Permissions  int
	Bindings     int
	AdminCreated bool
	AdminUpdated bool
}

// Run is idempotent: existing rows are left alone and only missing ones are created.
func Run(ctx context.Context, repos *repository.Repositories, adminEmail, adminPassword string) (*Result, error) {
	res := &Result{}

	for _, name := range []string{model.RoleAdmin, model.RoleStaff, model.RoleUser} {
		created, err := ensureRole(ctx, repos.Roles, name)
		if err != nil {
			return res, err
		}
		if created {
			res.Roles++
		}
	}

	for _, name := range Permissions() {
		created, err := ensurePermission(ctx, repos.Roles, name)
		if err != nil {
			return res, err
		}
		if created {
			res.Permissions++
		}
	}

	for role, permissions := range Bindings() {
		for _, permission := range permissions {
			created, err := ensureBinding(ctx, repos.Roles, role, permission)
			if err != nil {
				return res, err
			}
			if created {
				res.Bindings++
			}
		}
	}

	if adminEmail != "" {
		created, updated, err := ensureAdmin(ctx, repos.Users, adminEmail, adminPassword)
		if err != nil {
			return res, err
		}
		res.AdminCreated, res.AdminUpdated = created, updated
	}
	return res, nil
}

// Permissions returns the full "<resource>_<suffix>" grid.
func Permissions() []string {
	out := make([]string, 0, len(Resources)*len(Suffixes))
	for _, resource := range Resources {
		for _, suffix := range Suffixes {
			out = append(out, resource+"_"+suffix)
		}
	}
	return out
}

// Bindings returns the permissions granted to each built-in role.
func Bindings() map[string][]string {
	var staff []string
	for _, resource := range []string{"category", "menu", "orders", "bills"} {
		for _, suffix := range Suffixes {
			staff = append(staff, resource+"_"+suffix)
		}
	}
	return map[string][]string{
		model.RoleAdmin: Permissions(),
		model.RoleStaff: staff,
		model.RoleUser:  {"menu_read", "category_read"},
	}
}

func ensureRole(ctx context.Context, roles repository.RoleRepository, name string) (bool, error) {
	if _, err := roles.FindRole(ctx, name); err == nil {
		return false, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("error checking role %s: %w", name, err)
	}
	if err := roles.CreateRole(ctx, &model.Role{Name: name, Description: roleDescriptions[name]}); err != nil {
		return false, fmt.Errorf("error creating role %s: %w", name, err)
	}
	return true, nil
}

func ensurePermission(ctx context.Context, roles repository.RoleRepository, name string) (bool, error) {
	if _, err := roles.FindPermission(ctx, name); err == nil {
		return false, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("error checking permission %s: %w", name, err)
	}
	description := strings.ReplaceAll(name, "_", " ")
	if err := roles.CreatePermission(ctx, &model.Permission{Name: name, Description: description}); err != nil {
		return false, fmt.Errorf("error creating permission %s: %w", name, err)
	}
	return true, nil
}

func ensureBinding(ctx context.Context, roles repository.RoleRepository, role, permission string) (bool, error) {
	exists, err := roles.HasBinding(ctx, role, permission)
	if err != nil {
		return false, fmt.Errorf("error checking binding %s/%s: %w", role, permission, err)
	}
	if exists {
		return false, nil
	}
	if err := roles.CreateBinding(ctx, &model.RolePermission{Role: role, Permission: permission}); err != nil {
		return false, fmt.Errorf("error binding %s to %s: %w", permission, role, err)
	}
	return true, nil
}

// ensureAdmin creates the admin account, or promotes an existing account with that email.
func ensureAdmin(ctx context.Context, users repository.UserRepository, email, password string) (created, updated bool, err error) {
	email = strings.ToLower(strings.TrimSpace(email))
	existing, err := users.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, false, fmt.Errorf("error checking admin %s: %w", email, err)
	}

	if err == nil {
		if existing.Role == model.RoleAdmin {
			return false, false, nil
		}
		existing.Role = model.RoleAdmin
		if err := users.Update(ctx, existing); err != nil {
			return false, false, fmt.Errorf("error updating admin %s: %w", email, err)
		}
		return false, true, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return false, false, fmt.Errorf("hash admin password: %w", err)
	}
	admin := &model.User{
		Name:         "Administrator",
		Email:        email,
		PasswordHash: string(hash),
		Role:         model.RoleAdmin,
		IsVerified:   true,
	}
	if err := users.Create(ctx, admin); err != nil {
		return false, false, fmt.Errorf("error creating admin %s: %w", email, err)
	}
	return true, false, nil
}
