package service

import (
	"context"
	"fmt"
	"net/http"

	"github.com/labstack/gommon/log"

	apperrors "restaurant/internal/errors"
	"restaurant/internal/repository"
)

var methodSuffixes = map[string]string{
	http.MethodGet:    "read",
	http.MethodPost:   "add",
	http.MethodPut:    "update",
	http.MethodPatch:  "update",
	http.MethodDelete: "delete",
}

// PermissionName composes "<resource>_<suffix>" for an HTTP method. ok is false for
// methods that carry no permission.
func PermissionName(resource, method string) (string, bool) {
	suffix, ok := methodSuffixes[method]
	if !ok {
		return "", false
	}
	return resource + "_" + suffix, true
}

// AccessService decides whether a role may act on a resource.
type AccessService interface {
	Authorize(ctx context.Context, role, resource, method string) error
}

type accessService struct {
	roles repository.RoleRepository
}

// NewAccessService creates a new access service.
func NewAccessService(roles repository.RoleRepository) AccessService {
	return &accessService{roles: roles}
}

// Authorize allows the call when the role is bound to the permission derived from resource and method.
// Each denial reason is a distinct error.
func (s *accessService) Authorize(ctx context.Context, role, resource, method string) error {
	if role == "" {
		log.Warnf("access %s %s: no role on identity", method, resource)
		return apperrors.ErrNoRoleAssigned
	}

	name, ok := PermissionName(resource, method)
	if !ok {
		log.Warnf("access %s %s: method carries no permission", method, resource)
		return apperrors.ErrInvalidPermissionMethod
	}

	if _, err := s.roles.FindPermission(ctx, name); err != nil {
		if isNotFound(err) {
			log.Warnf("access %s: permission %s is not defined", role, name)
			return apperrors.ErrPermissionNotFound
		}
		return fmt.Errorf("find permission: %w", err)
	}

	bound, err := s.roles.HasBinding(ctx, role, name)
	if err != nil {
		return fmt.Errorf("check binding: %w", err)
	}
	if !bound {
		log.Infof("access %s: denied %s", role, name)
		return apperrors.ErrInsufficientPermission
	}
	return nil
}
