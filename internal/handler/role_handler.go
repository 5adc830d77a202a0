package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"restaurant/internal/messages"
	"restaurant/internal/service"
)

// RoleHandler manages roles, permissions and their bindings.
type RoleHandler struct {
	roleService service.RoleService
	userService service.UserService
}

// NewRoleHandler creates a new role handler.
func NewRoleHandler(roleService service.RoleService, userService service.UserService) *RoleHandler {
	return &RoleHandler{roleService: roleService, userService: userService}
}

// NamedRequest creates a role or a permission.
type NamedRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Description string `json:"description" validate:"max=255"`
}

// AssignPermissionRequest binds a permission to a role.
type AssignPermissionRequest struct {
	Role       string `json:"role" validate:"required"`
	Permission string `json:"permission" validate:"required"`
}

// AssignUserRoleRequest sets a user's role.
type AssignUserRoleRequest struct {
	UserID string `json:"userId" validate:"required,uuid"`
	Role   string `json:"role" validate:"required"`
}

// AddRole godoc
// @Summary Add a role
// @Tags roles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body NamedRequest true "Role"
// @Success 201 {object} errors.Response{data=model.Role}
// @Failure 400 {object} errors.Response
// @Failure 403 {object} errors.Response
// @Router /roles/add [post]
func (h *RoleHandler) AddRole(c echo.Context) error {
	var req NamedRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	role, err := h.roleService.AddRole(c.Request().Context(), req.Name, req.Description)
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, messages.RoleAdded, role)
}

// AddPermission godoc
// @Summary Add a permission
// @Tags roles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body NamedRequest true "Permission"
// @Success 201 {object} errors.Response{data=model.Permission}
// @Failure 400 {object} errors.Response
// @Failure 403 {object} errors.Response
// @Router /roles/permissions/add [post]
func (h *RoleHandler) AddPermission(c echo.Context) error {
	var req NamedRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	permission, err := h.roleService.AddPermission(c.Request().Context(), req.Name, req.Description)
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, messages.PermissionAdded, permission)
}

// AssignPermission godoc
// @Summary Bind a permission to a role
// @Tags roles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body AssignPermissionRequest true "Binding"
// @Success 201 {object} errors.Response{data=model.RolePermission}
// @Failure 400 {object} errors.Response
// @Failure 404 {object} errors.Response
// @Router /roles/assign-permission [post]
func (h *RoleHandler) AssignPermission(c echo.Context) error {
	var req AssignPermissionRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	binding, err := h.roleService.AssignPermission(c.Request().Context(), req.Role, req.Permission)
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, messages.RolePermissionAssigned, binding)
}

// AssignUserRole godoc
// @Summary Set a user's role
// @Tags roles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body AssignUserRoleRequest true "User and role"
// @Success 200 {object} errors.Response{data=model.User}
// @Failure 404 {object} errors.Response
// @Router /roles/assign-user [post]
func (h *RoleHandler) AssignUserRole(c echo.Context) error {
	var req AssignUserRoleRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	user, err := h.userService.AssignRole(c.Request().Context(), req.UserID, req.Role)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, messages.UserUpdated, user)
}

// ListRoles godoc
// @Summary List roles
// @Tags roles
// @Produce json
// @Security BearerAuth
// @Success 200 {object} errors.Response{data=[]model.Role}
// @Router /roles/list [get]
func (h *RoleHandler) ListRoles(c echo.Context) error {
	roles, err := h.roleService.ListRoles(c.Request().Context())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, messages.RolesFetched, roles)
}

// ListPermissions godoc
// @Summary List permissions, or the bindings of one role
// @Tags roles
// @Produce json
// @Security BearerAuth
// @Param role query string false "Only permissions bound to this role"
// @Success 200 {object} errors.Response{data=[]model.Permission}
// @Router /roles/permissions/list [get]
func (h *RoleHandler) ListPermissions(c echo.Context) error {
	if role := c.QueryParam("role"); role != "" {
		bindings, err := h.roleService.ListBindings(c.Request().Context(), role)
		if err != nil {
			return err
		}
		return respond(c, http.StatusOK, messages.PermissionsFetched, bindings)
	}

	permissions, err := h.roleService.ListPermissions(c.Request().Context())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, messages.PermissionsFetched, permissions)
}
