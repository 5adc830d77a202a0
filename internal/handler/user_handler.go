package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"restaurant/internal/messages"
	"restaurant/internal/middleware"
	"restaurant/internal/service"
)

// UserHandler handles user profile endpoints.
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// UpdateUserRequest changes a profile. Omitted fields are left unchanged.
type UpdateUserRequest struct {
	SlugID string  `json:"slugId" validate:"required,uuid"`
	Name   *string `json:"name" validate:"omitempty,personname"`
	Email  *string `json:"email" validate:"omitempty,email"`
	Phone  *string `json:"phone" validate:"omitempty,phone10"`
}

// GetUser godoc
// @Summary Get a user by numeric id
// @Tags user
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} errors.Response{data=model.User}
// @Failure 404 {object} errors.Response
// @Router /user/{id} [get]
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := uintParam(c, "id")
	if err != nil {
		return err
	}
	user, err := h.userService.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, messages.UserFetched, user)
}

// GetUserBySlug godoc
// @Summary Get a user by slug id
// @Tags user
// @Produce json
// @Security BearerAuth
// @Param slugId path string true "User slug ID"
// @Success 200 {object} errors.Response{data=model.User}
// @Failure 404 {object} errors.Response
// @Router /user/slugId/{slugId} [get]
func (h *UserHandler) GetUserBySlug(c echo.Context) error {
	user, err := h.userService.GetBySlugID(c.Request().Context(), c.Param("slugId"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, messages.UserFetched, user)
}

// ListUsers godoc
// @Summary List users
// @Tags user
// @Produce json
// @Security BearerAuth
// @Success 200 {object} errors.Response{data=[]model.User}
// @Router /user/get/list [get]
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.userService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, messages.UsersFetched, users)
}

// GetUserByEmail godoc
// @Summary Get a user by email
// @Tags user
// @Produce json
// @Security BearerAuth
// @Param email query string true "Email"
// @Success 200 {object} errors.Response{data=model.User}
// @Failure 400 {object} errors.Response
// @Failure 404 {object} errors.Response
// @Router /user/get/email [get]
func (h *UserHandler) GetUserByEmail(c echo.Context) error {
	user, err := h.userService.GetByEmail(c.Request().Context(), c.QueryParam("email"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, messages.UserFetched, user)
}

// Me godoc
// @Summary Get the caller's profile
// @Tags user
// @Produce json
// @Security BearerAuth
// @Success 200 {object} errors.Response{data=model.User}
// @Router /user/me [get]
func (h *UserHandler) Me(c echo.Context) error {
	user, err := h.userService.GetBySlugID(c.Request().Context(), middleware.IdentityFrom(c).UserID)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, messages.UserFetched, user)
}

// UpdateUser godoc
// @Summary Update a profile
// @Description Users may update their own profile; admins may update any.
// @Tags user
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UpdateUserRequest true "Profile fields"
// @Success 200 {object} errors.Response{data=model.User}
// @Failure 400 {object} errors.Response
// @Failure 403 {object} errors.Response
// @Router /user [put]
func (h *UserHandler) UpdateUser(c echo.Context) error {
	var req UpdateUserRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	user, err := h.userService.UpdateProfile(c.Request().Context(), middleware.IdentityFrom(c), service.UpdateProfileInput{
		SlugID: req.SlugID,
		Name:   req.Name,
		Email:  req.Email,
		Phone:  req.Phone,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, messages.UserUpdated, user)
}

// DeleteUser godoc
// @Summary Delete a user
// @Tags user
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} errors.Response
// @Failure 403 {object} errors.Response
// @Failure 404 {object} errors.Response
// @Router /user/{id} [delete]
func (h *UserHandler) DeleteUser(c echo.Context) error {
	id, err := uintParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.userService.Delete(c.Request().Context(), middleware.IdentityFrom(c), id); err != nil {
		return err
	}
	return respond(c, http.StatusOK, messages.UserDeleted, nil)
}
