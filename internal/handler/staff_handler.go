package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"restaurant/internal/messages"
	"restaurant/internal/model"
	"restaurant/internal/service"
)

// StaffHandler handles staff endpoints.
type StaffHandler struct {
	staffService service.StaffService
}

// NewStaffHandler creates a new staff handler.
func NewStaffHandler(staffService service.StaffService) *StaffHandler {
	return &StaffHandler{staffService: staffService}
}

// StaffRequest creates a staff member. Status defaults to active.
type StaffRequest struct {
	Name   string `json:"name" validate:"required,personname"`
	Email  string `json:"email" validate:"required,email"`
	Phone  string `json:"phone" validate:"omitempty,phone10"`
	Role   string `json:"role" validate:"required,oneof=manager waiter chef cleaner"`
	Status string `json:"status" validate:"omitempty,oneof=active inactive"`
}

// UpdateStaffRequest changes a staff member. Empty fields are left unchanged.
type UpdateStaffRequest struct {
	Name   string `json:"name" validate:"omitempty,personname"`
	Email  string `json:"email" validate:"omitempty,email"`
	Phone  string `json:"phone" validate:"omitempty,phone10"`
	Role   string `json:"role" validate:"omitempty,oneof=manager waiter chef cleaner"`
	Status string `json:"status" validate:"omitempty,oneof=active inactive"`
}

// CreateStaff godoc
// @Summary Add a staff member
// @Tags staff
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body StaffRequest true "Staff member"
// @Success 201 {object} errors.Response{data=model.Staff}
// @Failure 400 {object} errors.Response
// @Router /staff [post]
func (h *StaffHandler) CreateStaff(c echo.Context) error {
	var req StaffRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	staff, err := h.staffService.Create(c.Request().Context(), service.StaffInput{
		Name:   req.Name,
		Email:  req.Email,
		Phone:  req.Phone,
		Role:   model.StaffRole(req.Role),
		Status: model.StaffStatus(req.Status),
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, messages.StaffCreated, staff)
}

// ListStaff godoc
// @Summary List staff
// @Tags staff
// @Produce json
// @Security BearerAuth
// @Success 200 {object} errors.Response{data=[]model.Staff}
// @Router /staff [get]
func (h *StaffHandler) ListStaff(c echo.Context) error {
	staff, err := h.staffService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, messages.StaffFetched, staff)
}

// GetStaff godoc
// @Summary Get a staff member
// @Tags staff
// @Produce json
// @Security BearerAuth
// @Param staffId path string true "Staff ID"
// @Success 200 {object} errors.Response{data=model.Staff}
// @Failure 404 {object} errors.Response
// @Router /staff/{staffId} [get]
func (h *StaffHandler) GetStaff(c echo.Context) error {
	id, err := uuidParam(c, "staffId")
	if err != nil {
		return err
	}
	staff, err := h.staffService.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, messages.StaffFetched, staff)
}

// UpdateStaff godoc
// @Summary Update a staff member
// @Tags staff
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param staffId path string true "Staff ID"
// @Param request body UpdateStaffRequest true "Staff fields"
// @Success 200 {object} errors.Response{data=model.Staff}
// @Failure 400 {object} errors.Response
// @Failure 404 {object} errors.Response
// @Router /staff/{staffId} [put]
func (h *StaffHandler) UpdateStaff(c echo.Context) error {
	id, err := uuidParam(c, "staffId")
	if err != nil {
		return err
	}
	var req UpdateStaffRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	staff, err := h.staffService.Update(c.Request().Context(), id, service.StaffInput{
		Name:   req.Name,
		Email:  req.Email,
		Phone:  req.Phone,
		Role:   model.StaffRole(req.Role),
		Status: model.StaffStatus(req.Status),
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, messages.StaffUpdated, staff)
}

// DeleteStaff godoc
// @Summary Delete a staff member
// @Tags staff
// @Produce json
// @Security BearerAuth
// @Param staffId path string true "Staff ID"
// @Success 200 {object} errors.Response
// @Failure 404 {object} errors.Response
// @Router /staff/{staffId} [delete]
func (h *StaffHandler) DeleteStaff(c echo.Context) error {
	id, err := uuidParam(c, "staffId")
	if err != nil {
		return err
	}
	if err := h.staffService.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return respond(c, http.StatusOK, messages.StaffDeleted, nil)
}
