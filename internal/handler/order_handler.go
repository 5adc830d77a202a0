package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"restaurant/internal/messages"
	"restaurant/internal/middleware"
	"restaurant/internal/model"
	"restaurant/internal/service"
)

// OrderHandler handles order endpoints.
type OrderHandler struct {
	orderService service.OrderService
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(orderService service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// PlaceOrderRequest places an order from a user's cart. The caller is used when userId is omitted.
type PlaceOrderRequest struct {
	UserID string `json:"userId" validate:"omitempty,uuid"`
}

// UpdateOrderRequest changes an order's status.
type UpdateOrderRequest struct {
	Status string `json:"status" validate:"required,oneof=Pending Completed Cancelled"`
}

// PlaceOrder godoc
// @Summary Place an order from the cart
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body PlaceOrderRequest false "Order owner"
// @Success 201 {object} errors.Response{data=model.Order}
// @Failure 400 {object} errors.Response
// @Failure 404 {object} errors.Response
// @Router /orders [post]
func (h *OrderHandler) PlaceOrder(c echo.Context) error {
	var req PlaceOrderRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	userID := req.UserID
	if userID == "" {
		userID = middleware.IdentityFrom(c).UserID
	}

	order, err := h.orderService.PlaceOrder(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, messages.OrderCreated, order)
}

// ListUserOrders godoc
// @Summary List a user's orders with menu item details
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param userId path string true "User slug ID"
// @Success 200 {object} errors.Response{data=[]model.OrderDetail}
// @Router /orders/{userId} [get]
func (h *OrderHandler) ListUserOrders(c echo.Context) error {
	orders, err := h.orderService.ListByUser(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, messages.OrdersFetched, orders)
}

// UpdateOrder godoc
// @Summary Change an order's status
// @Description Pending orders may become Completed or Cancelled; both are final.
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param orderId path string true "Order ID"
// @Param request body UpdateOrderRequest true "Status"
// @Success 200 {object} errors.Response{data=model.Order}
// @Failure 400 {object} errors.Response
// @Failure 404 {object} errors.Response
// @Router /orders/{orderId} [put]
func (h *OrderHandler) UpdateOrder(c echo.Context) error {
	id, err := uuidParam(c, "orderId")
	if err != nil {
		return err
	}
	var req UpdateOrderRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	order, err := h.orderService.UpdateStatus(c.Request().Context(), id, model.OrderStatus(req.Status))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, messages.OrderUpdated, order)
}

// DeleteOrder godoc
// @Summary Delete an order
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param orderId path string true "Order ID"
// @Success 200 {object} errors.Response
// @Failure 404 {object} errors.Response
// @Router /orders/{orderId} [delete]
func (h *OrderHandler) DeleteOrder(c echo.Context) error {
	id, err := uuidParam(c, "orderId")
	if err != nil {
		return err
	}
	if err := h.orderService.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return respond(c, http.StatusOK, messages.OrderRemoved, nil)
}
