package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"restaurant/internal/messages"
	"restaurant/internal/middleware"
	"restaurant/internal/service"
)

// CartHandler handles shopping cart endpoints.
type CartHandler struct {
	cartService service.CartService
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(cartService service.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

// AddToCartRequest adds a menu item to a cart. The caller's cart is used when userId is omitted.
type AddToCartRequest struct {
	UserID     string `json:"userId" validate:"omitempty,uuid"`
	MenuItemID string `json:"menuItemId" validate:"required,uuid"`
	Quantity   int    `json:"quantity" validate:"required,min=1"`
}

// UpdateCartRequest sets the quantity of a cart entry.
type UpdateCartRequest struct {
	SlugID   string `json:"slugId" validate:"required,uuid"`
	Quantity int    `json:"quantity" validate:"required,min=1"`
}

// AddToCart godoc
// @Summary Add an item to a cart
// @Description Adding an item already in the cart increases its quantity.
// @Tags cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body AddToCartRequest true "Cart item"
// @Success 201 {object} errors.Response{data=model.CartEntry}
// @Failure 400 {object} errors.Response
// @Failure 404 {object} errors.Response
// @Router /cart/add [post]
func (h *CartHandler) AddToCart(c echo.Context) error {
	var req AddToCartRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	userID := req.UserID
	if userID == "" {
		userID = middleware.IdentityFrom(c).UserID
	}

	entry, err := h.cartService.Add(c.Request().Context(), userID, req.MenuItemID, req.Quantity)
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, messages.CartItemAdded, entry)
}

// ListCart godoc
// @Summary List every cart entry
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Success 200 {object} errors.Response{data=[]model.CartEntry}
// @Router /cart/all [get]
func (h *CartHandler) ListCart(c echo.Context) error {
	entries, err := h.cartService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, messages.CartItemsFetched, entries)
}

// ListCartDetailed godoc
// @Summary List every cart entry joined with its user and menu item
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Success 200 {object} errors.Response{data=[]model.CartEntryDetail}
// @Router /cart/all/list [get]
func (h *CartHandler) ListCartDetailed(c echo.Context) error {
	entries, err := h.cartService.ListDetailed(c.Request().Context())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, messages.CartItemsFetched, entries)
}

// GetCartEntry godoc
// @Summary Get a cart entry by slug id
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Param slugId path string true "Cart entry slug ID"
// @Success 200 {object} errors.Response{data=model.CartEntry}
// @Failure 404 {object} errors.Response
// @Router /cart/slugId/{slugId} [get]
func (h *CartHandler) GetCartEntry(c echo.Context) error {
	entry, err := h.cartService.Get(c.Request().Context(), c.Param("slugId"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, messages.CartItemsFetched, entry)
}

// GetCartEntryDetail godoc
// @Summary Get a cart entry joined with its user and menu item
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Param slugId path string true "Cart entry slug ID"
// @Success 200 {object} errors.Response{data=model.CartEntryDetail}
// @Failure 404 {object} errors.Response
// @Router /cart/user/menu/{slugId} [get]
func (h *CartHandler) GetCartEntryDetail(c echo.Context) error {
	entry, err := h.cartService.GetDetail(c.Request().Context(), c.Param("slugId"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, messages.CartItemsFetched, entry)
}

// ListUserCart godoc
// @Summary List a user's cart
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Param userId path string true "User slug ID"
// @Success 200 {object} errors.Response{data=[]model.CartEntryDetail}
// @Router /cart/userId/{userId} [get]
func (h *CartHandler) ListUserCart(c echo.Context) error {
	entries, err := h.cartService.ListByUserDetailed(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, messages.CartItemsFetched, entries)
}

// UpdateCartEntry godoc
// @Summary Change the quantity of a cart entry
// @Tags cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UpdateCartRequest true "Quantity"
// @Success 200 {object} errors.Response{data=model.CartEntry}
// @Failure 400 {object} errors.Response
// @Failure 404 {object} errors.Response
// @Router /cart/update [put]
func (h *CartHandler) UpdateCartEntry(c echo.Context) error {
	var req UpdateCartRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	entry, err := h.cartService.UpdateQuantity(c.Request().Context(), req.SlugID, req.Quantity)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, messages.CartItemUpdated, entry)
}

// RemoveCartEntry godoc
// @Summary Remove a cart entry
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Param slugId path string true "Cart entry slug ID"
// @Success 200 {object} errors.Response
// @Failure 404 {object} errors.Response
// @Router /cart/remove/{slugId} [delete]
func (h *CartHandler) RemoveCartEntry(c echo.Context) error {
	if err := h.cartService.Remove(c.Request().Context(), c.Param("slugId")); err != nil {
		return err
	}
	return respond(c, http.StatusOK, messages.CartItemRemoved, nil)
}
