package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"restaurant/internal/messages"
	"restaurant/internal/middleware"
	"restaurant/internal/service"
)

// FavoriteHandler handles favorite menu item endpoints.
type FavoriteHandler struct {
	favoriteService service.FavoriteService
}

// NewFavoriteHandler creates a new favorite handler.
func NewFavoriteHandler(favoriteService service.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{favoriteService: favoriteService}
}

// FavoriteRequest marks a menu item as a favorite. The caller is used when userId is omitted.
type FavoriteRequest struct {
	UserID     string `json:"userId" validate:"omitempty,uuid"`
	MenuItemID string `json:"menuItemId" validate:"required,uuid"`
}

// ClearFavoritesResponse reports how many favorites were removed.
type ClearFavoritesResponse struct {
	Deleted int64 `json:"deleted"`
}

// AddFavorite godoc
// @Summary Add a favorite
// @Tags favorites
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body FavoriteRequest true "Favorite"
// @Success 201 {object} errors.Response{data=model.Favorite}
// @Failure 400 {object} errors.Response
// @Failure 404 {object} errors.Response
// @Router /favorites [post]
func (h *FavoriteHandler) AddFavorite(c echo.Context) error {
	var req FavoriteRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	userID := req.UserID
	if userID == "" {
		userID = middleware.IdentityFrom(c).UserID
	}

	favorite, err := h.favoriteService.Add(c.Request().Context(), userID, req.MenuItemID)
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, messages.FavoriteAdded, favorite)
}

// ListFavorites godoc
// @Summary List a user's favorites
// @Tags favorites
// @Produce json
// @Security BearerAuth
// @Param userId path string true "User slug ID"
// @Success 200 {object} errors.Response{data=[]model.FavoriteDetail}
// @Router /favorites/{userId} [get]
func (h *FavoriteHandler) ListFavorites(c echo.Context) error {
	favorites, err := h.favoriteService.ListByUser(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, messages.FavoritesFetched, favorites)
}

// DeleteFavorite godoc
// @Summary Remove a favorite
// @Tags favorites
// @Produce json
// @Security BearerAuth
// @Param favoriteId path string true "Favorite ID"
// @Success 200 {object} errors.Response
// @Failure 404 {object} errors.Response
// @Router /favorites/{favoriteId} [delete]
func (h *FavoriteHandler) DeleteFavorite(c echo.Context) error {
	id, err := uuidParam(c, "favoriteId")
	if err != nil {
		return err
	}
	if err := h.favoriteService.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return respond(c, http.StatusOK, messages.FavoriteDeleted, nil)
}

// ClearFavorites godoc
// @Summary Remove every favorite of a user
// @Tags favorites
// @Produce json
// @Security BearerAuth
// @Param userId path string true "User slug ID"
// @Success 200 {object} errors.Response{data=ClearFavoritesResponse}
// @Router /favorites/clear/{userId} [delete]
func (h *FavoriteHandler) ClearFavorites(c echo.Context) error {
	n, err := h.favoriteService.Clear(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, messages.FavoritesCleared, ClearFavoritesResponse{Deleted: n})
}
