package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	apperrors "restaurant/internal/errors"
	"restaurant/internal/messages"
	"restaurant/internal/service"
)

// MenuHandler handles menu item endpoints.
type MenuHandler struct {
	menuService service.MenuService
}

// NewMenuHandler creates a new menu handler.
func NewMenuHandler(menuService service.MenuService) *MenuHandler {
	return &MenuHandler{menuService: menuService}
}

// MenuItemRequest creates a menu item.
type MenuItemRequest struct {
	Name        string          `json:"name" validate:"required,min=2,max=100"`
	Description string          `json:"description" validate:"required,description"`
	Price       decimal.Decimal `json:"price" validate:"money" swaggertype:"number"`
	CategoryID  string          `json:"categoryId" validate:"required,uuid"`
}

// UpdateMenuItemRequest changes a menu item. Omitted fields are left unchanged.
type UpdateMenuItemRequest struct {
	SlugID      string           `json:"slugId" validate:"required,uuid"`
	Name        *string          `json:"name" validate:"omitempty,min=2,max=100"`
	Description *string          `json:"description" validate:"omitempty,description"`
	Price       *decimal.Decimal `json:"price" validate:"omitempty,money" swaggertype:"number"`
	CategoryID  *string          `json:"categoryId" validate:"omitempty,uuid"`
}

// CreateMenuItem godoc
// @Summary Create a menu item
// @Tags menu
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body MenuItemRequest true "Menu item"
// @Success 201 {object} errors.Response{data=model.MenuItem}
// @Failure 400 {object} errors.Response
// @Failure 404 {object} errors.Response
// @Router /menu [post]
func (h *MenuHandler) CreateMenuItem(c echo.Context) error {
	var req MenuItemRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	item, err := h.menuService.Create(c.Request().Context(), service.MenuItemInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		CategoryID:  req.CategoryID,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, messages.MenuItemCreated, item)
}

// ListMenuItems godoc
// @Summary List menu items
// @Tags menu
// @Produce json
// @Success 200 {object} errors.Response{data=[]model.MenuItem}
// @Router /menu [get]
func (h *MenuHandler) ListMenuItems(c echo.Context) error {
	items, err := h.menuService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, messages.MenuItemsFetched, items)
}

// ListMenuWithCategory godoc
// @Summary List menu items joined with their category
// @Tags menu
// @Produce json
// @Success 200 {object} errors.Response{data=[]model.MenuItemWithCategory}
// @Router /menu/all [get]
func (h *MenuHandler) ListMenuWithCategory(c echo.Context) error {
	items, err := h.menuService.ListWithCategory(c.Request().Context())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, messages.MenuItemsFetched, items)
}

// GetMenuItem godoc
// @Summary Get a menu item by numeric id
// @Tags menu
// @Produce json
// @Param id path int true "Menu item ID"
// @Success 200 {object} errors.Response{data=model.MenuItem}
// @Failure 404 {object} errors.Response
// @Router /menu/{id} [get]
func (h *MenuHandler) GetMenuItem(c echo.Context) error {
	id, err := uintParam(c, "id")
	if err != nil {
		return err
	}
	item, err := h.menuService.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, messages.MenuItemFetched, item)
}

// GetMenuItemBySlug godoc
// @Summary Get a menu item by slug id
// @Tags menu
// @Produce json
// @Param slugId path string true "Menu item slug ID"
// @Success 200 {object} errors.Response{data=model.MenuItem}
// @Failure 404 {object} errors.Response
// @Router /menu/slugId/{slugId} [get]
func (h *MenuHandler) GetMenuItemBySlug(c echo.Context) error {
	item, err := h.menuService.GetBySlugID(c.Request().Context(), c.Param("slugId"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, messages.MenuItemFetched, item)
}

// ListMenuByCategory godoc
// @Summary List the menu items of a category
// @Tags menu
// @Produce json
// @Param id path string true "Category slug ID"
// @Success 200 {object} errors.Response{data=[]model.MenuItem}
// @Failure 404 {object} errors.Response
// @Router /menu/category/{id} [get]
func (h *MenuHandler) ListMenuByCategory(c echo.Context) error {
	items, err := h.menuService.ListByCategory(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, messages.MenuItemsFetched, items)
}

// UpdateMenuItem godoc
// @Summary Update a menu item
// @Tags menu
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UpdateMenuItemRequest true "Menu item fields"
// @Success 200 {object} errors.Response{data=model.MenuItem}
// @Failure 400 {object} errors.Response
// @Failure 404 {object} errors.Response
// @Router /menu [put]
func (h *MenuHandler) UpdateMenuItem(c echo.Context) error {
	var req UpdateMenuItemRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	item, err := h.menuService.Update(c.Request().Context(), service.MenuUpdateInput{
		SlugID:      req.SlugID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		CategoryID:  req.CategoryID,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, messages.MenuItemUpdated, item)
}

// DeleteMenuItem godoc
// @Summary Delete a menu item
// @Tags menu
// @Produce json
// @Security BearerAuth
// @Param id path int true "Menu item ID"
// @Success 200 {object} errors.Response
// @Failure 404 {object} errors.Response
// @Router /menu/{id} [delete]
func (h *MenuHandler) DeleteMenuItem(c echo.Context) error {
	id, err := uintParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.menuService.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return respond(c, http.StatusOK, messages.MenuItemDeleted, nil)
}

// PageMenu godoc
// @Summary Page through menu items by creation time
// @Tags menu
// @Produce json
// @Param search query string false "Case-insensitive name filter"
// @Param page query int false "Page number, default 1"
// @Param limit query int false "Page size; omit for every match"
// @Success 200 {object} errors.Response{data=service.MenuPage}
// @Failure 400 {object} errors.Response
// @Router /menu/get/page [get]
func (h *MenuHandler) PageMenu(c echo.Context) error {
	params, err := pageParams(c)
	if err != nil {
		return err
	}
	return h.page(c, params)
}

// PageMenuOrdered godoc
// @Summary Page through menu items ordered by name
// @Tags menu
// @Produce json
// @Param search query string false "Case-insensitive name filter"
// @Param page query int false "Page number, default 1"
// @Param limit query int false "Page size; omit for every match"
// @Param sort query string false "asc or desc"
// @Success 200 {object} errors.Response{data=service.MenuPage}
// @Failure 400 {object} errors.Response
// @Router /menu/get/page-order [get]
func (h *MenuHandler) PageMenuOrdered(c echo.Context) error {
	params, err := pageParams(c)
	if err != nil {
		return err
	}
	params.Sort = c.QueryParam("sort")
	if params.Sort == "" {
		params.Sort = "asc"
	}
	return h.page(c, params)
}

func (h *MenuHandler) page(c echo.Context, params service.PageParams) error {
	page, err := h.menuService.Page(c.Request().Context(), params)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, messages.MenuItemsFetched, page)
}

func pageParams(c echo.Context) (service.PageParams, error) {
	params := service.PageParams{Search: c.QueryParam("search"), Page: 1}
	if raw := c.QueryParam("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			return params, apperrors.ErrBadRequest
		}
		params.Page = page
	}
	if raw := c.QueryParam("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			return params, apperrors.ErrBadRequest
		}
		params.Limit = limit
	}
	return params, nil
}

// UploadMenuImage godoc
// @Summary Upload or replace a menu item image
// @Tags menu
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param slugId formData string true "Menu item slug ID"
// @Param image formData file true "JPG, JPEG or PNG image"
// @Success 200 {object} errors.Response{data=model.MenuItem}
// @Failure 400 {object} errors.Response
// @Failure 404 {object} errors.Response
// @Router /menu/upload [post]
func (h *MenuHandler) UploadMenuImage(c echo.Context) error {
	slugID := c.FormValue("slugId")
	if slugID == "" {
		return apperrors.Validation(messages.RequiredFields)
	}
	header, err := c.FormFile("image")
	if err != nil {
		return apperrors.ErrInvalidImage
	}
	file, err := header.Open()
	if err != nil {
		return apperrors.ErrInvalidImage
	}
	defer file.Close()

	item, err := h.menuService.UploadImage(c.Request().Context(), slugID, header.Filename, header.Size, file)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, messages.MenuImageUploaded, item)
}

// ImportMenu godoc
// @Summary Import menu items from an xlsx workbook
// @Description Columns: name, description, price, category name. The first row is a header.
// @Tags menu
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Workbook"
// @Success 201 {object} errors.Response{data=service.ImportResult}
// @Failure 400 {object} errors.Response
// @Router /menu/import [post]
func (h *MenuHandler) ImportMenu(c echo.Context) error {
	header, err := c.FormFile("file")
	if err != nil {
		return apperrors.ErrInvalidWorkbook
	}
	file, err := header.Open()
	if err != nil {
		return apperrors.ErrInvalidWorkbook
	}
	defer file.Close()

	result, err := h.menuService.Import(c.Request().Context(), file)
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, messages.MenuImported, result)
}
