package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"restaurant/internal/messages"
	"restaurant/internal/service"
)

// CategoryHandler handles menu category endpoints.
type CategoryHandler struct {
	categoryService service.CategoryService
}

// NewCategoryHandler creates a new category handler.
func NewCategoryHandler(categoryService service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// CategoryRequest creates a category.
type CategoryRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Description string `json:"description" validate:"required,description"`
}

// UpdateCategoryRequest replaces a category's name and description.
type UpdateCategoryRequest struct {
	SlugID      string `json:"slugId" validate:"required,uuid"`
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Description string `json:"description" validate:"required,description"`
}

// CreateCategory godoc
// @Summary Create a category
// @Tags category
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CategoryRequest true "Category"
// @Success 201 {object} errors.Response{data=model.Category}
// @Failure 400 {object} errors.Response
// @Router /category [post]
func (h *CategoryHandler) CreateCategory(c echo.Context) error {
	var req CategoryRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	category, err := h.categoryService.Create(c.Request().Context(), service.CategoryInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, messages.CategoryCreated, category)
}

// ListCategories godoc
// @Summary List categories
// @Tags category
// @Produce json
// @Success 200 {object} errors.Response{data=[]model.Category}
// @Router /category [get]
func (h *CategoryHandler) ListCategories(c echo.Context) error {
	categories, err := h.categoryService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, messages.CategoriesFetched, categories)
}

// GetCategory godoc
// @Summary Get a category by numeric id
// @Tags category
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} errors.Response{data=model.Category}
// @Failure 404 {object} errors.Response
// @Router /category/{id} [get]
func (h *CategoryHandler) GetCategory(c echo.Context) error {
	id, err := uintParam(c, "id")
	if err != nil {
		return err
	}
	category, err := h.categoryService.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, messages.CategoryRetrieved, category)
}

// GetCategoryBySlug godoc
// @Summary Get a category by slug id
// @Tags category
// @Produce json
// @Param slugId path string true "Category slug ID"
// @Success 200 {object} errors.Response{data=model.Category}
// @Failure 404 {object} errors.Response
// @Router /category/slugId/{slugId} [get]
func (h *CategoryHandler) GetCategoryBySlug(c echo.Context) error {
	category, err := h.categoryService.GetBySlugID(c.Request().Context(), c.Param("slugId"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, messages.CategoryRetrieved, category)
}

// UpdateCategory godoc
// @Summary Update a category
// @Tags category
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UpdateCategoryRequest true "Category"
// @Success 200 {object} errors.Response{data=model.Category}
// @Failure 400 {object} errors.Response
// @Failure 404 {object} errors.Response
// @Router /category [put]
func (h *CategoryHandler) UpdateCategory(c echo.Context) error {
	var req UpdateCategoryRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	category, err := h.categoryService.Update(c.Request().Context(), req.SlugID, service.CategoryInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, messages.CategoryUpdated, category)
}

// DeleteCategory godoc
// @Summary Delete a category
// @Tags category
// @Produce json
// @Security BearerAuth
// @Param id path int true "Category ID"
// @Success 200 {object} errors.Response
// @Failure 404 {object} errors.Response
// @Router /category/{id} [delete]
func (h *CategoryHandler) DeleteCategory(c echo.Context) error {
	id, err := uintParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.categoryService.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return respond(c, http.StatusOK, messages.CategoryDeleted, nil)
}
