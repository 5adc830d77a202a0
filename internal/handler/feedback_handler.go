package handler

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	apperrors "restaurant/internal/errors"
	"restaurant/internal/messages"
	"restaurant/internal/middleware"
	"restaurant/internal/model"
	"restaurant/internal/service"
)

// FeedbackHandler handles order feedback endpoints.
type FeedbackHandler struct {
	feedbackService service.FeedbackService
}

// NewFeedbackHandler creates a new feedback handler.
func NewFeedbackHandler(feedbackService service.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{feedbackService: feedbackService}
}

// FeedbackRequest rates an order. The caller is the author when userId is omitted.
type FeedbackRequest struct {
	UserID  string `json:"userId" validate:"omitempty,uuid"`
	OrderID string `json:"orderId" validate:"required,uuid"`
	Comment string `json:"comment" validate:"max=1000"`
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
}

// UpdateFeedbackRequest changes a feedback. Omitted fields are left unchanged.
type UpdateFeedbackRequest struct {
	Comment *string `json:"comment" validate:"omitempty,max=1000"`
	Rating  *int    `json:"rating" validate:"omitempty,min=1,max=5"`
}

// CreateFeedback godoc
// @Summary Leave feedback on an order
// @Tags feedback
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body FeedbackRequest true "Feedback"
// @Success 201 {object} errors.Response{data=model.Feedback}
// @Failure 400 {object} errors.Response
// @Failure 404 {object} errors.Response
// @Router /feedback [post]
func (h *FeedbackHandler) CreateFeedback(c echo.Context) error {
	var req FeedbackRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	orderID, err := uuid.Parse(req.OrderID)
	if err != nil {
		return apperrors.ErrInvalidID
	}
	userID := req.UserID
	if userID == "" {
		userID = middleware.IdentityFrom(c).UserID
	}

	feedback, err := h.feedbackService.Create(c.Request().Context(), service.FeedbackInput{
		UserID:  userID,
		OrderID: orderID,
		Comment: req.Comment,
		Rating:  req.Rating,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, messages.FeedbackCreated, feedback)
}

// ListFeedback godoc
// @Summary List feedback
// @Tags feedback
// @Produce json
// @Security BearerAuth
// @Success 200 {object} errors.Response{data=[]model.Feedback}
// @Router /feedback [get]
func (h *FeedbackHandler) ListFeedback(c echo.Context) error {
	feedback, err := h.feedbackService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, messages.FeedbacksFetched, feedback)
}

// GetFeedback godoc
// @Summary Get a feedback
// @Tags feedback
// @Produce json
// @Security BearerAuth
// @Param feedbackId path string true "Feedback ID"
// @Success 200 {object} errors.Response{data=model.Feedback}
// @Failure 404 {object} errors.Response
// @Router /feedback/{feedbackId} [get]
func (h *FeedbackHandler) GetFeedback(c echo.Context) error {
	id, err := uuidParam(c, "feedbackId")
	if err != nil {
		return err
	}
	feedback, err := h.feedbackService.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, messages.FeedbackFetched, feedback)
}

// UpdateFeedback godoc
// @Summary Update a feedback
// @Tags feedback
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param feedbackId path string true "Feedback ID"
// @Param request body UpdateFeedbackRequest true "Feedback fields"
// @Success 200 {object} errors.Response{data=model.Feedback}
// @Failure 400 {object} errors.Response
// @Failure 404 {object} errors.Response
// @Router /feedback/{feedbackId} [put]
func (h *FeedbackHandler) UpdateFeedback(c echo.Context) error {
	id, err := uuidParam(c, "feedbackId")
	if err != nil {
		return err
	}
	var req UpdateFeedbackRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	feedback, err := h.feedbackService.Update(c.Request().Context(), id, service.FeedbackUpdate{
		Comment: req.Comment,
		Rating:  req.Rating,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, messages.FeedbackUpdated, feedback)
}

// DeleteFeedback godoc
// @Summary Delete a feedback
// @Tags feedback
// @Produce json
// @Security BearerAuth
// @Param feedbackId path string true "Feedback ID"
// @Success 200 {object} errors.Response
// @Failure 404 {object} errors.Response
// @Router /feedback/{feedbackId} [delete]
func (h *FeedbackHandler) DeleteFeedback(c echo.Context) error {
	id, err := uuidParam(c, "feedbackId")
	if err != nil {
		return err
	}
	if err := h.feedbackService.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return respond(c, http.StatusOK, messages.FeedbackDeleted, nil)
}

// LikeFeedback godoc
// @Summary Like a feedback
// @Tags feedback
// @Produce json
// @Security BearerAuth
// @Param feedbackId path string true "Feedback ID"
// @Success 200 {object} errors.Response{data=model.Feedback}
// @Failure 404 {object} errors.Response
// @Router /feedback/{feedbackId}/like [post]
func (h *FeedbackHandler) LikeFeedback(c echo.Context) error {
	return h.vote(c, h.feedbackService.Like)
}

// DislikeFeedback godoc
// @Summary Dislike a feedback
// @Tags feedback
// @Produce json
// @Security BearerAuth
// @Param feedbackId path string true "Feedback ID"
// @Success 200 {object} errors.Response{data=model.Feedback}
// @Failure 404 {object} errors.Response
// @Router /feedback/{feedbackId}/dislike [post]
func (h *FeedbackHandler) DislikeFeedback(c echo.Context) error {
	return h.vote(c, h.feedbackService.Dislike)
}

func (h *FeedbackHandler) vote(c echo.Context, fn func(ctx context.Context, id uuid.UUID) (*model.Feedback, error)) error {
	id, err := uuidParam(c, "feedbackId")
	if err != nil {
		return err
	}
	feedback, err := fn(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, messages.FeedbackUpdated, feedback)
}
