package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	apperrors "restaurant/internal/errors"
	"restaurant/internal/messages"
	"restaurant/internal/model"
	"restaurant/internal/repository"
)

// FeedbackInput carries a new rating on an order.
type FeedbackInput struct {
	UserID  string
	OrderID uuid.UUID
	Comment string
	Rating  int
}

// FeedbackUpdate carries the fields to change; nil fields are left as they are.
type FeedbackUpdate struct {
	Comment *string
	Rating  *int
}

// FeedbackService manages order feedback.
type FeedbackService interface {
	Create(ctx context.Context, in FeedbackInput) (*model.Feedback, error)
	List(ctx context.Context) ([]model.Feedback, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Feedback, error)
	Update(ctx context.Context, id uuid.UUID, in FeedbackUpdate) (*model.Feedback, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Like(ctx context.Context, id uuid.UUID) (*model.Feedback, error)
	Dislike(ctx context.Context, id uuid.UUID) (*model.Feedback, error)
}

type feedbackService struct {
	feedback repository.FeedbackRepository
	orders   repository.OrderRepository
}

// NewFeedbackService creates a new feedback service.
func NewFeedbackService(feedback repository.FeedbackRepository, orders repository.OrderRepository) FeedbackService {
	return &feedbackService{feedback: feedback, orders: orders}
}

var errInvalidRating = apperrors.Validation(messages.ValidationRating)

func validRating(rating int) bool {
	return rating >= 1 && rating <= 5
}

func (s *feedbackService) Create(ctx context.Context, in FeedbackInput) (*model.Feedback, error) {
	if !validRating(in.Rating) {
		return nil, errInvalidRating
	}
	if _, err := s.orders.FindByID(ctx, in.OrderID); err != nil {
		return nil, notFound(err, apperrors.ErrOrderNotFound)
	}

	feedback := &model.Feedback{
		UserID:  in.UserID,
		OrderID: in.OrderID,
		Comment: in.Comment,
		Rating:  in.Rating,
	}
	if err := s.feedback.Create(ctx, feedback); err != nil {
		return nil, fmt.Errorf("create feedback: %w", err)
	}
	return feedback, nil
}

func (s *feedbackService) List(ctx context.Context) ([]model.Feedback, error) {
	return s.feedback.List(ctx)
}

func (s *feedbackService) Get(ctx context.Context, id uuid.UUID) (*model.Feedback, error) {
	feedback, err := s.feedback.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, apperrors.ErrFeedbackNotFound)
	}
	return feedback, nil
}

func (s *feedbackService) Update(ctx context.Context, id uuid.UUID, in FeedbackUpdate) (*model.Feedback, error) {
	if in.Rating != nil && !validRating(*in.Rating) {
		return nil, errInvalidRating
	}
	feedback, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Comment != nil {
		feedback.Comment = *in.Comment
	}
	if in.Rating != nil {
		feedback.Rating = *in.Rating
	}
	if err := s.feedback.Update(ctx, feedback); err != nil {
		return nil, fmt.Errorf("update feedback: %w", err)
	}
	return feedback, nil
}

func (s *feedbackService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.feedback.Delete(ctx, id); err != nil {
		return notFound(err, apperrors.ErrFeedbackNotFound)
	}
	return nil
}

func (s *feedbackService) Like(ctx context.Context, id uuid.UUID) (*model.Feedback, error) {
	return s.bump(ctx, id, "likes")
}

func (s *feedbackService) Dislike(ctx context.Context, id uuid.UUID) (*model.Feedback, error) {
	return s.bump(ctx, id, "dislikes")
}

func (s *feedbackService) bump(ctx context.Context, id uuid.UUID, column string) (*model.Feedback, error) {
	if err := s.feedback.Increment(ctx, id, column); err != nil {
		return nil, notFound(err, apperrors.ErrFeedbackNotFound)
	}
	return s.Get(ctx, id)
}
