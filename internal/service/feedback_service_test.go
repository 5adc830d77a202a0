package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "restaurant/internal/errors"
	"restaurant/internal/model"
)

func TestFeedbackService(t *testing.T) {
	ctx := context.Background()
	env := newOrderEnv(t)
	order := placeTestOrder(t, env, "fb@example.com", map[*model.MenuItem]int{env.item: 1})
	svc := NewFeedbackService(env.repos.Feedback, env.repos.Orders)

	tests := []struct {
		name    string
		in      FeedbackInput
		wantErr error
	}{
		{"rating too low", FeedbackInput{UserID: order.UserID, OrderID: order.ID, Rating: 0}, errInvalidRating},
		{"rating too high", FeedbackInput{UserID: order.UserID, OrderID: order.ID, Rating: 6}, errInvalidRating},
		{"unknown order", FeedbackInput{UserID: order.UserID, OrderID: uuid.New(), Rating: 4}, apperrors.ErrOrderNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tt.in)
			assert.Equal(t, tt.wantErr, err)
		})
	}

	feedback, err := svc.Create(ctx, FeedbackInput{UserID: order.UserID, OrderID: order.ID, Comment: "Great", Rating: 5})
	require.NoError(t, err)

	_, err = svc.Like(ctx, feedback.ID)
	require.NoError(t, err)
	liked, err := svc.Like(ctx, feedback.ID)
	require.NoError(t, err)
	disliked, err := svc.Dislike(ctx, feedback.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, liked.Likes)
	assert.Equal(t, 1, disliked.Dislikes)

	_, err = svc.Like(ctx, uuid.New())
	assert.Equal(t, apperrors.ErrFeedbackNotFound, err)

	rating := 3
	updated, err := svc.Update(ctx, feedback.ID, FeedbackUpdate{Rating: &rating})
	require.NoError(t, err)
	assert.Equal(t, 3, updated.Rating)
	assert.Equal(t, "Great", updated.Comment)

	require.NoError(t, svc.Delete(ctx, feedback.ID))
	_, err = svc.Get(ctx, feedback.ID)
	assert.Equal(t, apperrors.ErrFeedbackNotFound, err)
}
