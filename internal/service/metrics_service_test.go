package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "restaurant/internal/errors"
	"restaurant/internal/model"
)

func TestMetricsService_Compute(t *testing.T) {
	ctx := context.Background()
	env := newOrderEnv(t)
	bills := NewBillService(env.repos.Bills, env.repos.Orders, DefaultDiscountRate)
	svc := NewMetricsService(env.repos)

	_, err := svc.Latest(ctx)
	assert.ErrorIs(t, err, apperrors.ErrMetricsNotFound)

	first := placeTestOrder(t, env, "m1@example.com", map[*model.MenuItem]int{env.item: 1})
	second := placeTestOrder(t, env, "m2@example.com", map[*model.MenuItem]int{env.item: 1})
	third := placeTestOrder(t, env, "m3@example.com", map[*model.MenuItem]int{env.item: 1})

	_, err = env.svc.UpdateStatus(ctx, first.ID, model.OrderStatusCompleted)
	require.NoError(t, err)
	_, err = env.svc.UpdateStatus(ctx, second.ID, model.OrderStatusCancelled)
	require.NoError(t, err)

	// two bills on the first order outrank the single bill on the third
	for _, in := range []GenerateBillInput{
		{OrderID: first.ID, PaymentMode: "cash"},
		{OrderID: first.ID, PaymentMode: "cash"},
		{OrderID: third.ID, PaymentMode: "card", Discount: true},
	} {
		_, err := bills.Generate(ctx, in)
		require.NoError(t, err)
	}

	feedback := &model.Feedback{UserID: first.UserID, OrderID: first.ID, Rating: 5, Likes: 4}
	require.NoError(t, env.repos.Feedback.Create(ctx, feedback))
	feedback = &model.Feedback{UserID: third.UserID, OrderID: third.ID, Rating: 3, Likes: 1}
	require.NoError(t, env.repos.Feedback.Create(ctx, feedback))

	metrics, err := svc.Compute(ctx)
	require.NoError(t, err)

	assert.EqualValues(t, 3, metrics.TotalOrders)
	assert.EqualValues(t, 1, metrics.CompletedOrders)
	assert.EqualValues(t, 1, metrics.CancelledOrders)
	require.NotNil(t, metrics.TopSellingOrderID)
	assert.Equal(t, first.ID, *metrics.TopSellingOrderID)
	assert.True(t, d("28.4").Equal(metrics.TopSellingRevenue), "top %s", metrics.TopSellingRevenue)
	// 14.20 * 2 + (14.20 - 1.42)
	assert.True(t, d("41.18").Equal(metrics.TotalRevenue), "revenue %s", metrics.TotalRevenue)
	assert.EqualValues(t, 5, metrics.TotalLikes)

	latest, err := svc.Latest(ctx)
	require.NoError(t, err)
	assert.Equal(t, metrics.ID, latest.ID)
}

func TestMetricsService_TopOrderTieBreak(t *testing.T) {
	ctx := context.Background()
	env := newOrderEnv(t)
	bills := NewBillService(env.repos.Bills, env.repos.Orders, DefaultDiscountRate)
	svc := NewMetricsService(env.repos)

	a := placeTestOrder(t, env, "t1@example.com", map[*model.MenuItem]int{env.item: 1})
	b := placeTestOrder(t, env, "t2@example.com", map[*model.MenuItem]int{env.item: 1})
	for _, order := range []*model.Order{a, b} {
		_, err := bills.Generate(ctx, GenerateBillInput{OrderID: order.ID, PaymentMode: "cash"})
		require.NoError(t, err)
	}

	metrics, err := svc.Compute(ctx)
	require.NoError(t, err)

	lowest := a.ID
	if b.ID.String() < a.ID.String() {
		lowest = b.ID
	}
	require.NotNil(t, metrics.TopSellingOrderID)
	assert.Equal(t, lowest, *metrics.TopSellingOrderID)
}

func TestMetricsService_EmptyStore(t *testing.T) {
	svc := NewMetricsService(newTestRepos(t))

	metrics, err := svc.Compute(context.Background())
	require.NoError(t, err)
	assert.Zero(t, metrics.TotalOrders)
	assert.Nil(t, metrics.TopSellingOrderID)
	assert.True(t, metrics.TotalRevenue.IsZero())
}

func TestMetricsService_LatestAfterBackToBackSnapshots(t *testing.T) {
	ctx := context.Background()
	env := newOrderEnv(t)
	svc := NewMetricsService(env.repos)

	var last *model.PerformanceMetrics
	for i := 0; i < 5; i++ {
		placeTestOrder(t, env, fmt.Sprintf("seq%d@example.com", i), map[*model.MenuItem]int{env.item: 1})
		metrics, err := svc.Compute(ctx)
		require.NoError(t, err)
		if last != nil {
			assert.Greater(t, metrics.Seq, last.Seq)
		}
		last = metrics

		latest, err := svc.Latest(ctx)
		require.NoError(t, err)
		assert.Equal(t, metrics.ID, latest.ID)
		assert.EqualValues(t, i+1, latest.TotalOrders)
	}
}
