package service

import (
	"context"
	"fmt"
	"time"

	"github.com/labstack/gommon/log"
	"github.com/shopspring/decimal"

	apperrors "restaurant/internal/errors"
	"restaurant/internal/model"
	"restaurant/internal/repository"
)

// MetricsService aggregates orders, bills and feedback into performance snapshots.
type MetricsService interface {
	Compute(ctx context.Context) (*model.PerformanceMetrics, error)
	Latest(ctx context.Context) (*model.PerformanceMetrics, error)
	Run(ctx context.Context, interval time.Duration)
}

type metricsService struct {
	repos *repository.Repositories
}

// NewMetricsService creates a new metrics service.
func NewMetricsService(repos *repository.Repositories) MetricsService {
	return &metricsService{repos: repos}
}

// Compute appends a new snapshot. Earlier snapshots are never modified.
func (s *metricsService) Compute(ctx context.Context) (*model.PerformanceMetrics, error) {
	total, err := s.repos.Orders.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count orders: %w", err)
	}
	completed, err := s.repos.Orders.CountByStatus(ctx, model.OrderStatusCompleted)
	if err != nil {
		return nil, fmt.Errorf("count completed orders: %w", err)
	}
	cancelled, err := s.repos.Orders.CountByStatus(ctx, model.OrderStatusCancelled)
	if err != nil {
		return nil, fmt.Errorf("count cancelled orders: %w", err)
	}
	top, err := s.repos.Bills.TopOrderByRevenue(ctx)
	if err != nil {
		return nil, fmt.Errorf("top order: %w", err)
	}
	revenue, err := s.repos.Bills.TotalRevenue(ctx)
	if err != nil {
		return nil, fmt.Errorf("total revenue: %w", err)
	}
	likes, err := s.repos.Feedback.SumLikes(ctx)
	if err != nil {
		return nil, fmt.Errorf("sum likes: %w", err)
	}

	metrics := &model.PerformanceMetrics{
		TotalOrders:       total,
		CompletedOrders:   completed,
		CancelledOrders:   cancelled,
		TopSellingRevenue: decimal.Zero,
		TotalRevenue:      revenue.Round(2),
		TotalLikes:        likes,
	}
	if top != nil {
		id := top.OrderID
		metrics.TopSellingOrderID = &id
		metrics.TopSellingRevenue = top.Revenue
	}

	if err := s.repos.Metrics.Create(ctx, metrics); err != nil {
		return nil, fmt.Errorf("create metrics: %w", err)
	}
	return metrics, nil
}

// Latest returns the most recent snapshot.
func (s *metricsService) Latest(ctx context.Context) (*model.PerformanceMetrics, error) {
	metrics, err := s.repos.Metrics.Latest(ctx)
	if err != nil {
		return nil, notFound(err, apperrors.ErrMetricsNotFound)
	}
	return metrics, nil
}

// Run takes a snapshot every interval until ctx is cancelled. A non-positive interval disables it.
func (s *metricsService) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if _, err := s.Compute(ctx); err != nil {
				log.Errorf("metrics snapshot: %v", err)
			}
		case <-ctx.Done():
			return
		}
	}
}
