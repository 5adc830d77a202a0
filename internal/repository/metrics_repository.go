package repository

import (
	"context"
	"sync/atomic"
	"time"

	"gorm.io/gorm"

	"restaurant/internal/model"
)

// MetricsRepository stores performance snapshots. Snapshots are append-only.
type MetricsRepository interface {
	Create(ctx context.Context, metrics *model.PerformanceMetrics) error
	Latest(ctx context.Context) (*model.PerformanceMetrics, error)
}

type metricsRepository struct {
	db *gorm.DB
}

// NewMetricsRepository creates a new metrics repository.
func NewMetricsRepository(db *gorm.DB) MetricsRepository {
	return &metricsRepository{db: db}
}

// lastSeq keeps snapshot sequence numbers strictly increasing within the process.
var lastSeq atomic.Int64

func nextSeq(now int64) int64 {
	for {
		last := lastSeq.Load()
		next := now
		if next <= last {
			next = last + 1
		}
		if lastSeq.CompareAndSwap(last, next) {
			return next
		}
	}
}

func (r *metricsRepository) Create(ctx context.Context, metrics *model.PerformanceMetrics) error {
	metrics.Seq = nextSeq(time.Now().UnixNano())
	return r.db.WithContext(ctx).Create(metrics).Error
}

func (r *metricsRepository) Latest(ctx context.Context) (*model.PerformanceMetrics, error) {
	var metrics model.PerformanceMetrics
	if err := r.db.WithContext(ctx).Order("seq DESC").Order("id DESC").First(&metrics).Error; err != nil {
		return nil, err
	}
	return &metrics, nil
}
