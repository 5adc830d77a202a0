package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"restaurant/internal/model"
)

// FeedbackRepository defines feedback persistence operations.
type FeedbackRepository interface {
	Create(ctx context.Context, feedback *model.Feedback) error
	Update(ctx context.Context, feedback *model.Feedback) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Feedback, error)
	List(ctx context.Context) ([]model.Feedback, error)
	Increment(ctx context.Context, id uuid.UUID, column string) error
	SumLikes(ctx context.Context) (int64, error)
}

type feedbackRepository struct {
	db *gorm.DB
}

// NewFeedbackRepository creates a new feedback repository.
func NewFeedbackRepository(db *gorm.DB) FeedbackRepository {
	return &feedbackRepository{db: db}
}

func (r *feedbackRepository) Create(ctx context.Context, feedback *model.Feedback) error {
	return r.db.WithContext(ctx).Create(feedback).Error
}

func (r *feedbackRepository) Update(ctx context.Context, feedback *model.Feedback) error {
	return r.db.WithContext(ctx).Save(feedback).Error
}

func (r *feedbackRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Feedback{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *feedbackRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Feedback, error) {
	var feedback model.Feedback
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&feedback).Error; err != nil {
		return nil, err
	}
	return &feedback, nil
}

func (r *feedbackRepository) List(ctx context.Context) ([]model.Feedback, error) {
	var feedback []model.Feedback
	if err := r.db.WithContext(ctx).Order("created_at DESC, id ASC").Find(&feedback).Error; err != nil {
		return nil, err
	}
	return feedback, nil
}

// Increment atomically bumps the likes or dislikes counter.
func (r *feedbackRepository) Increment(ctx context.Context, id uuid.UUID, column string) error {
	if column != "likes" && column != "dislikes" {
		return gorm.ErrInvalidField
	}
	res := r.db.WithContext(ctx).Model(&model.Feedback{}).Where("id = ?", id).
		UpdateColumn(column, gorm.Expr(column+" + ?", 1))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *feedbackRepository) SumLikes(ctx context.Context) (int64, error) {
	var result struct {
		Total int64
	}
	err := r.db.WithContext(ctx).Model(&model.Feedback{}).
		Select("COALESCE(SUM(likes), 0) AS total").
		Scan(&result).Error
	if err != nil {
		return 0, err
	}
	return result.Total, nil
}
