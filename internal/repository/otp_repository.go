package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"restaurant/internal/model"
)

// OTPRepository defines one-time code persistence operations.
type OTPRepository interface {
	Create(ctx context.Context, otp *model.OTP) error
	FindLatest(ctx context.Context, userID, code string) (*model.OTP, error)
	MarkVerified(ctx context.Context, id uuid.UUID, at int64) error
}

type otpRepository struct {
	db *gorm.DB
}

// NewOTPRepository creates a new OTP repository.
func NewOTPRepository(db *gorm.DB) OTPRepository {
	return &otpRepository{db: db}
}

func (r *otpRepository) Create(ctx context.Context, otp *model.OTP) error {
	return r.db.WithContext(ctx).Create(otp).Error
}

// FindLatest returns the most recently issued code matching user and code.
func (r *otpRepository) FindLatest(ctx context.Context, userID, code string) (*model.OTP, error) {
	var otp model.OTP
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND code = ?", userID, code).
		Order("created_at DESC, expires_at DESC").
		First(&otp).Error
	if err != nil {
		return nil, err
	}
	return &otp, nil
}

func (r *otpRepository) MarkVerified(ctx context.Context, id uuid.UUID, at int64) error {
	return r.db.WithContext(ctx).Model(&model.OTP{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"verified":    true,
			"verified_at": at,
		}).Error
}
