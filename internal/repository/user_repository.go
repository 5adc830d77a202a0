package repository

import (
	"context"

	"gorm.io/gorm"

	"restaurant/internal/model"
)

// UserRepository defines persistence operations.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	Update(ctx context.Context, user *model.User) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*model.User, error)
	FindBySlugID(ctx context.Context, slugID string) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindBySlugIDs(ctx context.Context, slugIDs []string) ([]model.User, error)
	List(ctx context.Context) ([]model.User, error)
	SetResetToken(ctx context.Context, id uint, tokenHash string, expiresAt int64) error
	FindByResetToken(ctx context.Context, tokenHash string, now int64) (*model.User, error)
	ConsumeResetToken(ctx context.Context, id uint, tokenHash string, passwordHash string) (bool, error)
	MarkVerified(ctx context.Context, slugID string, at int64) error
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository builds a GORM-backed repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) Update(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *userRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.User{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *userRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindBySlugID(ctx context.Context, slugID string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("slug_id = ?", slugID).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindBySlugIDs(ctx context.Context, slugIDs []string) ([]model.User, error) {
	var users []model.User
	if len(slugIDs) == 0 {
		return users, nil
	}
	if err := r.db.WithContext(ctx).Where("slug_id IN ?", slugIDs).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) List(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := r.db.WithContext(ctx).Order("id").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) SetResetToken(ctx context.Context, id uint, tokenHash string, expiresAt int64) error {
	return r.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"reset_token_hash":   tokenHash,
			"reset_token_expiry": expiresAt,
		}).Error
}

func (r *userRepository) FindByResetToken(ctx context.Context, tokenHash string, now int64) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		Where("reset_token_hash = ? AND reset_token_expiry > ?", tokenHash, now).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ConsumeResetToken swaps the password and clears the token in one statement.
// It reports false when the token was already used or replaced.
func (r *userRepository) ConsumeResetToken(ctx context.Context, id uint, tokenHash string, passwordHash string) (bool, error) {
	res := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ? AND reset_token_hash = ?", id, tokenHash).
		Updates(map[string]interface{}{
			"password_hash":      passwordHash,
			"reset_token_hash":   nil,
			"reset_token_expiry": nil,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *userRepository) MarkVerified(ctx context.Context, slugID string, at int64) error {
	return r.db.WithContext(ctx).Model(&model.User{}).Where("slug_id = ?", slugID).
		Updates(map[string]interface{}{
			"is_verified": true,
			"verified_at": at,
		}).Error
}
