package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"podhub/internal/model"
)

// ResetTokenRepository defines persistence for password reset tokens.
// Consume is a single conditional update so verification and marking
// used cannot be separated; paired with UpdateUserPassword inside
// WithTransaction it makes the whole reset atomic.
type ResetTokenRepository interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context, repo ResetTokenRepository) error) error

	Create(ctx context.Context, token *model.PasswordResetToken) error
	FindByToken(ctx context.Context, token string) (*model.PasswordResetToken, error)
	Consume(ctx context.Context, token string, now time.Time) (*model.PasswordResetToken, int64, error)
	UpdateUserPassword(ctx context.Context, userID, hash string) error
}

type resetTokenRepository struct {
	db *gorm.DB
}

// NewResetTokenRepository builds a GORM-backed repository.
func NewResetTokenRepository(db *gorm.DB) ResetTokenRepository {
	return &resetTokenRepository{db: db}
}

// WithTransaction executes fn against a transaction-scoped repository.
func (r *resetTokenRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, repo ResetTokenRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, &resetTokenRepository{db: tx})
	})
}

func (r *resetTokenRepository) Create(ctx context.Context, token *model.PasswordResetToken) error {
	return r.db.WithContext(ctx).Create(token).Error
}

func (r *resetTokenRepository) FindByToken(ctx context.Context, token string) (*model.PasswordResetToken, error) {
	var row model.PasswordResetToken
	if err := r.db.WithContext(ctx).Where("token = ?", token).First(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// Consume marks the token used if and only if it is still live. Zero
// rows affected means the token was unknown, already used or expired;
// the returned row (if any) lets the caller tell those apart.
func (r *resetTokenRepository) Consume(ctx context.Context, token string, now time.Time) (*model.PasswordResetToken, int64, error) {
	res := r.db.WithContext(ctx).Model(&model.PasswordResetToken{}).
		Where("token = ? AND used = ? AND expires_at > ?", token, false, now).
		Update("used", true)
	if res.Error != nil {
		return nil, 0, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, 0, nil
	}
	row, err := r.FindByToken(ctx, token)
	if err != nil {
		return nil, 0, err
	}
	return row, res.RowsAffected, nil
}

func (r *resetTokenRepository) UpdateUserPassword(ctx context.Context, userID, hash string) error {
	return r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", userID).
		Update("password_hash", hash).Error
}
