package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	apperrors "podhub/internal/errors"
	"podhub/internal/mail"
	"podhub/internal/model"
	"podhub/internal/repository"
)

// ResetTokenExpiry is the lifetime of a password reset token.
const ResetTokenExpiry = 1 * time.Hour

// PasswordResetService orchestrates the forgot/reset password flow.
type PasswordResetService interface {
	RequestReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
}

type passwordResetService struct {
	userRepo  repository.UserRepository
	tokenRepo repository.ResetTokenRepository
	mailer    mail.Mailer
	baseURL   string
	now       func() time.Time
}

// NewPasswordResetService creates a new password reset service. baseURL
// is the frontend origin the reset link points at.
func NewPasswordResetService(userRepo repository.UserRepository, tokenRepo repository.ResetTokenRepository, mailer mail.Mailer, baseURL string) PasswordResetService {
	return &passwordResetService{
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
		mailer:    mailer,
		baseURL:   baseURL,
		now:       time.Now,
	}
}

// RequestReset issues a single-use token for the account behind the
// email and mails the reset link. Delivery is best effort; a mail
// failure does not invalidate the token that was issued.
func (s *passwordResetService) RequestReset(ctx context.Context, email string) error {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("find user: %w", err)
	}
	if user.Deactivated {
		return apperrors.ErrUserNotFound
	}

	now := s.now()
	token := &model.PasswordResetToken{
		Token:     uuid.New().String(),
		UserID:    user.ID,
		IssuedAt:  now,
		ExpiresAt: now.Add(ResetTokenExpiry),
	}
	if err := s.tokenRepo.Create(ctx, token); err != nil {
		return fmt.Errorf("create reset token: %w", err)
	}

	resetURL := fmt.Sprintf("%s/reset-password/%s", s.baseURL, token.Token)
	if err := s.mailer.SendPasswordReset(user.Email, resetURL); err != nil {
		log.Printf("password reset mail to %s failed: %v", user.Email, err)
	}

	return nil
}

// ResetPassword consumes the token and updates the password in one
// transaction. The conditional consume and the hash update commit or
// roll back together, so a token can never be replayed between
// verification and use.
func (s *passwordResetService) ResetPassword(ctx context.Context, token, newPassword string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	return s.tokenRepo.WithTransaction(ctx, func(ctx context.Context, repo repository.ResetTokenRepository) error {
		row, consumed, err := repo.Consume(ctx, token, s.now())
		if err != nil {
			return fmt.Errorf("consume reset token: %w", err)
		}
		if consumed == 0 {
			// Tell an expired token apart from an unknown or used one.
			stale, err := repo.FindByToken(ctx, token)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return apperrors.ErrTokenInvalid
				}
				return fmt.Errorf("find reset token: %w", err)
			}
			if stale.Used {
				return apperrors.ErrTokenInvalid
			}
			return apperrors.ErrTokenExpired
		}

		return repo.UpdateUserPassword(ctx, row.UserID, string(hashedPassword))
	})
}
