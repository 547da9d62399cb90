package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"podhub/internal/auth"
	apperrors "podhub/internal/errors"
	"podhub/internal/model"
	"podhub/internal/repository"
)

const bcryptCost = 10

// AuthService handles registration, login and account maintenance.
type AuthService interface {
	Register(ctx context.Context, firstName, lastName, username, email, password string) (*model.User, error)
	Login(ctx context.Context, username, password string) (token string, user *model.User, err error)
	GetAccount(ctx context.Context, userID string) (*model.User, error)
	UpdateAccount(ctx context.Context, userID, firstName, lastName, username, email string) (*model.User, error)
	ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error
	DeactivateAccount(ctx context.Context, userID string) error
}

type authService struct {
	userRepo   repository.UserRepository
	jwtService *auth.JWTService
	cache      Cache
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository, jwtService *auth.JWTService, cache Cache) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
		cache:      cache,
	}
}

// Register creates a new user with a hashed password. Uniqueness of
// username and email is decided by the insert itself: the unique
// indexes reject the row under a concurrent duplicate registration, so
// there is no check-then-insert window.
func (s *authService) Register(ctx context.Context, firstName, lastName, username, email, password string) (*model.User, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		FirstName:    firstName,
		LastName:     lastName,
		Username:     username,
		Email:        email,
		PasswordHash: string(hashedPassword),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrConflict
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

// Login authenticates a user and returns a session token. A missing
// user and a wrong password are distinct outcomes; a deactivated
// account behaves as if it did not exist.
func (s *authService) Login(ctx context.Context, username, password string) (string, *model.User, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, apperrors.ErrUserNotFound
		}
		return "", nil, fmt.Errorf("find user: %w", err)
	}
	if user.Deactivated {
		return "", nil, apperrors.ErrUserNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, apperrors.ErrInvalidPassword
	}

	token, err := s.jwtService.IssueSessionToken(user.ID)
	if err != nil {
		return "", nil, fmt.Errorf("issue session token: %w", err)
	}

	return token, user, nil
}

// GetAccount returns the authenticated user's own record.
func (s *authService) GetAccount(ctx context.Context, userID string) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}

// UpdateAccount applies profile changes. The unique indexes arbitrate
// username/email collisions with other users; updating a row to its own
// current values never conflicts with itself.
func (s *authService) UpdateAccount(ctx context.Context, userID, firstName, lastName, username, email string) (*model.User, error) {
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	err := s.userRepo.UpdateProfile(ctx, userID, map[string]interface{}{
		"first_name": firstName,
		"last_name":  lastName,
		"username":   username,
		"email":      email,
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrConflict
		}
		return nil, fmt.Errorf("update account: %w", err)
	}

	s.cache.Delete(ctx, profileCacheKey(userID))

	return s.userRepo.FindByID(ctx, userID)
}

// DeactivateAccount soft-deactivates the user. Login and profile reads
// treat the account as absent afterwards; existing session tokens run
// out on their own expiry.
func (s *authService) DeactivateAccount(ctx context.Context, userID string) error {
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("find user: %w", err)
	}

	err := s.userRepo.UpdateProfile(ctx, userID, map[string]interface{}{
		"deactivated": true,
	})
	if err != nil {
		return fmt.Errorf("deactivate account: %w", err)
	}

	s.cache.Delete(ctx, profileCacheKey(userID))
	return nil
}

// ChangePassword verifies the current password before accepting the new
// one. A mismatch is its own outcome, distinct from authentication
// failure.
func (s *authService) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)); err != nil {
		return apperrors.ErrCurrentPasswordInvalid
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	return s.userRepo.UpdatePasswordHash(ctx, userID, string(hashedPassword))
}
