package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"podhub/internal/model"
	"podhub/internal/repository"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) UpdateProfile(ctx context.Context, id string, fields map[string]interface{}) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

func (m *MockUserRepository) UpdatePasswordHash(ctx context.Context, id, hash string) error {
	args := m.Called(ctx, id, hash)
	return args.Error(0)
}

// MockPodcastRepository is a mock implementation of PodcastRepository.
type MockPodcastRepository struct {
	mock.Mock
}

func (m *MockPodcastRepository) Create(ctx context.Context, podcast *model.Podcast) error {
	args := m.Called(ctx, podcast)
	return args.Error(0)
}

func (m *MockPodcastRepository) FindByID(ctx context.Context, id string) (*model.Podcast, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Podcast), args.Error(1)
}

func (m *MockPodcastRepository) List(ctx context.Context) ([]model.Podcast, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Podcast), args.Error(1)
}

func (m *MockPodcastRepository) ListByOwner(ctx context.Context, ownerID string) ([]model.Podcast, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Podcast), args.Error(1)
}

func (m *MockPodcastRepository) UpdateDetails(ctx context.Context, id, title, description string) error {
	args := m.Called(ctx, id, title, description)
	return args.Error(0)
}

func (m *MockPodcastRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockCommentRepository is a mock implementation of CommentRepository.
type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *model.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockCommentRepository) FindByID(ctx context.Context, id string) (*model.Comment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Comment), args.Error(1)
}

func (m *MockCommentRepository) ListByPodcast(ctx context.Context, podcastID string) ([]model.Comment, error) {
	args := m.Called(ctx, podcastID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Comment), args.Error(1)
}

func (m *MockCommentRepository) Delete(ctx context.Context, comment *model.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

// MockSocialRepository is a mock implementation of SocialRepository.
// WithTransaction runs the closure against the mock itself so the
// transition logic under test executes against the same expectations.
type MockSocialRepository struct {
	mock.Mock
}

func (m *MockSocialRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, repo repository.SocialRepository) error) error {
	return fn(ctx, m)
}

func (m *MockSocialRepository) InsertLike(ctx context.Context, like *model.Like) error {
	args := m.Called(ctx, like)
	return args.Error(0)
}

func (m *MockSocialRepository) DeleteLike(ctx context.Context, podcastID, likerID string) (int64, error) {
	args := m.Called(ctx, podcastID, likerID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSocialRepository) HasLiked(ctx context.Context, podcastID, likerID string) (bool, error) {
	args := m.Called(ctx, podcastID, likerID)
	return args.Bool(0), args.Error(1)
}

func (m *MockSocialRepository) AdjustLikesCount(ctx context.Context, podcastID string, delta int) error {
	args := m.Called(ctx, podcastID, delta)
	return args.Error(0)
}

func (m *MockSocialRepository) InsertFollow(ctx context.Context, follow *model.Follow) error {
	args := m.Called(ctx, follow)
	return args.Error(0)
}

func (m *MockSocialRepository) DeleteFollow(ctx context.Context, followerID, followeeID string) (int64, error) {
	args := m.Called(ctx, followerID, followeeID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSocialRepository) IsFollowing(ctx context.Context, followerID, followeeID string) (bool, error) {
	args := m.Called(ctx, followerID, followeeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockSocialRepository) AdjustFollowCounts(ctx context.Context, followerID, followeeID string, delta int) error {
	args := m.Called(ctx, followerID, followeeID, delta)
	return args.Error(0)
}

// MockResetTokenRepository is a mock implementation of ResetTokenRepository.
type MockResetTokenRepository struct {
	mock.Mock
}

func (m *MockResetTokenRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, repo repository.ResetTokenRepository) error) error {
	return fn(ctx, m)
}

func (m *MockResetTokenRepository) Create(ctx context.Context, token *model.PasswordResetToken) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockResetTokenRepository) FindByToken(ctx context.Context, token string) (*model.PasswordResetToken, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PasswordResetToken), args.Error(1)
}

func (m *MockResetTokenRepository) Consume(ctx context.Context, token string, now time.Time) (*model.PasswordResetToken, int64, error) {
	args := m.Called(ctx, token, now)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).(*model.PasswordResetToken), args.Get(1).(int64), args.Error(2)
}

func (m *MockResetTokenRepository) UpdateUserPassword(ctx context.Context, userID, hash string) error {
	args := m.Called(ctx, userID, hash)
	return args.Error(0)
}

// stubCache is an in-memory Cache that always misses and records the
// keys passed to Delete, so tests can assert the invalidation set a
// mutation produces.
type stubCache struct {
	deleted []string
}

func (s *stubCache) GetJSON(ctx context.Context, key string, dest interface{}) bool {
	return false
}

func (s *stubCache) SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) {
}

func (s *stubCache) Delete(ctx context.Context, keys ...string) {
	s.deleted = append(s.deleted, keys...)
}

// MockMailer is a mock implementation of mail.Mailer.
type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) SendPasswordReset(to, resetURL string) error {
	args := m.Called(to, resetURL)
	return args.Error(0)
}
