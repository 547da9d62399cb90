package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "podhub/internal/errors"
	"podhub/internal/model"
)

func TestUserService_GetDashboard(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockPodcastRepo := new(MockPodcastRepository)
	mockSocialRepo := new(MockSocialRepository)

	mockUserRepo.On("FindByID", mock.Anything, "user-1").Return(&model.User{ID: "user-1", Username: "alice"}, nil)
	mockPodcastRepo.On("ListByOwner", mock.Anything, "user-1").Return([]model.Podcast{
		{ID: "pod-1", OwnerID: "user-1", Title: "Episode one"},
	}, nil)

	service := NewUserService(mockUserRepo, mockPodcastRepo, mockSocialRepo, &stubCache{})
	dashboard, err := service.GetDashboard(context.Background(), "user-1")
	assert.NoError(t, err)
	assert.Equal(t, "alice", dashboard.Username)
	assert.Len(t, dashboard.Podcasts, 1)

	mockUserRepo.AssertExpectations(t)
	mockPodcastRepo.AssertExpectations(t)
}

func TestUserService_GetProfile(t *testing.T) {
	t.Run("unknown username", func(t *testing.T) {
		mockUserRepo := new(MockUserRepository)
		mockPodcastRepo := new(MockPodcastRepository)
		mockSocialRepo := new(MockSocialRepository)

		mockUserRepo.On("FindByUsername", mock.Anything, "ghost").Return(nil, gorm.ErrRecordNotFound)

		service := NewUserService(mockUserRepo, mockPodcastRepo, mockSocialRepo, &stubCache{})
		profile, err := service.GetProfile(context.Background(), "ghost", "viewer-1")
		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
		assert.Nil(t, profile)
	})

	t.Run("deactivated user is hidden", func(t *testing.T) {
		mockUserRepo := new(MockUserRepository)
		mockPodcastRepo := new(MockPodcastRepository)
		mockSocialRepo := new(MockSocialRepository)

		mockUserRepo.On("FindByUsername", mock.Anything, "bob").Return(&model.User{
			ID: "user-2", Username: "bob", Deactivated: true,
		}, nil)

		service := NewUserService(mockUserRepo, mockPodcastRepo, mockSocialRepo, &stubCache{})
		profile, err := service.GetProfile(context.Background(), "bob", "viewer-1")
		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
		assert.Nil(t, profile)
	})

	t.Run("viewer following flag", func(t *testing.T) {
		mockUserRepo := new(MockUserRepository)
		mockPodcastRepo := new(MockPodcastRepository)
		mockSocialRepo := new(MockSocialRepository)

		mockUserRepo.On("FindByUsername", mock.Anything, "bob").Return(&model.User{
			ID:             "user-2",
			Username:       "bob",
			FollowersCount: 3,
		}, nil)
		mockPodcastRepo.On("ListByOwner", mock.Anything, "user-2").Return([]model.Podcast{}, nil)
		mockSocialRepo.On("IsFollowing", mock.Anything, "viewer-1", "user-2").Return(true, nil)

		service := NewUserService(mockUserRepo, mockPodcastRepo, mockSocialRepo, &stubCache{})
		profile, err := service.GetProfile(context.Background(), "bob", "viewer-1")
		assert.NoError(t, err)
		assert.Equal(t, "bob", profile.Username)
		assert.Equal(t, int64(3), profile.FollowersCount)
		assert.True(t, profile.Following)

		mockSocialRepo.AssertExpectations(t)
	})
}
