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

func TestPodcastService_UpdatePodcast_Ownership(t *testing.T) {
	tests := []struct {
		name          string
		userID        string
		setupMock     func(*MockPodcastRepository)
		expectedError error
	}{
		{
			name:   "owner can edit",
			userID: "owner-1",
			setupMock: func(m *MockPodcastRepository) {
				m.On("FindByID", mock.Anything, "pod-1").Return(&model.Podcast{ID: "pod-1", OwnerID: "owner-1"}, nil).Twice()
				m.On("UpdateDetails", mock.Anything, "pod-1", "New title", "New description").Return(nil)
			},
		},
		{
			name:   "non-owner is forbidden",
			userID: "intruder",
			setupMock: func(m *MockPodcastRepository) {
				m.On("FindByID", mock.Anything, "pod-1").Return(&model.Podcast{ID: "pod-1", OwnerID: "owner-1"}, nil)
			},
			expectedError: apperrors.ErrForbidden,
		},
		{
			name:   "missing podcast is not found, never forbidden",
			userID: "intruder",
			setupMock: func(m *MockPodcastRepository) {
				m.On("FindByID", mock.Anything, "pod-1").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockPodcastRepo := new(MockPodcastRepository)
			mockCommentRepo := new(MockCommentRepository)
			mockSocialRepo := new(MockSocialRepository)
			tt.setupMock(mockPodcastRepo)

			service := NewPodcastService(mockPodcastRepo, mockCommentRepo, mockSocialRepo, &stubCache{})
			podcast, err := service.UpdatePodcast(context.Background(), tt.userID, "pod-1", "New title", "New description")

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, podcast)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, podcast)
			}

			mockPodcastRepo.AssertExpectations(t)
		})
	}
}

func TestPodcastService_DeletePodcast_Ownership(t *testing.T) {
	mockPodcastRepo := new(MockPodcastRepository)
	mockCommentRepo := new(MockCommentRepository)
	mockSocialRepo := new(MockSocialRepository)

	mockPodcastRepo.On("FindByID", mock.Anything, "pod-1").Return(&model.Podcast{ID: "pod-1", OwnerID: "owner-1"}, nil)

	service := NewPodcastService(mockPodcastRepo, mockCommentRepo, mockSocialRepo, &stubCache{})
	err := service.DeletePodcast(context.Background(), "someone-else", "pod-1")
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	mockPodcastRepo.AssertExpectations(t)
}

func TestPodcastService_DeleteComment(t *testing.T) {
	tests := []struct {
		name          string
		userID        string
		setupMock     func(*MockCommentRepository)
		expectedError error
	}{
		{
			name:   "author can delete",
			userID: "author-1",
			setupMock: func(m *MockCommentRepository) {
				comment := &model.Comment{ID: "com-1", PodcastID: "pod-1", CommenterID: "author-1"}
				m.On("FindByID", mock.Anything, "com-1").Return(comment, nil)
				m.On("Delete", mock.Anything, comment).Return(nil)
			},
		},
		{
			name:   "podcast owner cannot delete someone else's comment",
			userID: "podcast-owner",
			setupMock: func(m *MockCommentRepository) {
				m.On("FindByID", mock.Anything, "com-1").Return(&model.Comment{
					ID: "com-1", PodcastID: "pod-1", CommenterID: "author-1",
				}, nil)
			},
			expectedError: apperrors.ErrForbidden,
		},
		{
			name:   "missing comment",
			userID: "author-1",
			setupMock: func(m *MockCommentRepository) {
				m.On("FindByID", mock.Anything, "com-1").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockPodcastRepo := new(MockPodcastRepository)
			mockCommentRepo := new(MockCommentRepository)
			mockSocialRepo := new(MockSocialRepository)
			tt.setupMock(mockCommentRepo)

			service := NewPodcastService(mockPodcastRepo, mockCommentRepo, mockSocialRepo, &stubCache{})
			err := service.DeleteComment(context.Background(), tt.userID, "com-1")

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}

			mockCommentRepo.AssertExpectations(t)
		})
	}
}

func TestPodcastService_MutationsInvalidateOwnerProfile(t *testing.T) {
	t.Run("create evicts the owner's profile", func(t *testing.T) {
		mockPodcastRepo := new(MockPodcastRepository)
		mockCommentRepo := new(MockCommentRepository)
		mockSocialRepo := new(MockSocialRepository)

		mockPodcastRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Podcast")).Return(nil)

		cache := &stubCache{}
		service := NewPodcastService(mockPodcastRepo, mockCommentRepo, mockSocialRepo, cache)

		_, err := service.CreatePodcast(context.Background(), "owner-1", "Title", "Description", "episode-1.mp3")
		assert.NoError(t, err)
		assert.Contains(t, cache.deleted, "profile:owner-1")
	})

	t.Run("delete evicts the podcast and the owner's profile", func(t *testing.T) {
		mockPodcastRepo := new(MockPodcastRepository)
		mockCommentRepo := new(MockCommentRepository)
		mockSocialRepo := new(MockSocialRepository)

		mockPodcastRepo.On("FindByID", mock.Anything, "pod-1").Return(&model.Podcast{ID: "pod-1", OwnerID: "owner-1"}, nil)
		mockPodcastRepo.On("Delete", mock.Anything, "pod-1").Return(nil)

		cache := &stubCache{}
		service := NewPodcastService(mockPodcastRepo, mockCommentRepo, mockSocialRepo, cache)

		err := service.DeletePodcast(context.Background(), "owner-1", "pod-1")
		assert.NoError(t, err)
		assert.Contains(t, cache.deleted, "podcast:pod-1")
		assert.Contains(t, cache.deleted, "profile:owner-1")
	})

	t.Run("comment evicts the podcast and the owner's profile", func(t *testing.T) {
		mockPodcastRepo := new(MockPodcastRepository)
		mockCommentRepo := new(MockCommentRepository)
		mockSocialRepo := new(MockSocialRepository)

		mockPodcastRepo.On("FindByID", mock.Anything, "pod-1").Return(&model.Podcast{ID: "pod-1", OwnerID: "owner-1"}, nil)
		mockCommentRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Comment")).Return(nil)

		cache := &stubCache{}
		service := NewPodcastService(mockPodcastRepo, mockCommentRepo, mockSocialRepo, cache)

		_, err := service.AddComment(context.Background(), "user-1", "pod-1", "Nice episode")
		assert.NoError(t, err)
		assert.Contains(t, cache.deleted, "podcast:pod-1")
		assert.Contains(t, cache.deleted, "profile:owner-1")
	})
}

func TestPodcastService_CreatePodcast_DuplicateAudioRef(t *testing.T) {
	mockPodcastRepo := new(MockPodcastRepository)
	mockCommentRepo := new(MockCommentRepository)
	mockSocialRepo := new(MockSocialRepository)

	mockPodcastRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Podcast")).Return(gorm.ErrDuplicatedKey)

	service := NewPodcastService(mockPodcastRepo, mockCommentRepo, mockSocialRepo, &stubCache{})
	podcast, err := service.CreatePodcast(context.Background(), "owner-1", "Title", "Description", "episode-1.mp3")
	assert.ErrorIs(t, err, apperrors.ErrConflict)
	assert.Nil(t, podcast)

	mockPodcastRepo.AssertExpectations(t)
}
