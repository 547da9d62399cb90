package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	apperrors "podhub/internal/errors"
	"podhub/internal/model"
	"podhub/internal/repository"
)

const profileCacheTTL = 5 * time.Minute

// Profile entries are keyed by user id, not username: every mutation
// that touches a profile (podcasts, comments, likes, follows) knows the
// owner's id and can invalidate without a username lookup.
func profileCacheKey(userID string) string {
	return "profile:" + userID
}

// Dashboard is the authenticated user's landing payload.
type Dashboard struct {
	Username string          `json:"username"`
	Podcasts []model.Podcast `json:"podcasts"`
}

// Profile is a user's public page: identity fields, counters and their
// podcasts. The viewer-specific following flag sits alongside.
type Profile struct {
	Username       string          `json:"username"`
	FirstName      string          `json:"first_name"`
	LastName       string          `json:"last_name"`
	ProfileImage   string          `json:"profile_image"`
	FollowersCount int64           `json:"followers_count"`
	FollowingCount int64           `json:"following_count"`
	Podcasts       []model.Podcast `json:"podcasts"`
	Following      bool            `json:"following"`
}

// UserService exposes user-facing read operations.
type UserService interface {
	GetDashboard(ctx context.Context, userID string) (*Dashboard, error)
	GetProfile(ctx context.Context, username, viewerID string) (*Profile, error)
}

type userService struct {
	userRepo    repository.UserRepository
	podcastRepo repository.PodcastRepository
	socialRepo  repository.SocialRepository
	cache       Cache
}

// NewUserService builds a UserService with repositories and cache.
func NewUserService(userRepo repository.UserRepository, podcastRepo repository.PodcastRepository, socialRepo repository.SocialRepository, cache Cache) UserService {
	return &userService{
		userRepo:    userRepo,
		podcastRepo: podcastRepo,
		socialRepo:  socialRepo,
		cache:       cache,
	}
}

func (s *userService) GetDashboard(ctx context.Context, userID string) (*Dashboard, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	podcasts, err := s.podcastRepo.ListByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list podcasts: %w", err)
	}

	return &Dashboard{Username: user.Username, Podcasts: podcasts}, nil
}

// GetProfile returns a user's public page. The shared portion is
// cache-aside under the user id; the viewer's following flag is read
// fresh so a follow is visible on the very next profile load.
func (s *userService) GetProfile(ctx context.Context, username, viewerID string) (*Profile, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user.Deactivated {
		return nil, apperrors.ErrUserNotFound
	}

	var profile Profile
	if !s.cache.GetJSON(ctx, profileCacheKey(user.ID), &profile) {
		podcasts, err := s.podcastRepo.ListByOwner(ctx, user.ID)
		if err != nil {
			return nil, fmt.Errorf("list podcasts: %w", err)
		}

		profile = Profile{
			Username:       user.Username,
			FirstName:      user.FirstName,
			LastName:       user.LastName,
			ProfileImage:   user.ProfileImage,
			FollowersCount: user.FollowersCount,
			FollowingCount: user.FollowingCount,
			Podcasts:       podcasts,
		}
		s.cache.SetJSON(ctx, profileCacheKey(user.ID), profile, profileCacheTTL)
	}

	if viewerID != "" {
		following, err := s.socialRepo.IsFollowing(ctx, viewerID, user.ID)
		if err != nil {
			return nil, fmt.Errorf("check following: %w", err)
		}
		profile.Following = following
	}

	return &profile, nil
}
