package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	apperrors "podhub/internal/errors"
	"podhub/internal/model"
	"podhub/internal/repository"
)

// Toggle actions accepted by the like and follow endpoints. The client
// sends an explicit action rather than a target state; a request whose
// action does not match the current state is an error, never a no-op.
const (
	ActionLike     = "like"
	ActionUnlike   = "unlike"
	ActionFollow   = "follow"
	ActionUnfollow = "unfollow"
)

// LikeResult is the outcome of a like toggle.
type LikeResult struct {
	Liked bool `json:"liked"`
}

// FollowResult is the outcome of a follow toggle.
type FollowResult struct {
	Following bool `json:"following"`
}

// SocialService drives the like and follow pair relations as guarded
// state transitions with consistent counters.
type SocialService interface {
	ToggleLike(ctx context.Context, userID, podcastID, action string) (*LikeResult, error)
	ToggleFollow(ctx context.Context, userID, targetUsername, action string) (*FollowResult, error)
}

type socialService struct {
	socialRepo  repository.SocialRepository
	podcastRepo repository.PodcastRepository
	userRepo    repository.UserRepository
	cache       Cache
}

// NewSocialService creates a new social service.
func NewSocialService(socialRepo repository.SocialRepository, podcastRepo repository.PodcastRepository, userRepo repository.UserRepository, cache Cache) SocialService {
	return &socialService{
		socialRepo:  socialRepo,
		podcastRepo: podcastRepo,
		userRepo:    userRepo,
		cache:       cache,
	}
}

// ToggleLike applies a like or unlike for (userID, podcastID). The row
// insert/delete and the counter bump run in one transaction, and the
// composite unique index owns the race: of two concurrent likes for the
// same pair exactly one inserts and increments, the other loses on the
// constraint and gets ErrInvalidAction.
func (s *socialService) ToggleLike(ctx context.Context, userID, podcastID, action string) (*LikeResult, error) {
	podcast, err := s.podcastRepo.FindByID(ctx, podcastID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("find podcast: %w", err)
	}

	var result *LikeResult
	err = s.socialRepo.WithTransaction(ctx, func(ctx context.Context, repo repository.SocialRepository) error {
		switch action {
		case ActionLike:
			like := &model.Like{PodcastID: podcastID, LikerID: userID}
			if err := repo.InsertLike(ctx, like); err != nil {
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					return apperrors.ErrInvalidAction
				}
				return fmt.Errorf("insert like: %w", err)
			}
			if err := repo.AdjustLikesCount(ctx, podcastID, 1); err != nil {
				return fmt.Errorf("increment likes: %w", err)
			}
			result = &LikeResult{Liked: true}
			return nil

		case ActionUnlike:
			rows, err := repo.DeleteLike(ctx, podcastID, userID)
			if err != nil {
				return fmt.Errorf("delete like: %w", err)
			}
			if rows == 0 {
				return apperrors.ErrInvalidAction
			}
			if err := repo.AdjustLikesCount(ctx, podcastID, -1); err != nil {
				return fmt.Errorf("decrement likes: %w", err)
			}
			result = &LikeResult{Liked: false}
			return nil

		default:
			return apperrors.ErrInvalidAction
		}
	})
	if err != nil {
		return nil, err
	}

	// The owner's profile page embeds the likes counter, so its cache
	// entry goes with the podcast's.
	s.cache.Delete(ctx, podcastCacheKey(podcastID), profileCacheKey(podcast.OwnerID))
	return result, nil
}

// ToggleFollow applies a follow or unfollow of targetUsername by
// userID. Self-follow is rejected before the target is even resolved.
// The same transition contract as ToggleLike applies, with both users'
// counters moving together.
func (s *socialService) ToggleFollow(ctx context.Context, userID, targetUsername, action string) (*FollowResult, error) {
	follower, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find follower: %w", err)
	}

	if follower.Username == targetUsername {
		return nil, apperrors.ErrForbidden
	}

	target, err := s.userRepo.FindByUsername(ctx, targetUsername)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find target user: %w", err)
	}
	if target.Deactivated {
		return nil, apperrors.ErrUserNotFound
	}

	var result *FollowResult
	err = s.socialRepo.WithTransaction(ctx, func(ctx context.Context, repo repository.SocialRepository) error {
		switch action {
		case ActionFollow:
			follow := &model.Follow{FollowerID: follower.ID, FolloweeID: target.ID}
			if err := repo.InsertFollow(ctx, follow); err != nil {
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					return apperrors.ErrInvalidAction
				}
				return fmt.Errorf("insert follow: %w", err)
			}
			if err := repo.AdjustFollowCounts(ctx, follower.ID, target.ID, 1); err != nil {
				return fmt.Errorf("increment follow counts: %w", err)
			}
			result = &FollowResult{Following: true}
			return nil

		case ActionUnfollow:
			rows, err := repo.DeleteFollow(ctx, follower.ID, target.ID)
			if err != nil {
				return fmt.Errorf("delete follow: %w", err)
			}
			if rows == 0 {
				return apperrors.ErrInvalidAction
			}
			if err := repo.AdjustFollowCounts(ctx, follower.ID, target.ID, -1); err != nil {
				return fmt.Errorf("decrement follow counts: %w", err)
			}
			result = &FollowResult{Following: false}
			return nil

		default:
			return apperrors.ErrInvalidAction
		}
	})
	if err != nil {
		return nil, err
	}

	s.cache.Delete(ctx, profileCacheKey(follower.ID), profileCacheKey(target.ID))
	return result, nil
}
