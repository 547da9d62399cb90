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

const podcastCacheTTL = 5 * time.Minute

func podcastCacheKey(id string) string {
	return "podcast:" + id
}

// PodcastView is the listen-page payload: the podcast, its comments and
// whether the viewer has liked it.
type PodcastView struct {
	Podcast  *model.Podcast  `json:"podcast"`
	Comments []model.Comment `json:"comments"`
	Liked    bool            `json:"liked"`
}

// PodcastService handles podcast CRUD, comments and the ownership
// checks guarding their mutation.
type PodcastService interface {
	CreatePodcast(ctx context.Context, ownerID, title, description, audioRef string) (*model.Podcast, error)
	GetPodcast(ctx context.Context, podcastID, viewerID string) (*PodcastView, error)
	ListPodcasts(ctx context.Context) ([]model.Podcast, error)
	UpdatePodcast(ctx context.Context, userID, podcastID, title, description string) (*model.Podcast, error)
	DeletePodcast(ctx context.Context, userID, podcastID string) error
	AddComment(ctx context.Context, userID, podcastID, body string) (*model.Comment, error)
	DeleteComment(ctx context.Context, userID, commentID string) error
}

type podcastService struct {
	podcastRepo repository.PodcastRepository
	commentRepo repository.CommentRepository
	socialRepo  repository.SocialRepository
	cache       Cache
}

// NewPodcastService creates a new podcast service.
func NewPodcastService(podcastRepo repository.PodcastRepository, commentRepo repository.CommentRepository, socialRepo repository.SocialRepository, cache Cache) PodcastService {
	return &podcastService{
		podcastRepo: podcastRepo,
		commentRepo: commentRepo,
		socialRepo:  socialRepo,
		cache:       cache,
	}
}

// resolveOwned loads the podcast and checks ownership. Absence maps to
// ErrNotFound before any owner comparison, so a missing podcast never
// leaks as forbidden.
func (s *podcastService) resolveOwned(ctx context.Context, podcastID, userID string) (*model.Podcast, error) {
	podcast, err := s.podcastRepo.FindByID(ctx, podcastID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("find podcast: %w", err)
	}
	if podcast.OwnerID != userID {
		return nil, apperrors.ErrForbidden
	}
	return podcast, nil
}

func (s *podcastService) CreatePodcast(ctx context.Context, ownerID, title, description, audioRef string) (*model.Podcast, error) {
	podcast := &model.Podcast{
		OwnerID:     ownerID,
		Title:       title,
		Description: description,
		AudioRef:    audioRef,
	}
	if err := s.podcastRepo.Create(ctx, podcast); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrConflict
		}
		return nil, fmt.Errorf("create podcast: %w", err)
	}

	// The owner's cached profile lists their podcasts; a new upload
	// must show on their very next profile load.
	s.cache.Delete(ctx, profileCacheKey(ownerID))
	return podcast, nil
}

// GetPodcast returns the listen view. The podcast entity is cache-aside;
// the viewer's liked state and the comments are always read fresh.
func (s *podcastService) GetPodcast(ctx context.Context, podcastID, viewerID string) (*PodcastView, error) {
	var podcast model.Podcast
	if !s.cache.GetJSON(ctx, podcastCacheKey(podcastID), &podcast) {
		found, err := s.podcastRepo.FindByID(ctx, podcastID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrNotFound
			}
			return nil, fmt.Errorf("find podcast: %w", err)
		}
		podcast = *found
		s.cache.SetJSON(ctx, podcastCacheKey(podcastID), podcast, podcastCacheTTL)
	}

	comments, err := s.commentRepo.ListByPodcast(ctx, podcastID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}

	liked := false
	if viewerID != "" {
		liked, err = s.socialRepo.HasLiked(ctx, podcastID, viewerID)
		if err != nil {
			return nil, fmt.Errorf("check liked: %w", err)
		}
	}

	return &PodcastView{Podcast: &podcast, Comments: comments, Liked: liked}, nil
}

func (s *podcastService) ListPodcasts(ctx context.Context) ([]model.Podcast, error) {
	return s.podcastRepo.List(ctx)
}

func (s *podcastService) UpdatePodcast(ctx context.Context, userID, podcastID, title, description string) (*model.Podcast, error) {
	if _, err := s.resolveOwned(ctx, podcastID, userID); err != nil {
		return nil, err
	}
	if err := s.podcastRepo.UpdateDetails(ctx, podcastID, title, description); err != nil {
		return nil, fmt.Errorf("update podcast: %w", err)
	}
	s.cache.Delete(ctx, podcastCacheKey(podcastID), profileCacheKey(userID))
	return s.podcastRepo.FindByID(ctx, podcastID)
}

func (s *podcastService) DeletePodcast(ctx context.Context, userID, podcastID string) error {
	if _, err := s.resolveOwned(ctx, podcastID, userID); err != nil {
		return err
	}
	if err := s.podcastRepo.Delete(ctx, podcastID); err != nil {
		return fmt.Errorf("delete podcast: %w", err)
	}
	s.cache.Delete(ctx, podcastCacheKey(podcastID), profileCacheKey(userID))
	return nil
}

func (s *podcastService) AddComment(ctx context.Context, userID, podcastID, body string) (*model.Comment, error) {
	podcast, err := s.podcastRepo.FindByID(ctx, podcastID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("find podcast: %w", err)
	}

	comment := &model.Comment{
		PodcastID:   podcastID,
		CommenterID: userID,
		Body:        body,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}
	s.cache.Delete(ctx, podcastCacheKey(podcastID), profileCacheKey(podcast.OwnerID))
	return comment, nil
}

// DeleteComment requires comment authorship, independent of who owns
// the podcast the comment sits on.
func (s *podcastService) DeleteComment(ctx context.Context, userID, commentID string) error {
	comment, err := s.commentRepo.FindByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("find comment: %w", err)
	}
	if comment.CommenterID != userID {
		return apperrors.ErrForbidden
	}

	if err := s.commentRepo.Delete(ctx, comment); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Deleted concurrently; the counter was left alone.
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("delete comment: %w", err)
	}

	keys := []string{podcastCacheKey(comment.PodcastID)}
	if podcast, err := s.podcastRepo.FindByID(ctx, comment.PodcastID); err == nil {
		// The owner's cached profile carries the comment counter. A
		// lookup failure means the podcast went away with its own
		// invalidation; the podcast key alone suffices then.
		keys = append(keys, profileCacheKey(podcast.OwnerID))
	}
	s.cache.Delete(ctx, keys...)
	return nil
}
