package repository

import (
	"context"

	"gorm.io/gorm"

	"podhub/internal/model"
)

// PodcastRepository defines podcast persistence operations.
type PodcastRepository interface {
	Create(ctx context.Context, podcast *model.Podcast) error
	FindByID(ctx context.Context, id string) (*model.Podcast, error)
	List(ctx context.Context) ([]model.Podcast, error)
	ListByOwner(ctx context.Context, ownerID string) ([]model.Podcast, error)
	UpdateDetails(ctx context.Context, id, title, description string) error
	Delete(ctx context.Context, id string) error
}

type podcastRepository struct {
	db *gorm.DB
}

// NewPodcastRepository builds a GORM-backed repository.
func NewPodcastRepository(db *gorm.DB) PodcastRepository {
	return &podcastRepository{db: db}
}

func (r *podcastRepository) Create(ctx context.Context, podcast *model.Podcast) error {
	return r.db.WithContext(ctx).Create(podcast).Error
}

func (r *podcastRepository) FindByID(ctx context.Context, id string) (*model.Podcast, error) {
	var podcast model.Podcast
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&podcast).Error; err != nil {
		return nil, err
	}
	return &podcast, nil
}

func (r *podcastRepository) List(ctx context.Context) ([]model.Podcast, error) {
	var podcasts []model.Podcast
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&podcasts).Error; err != nil {
		return nil, err
	}
	return podcasts, nil
}

func (r *podcastRepository) ListByOwner(ctx context.Context, ownerID string) ([]model.Podcast, error) {
	var podcasts []model.Podcast
	if err := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).
		Order("created_at DESC").Find(&podcasts).Error; err != nil {
		return nil, err
	}
	return podcasts, nil
}

func (r *podcastRepository) UpdateDetails(ctx context.Context, id, title, description string) error {
	return r.db.WithContext(ctx).Model(&model.Podcast{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"title":       title,
			"description": description,
		}).Error
}

// Delete removes the podcast together with its likes and comments so the
// relation rows never outlive the podcast they count against.
func (r *podcastRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("podcast_id = ?", id).Delete(&model.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("podcast_id = ?", id).Delete(&model.Comment{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&model.Podcast{}).Error
	})
}
