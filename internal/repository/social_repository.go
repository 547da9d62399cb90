package repository

import (
	"context"

	"gorm.io/gorm"

	"podhub/internal/model"
)

// SocialRepository defines persistence for the like and follow pair
// relations and their counters. Inserts rely on the composite unique
// indexes: a duplicate pair fails with gorm.ErrDuplicatedKey, which is
// what lets the toggle engine turn a lost race into a definite outcome
// instead of a double count.
type SocialRepository interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context, repo SocialRepository) error) error

	InsertLike(ctx context.Context, like *model.Like) error
	DeleteLike(ctx context.Context, podcastID, likerID string) (int64, error)
	HasLiked(ctx context.Context, podcastID, likerID string) (bool, error)
	AdjustLikesCount(ctx context.Context, podcastID string, delta int) error

	InsertFollow(ctx context.Context, follow *model.Follow) error
	DeleteFollow(ctx context.Context, followerID, followeeID string) (int64, error)
	IsFollowing(ctx context.Context, followerID, followeeID string) (bool, error)
	AdjustFollowCounts(ctx context.Context, followerID, followeeID string, delta int) error
}

type socialRepository struct {
	db *gorm.DB
}

// NewSocialRepository builds a GORM-backed repository.
func NewSocialRepository(db *gorm.DB) SocialRepository {
	return &socialRepository{db: db}
}

// WithTransaction executes fn against a transaction-scoped repository.
func (r *socialRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, repo SocialRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, &socialRepository{db: tx})
	})
}

func (r *socialRepository) InsertLike(ctx context.Context, like *model.Like) error {
	return r.db.WithContext(ctx).Create(like).Error
}

// DeleteLike removes the pair row and reports how many rows went away;
// zero means the relation was not set.
func (r *socialRepository) DeleteLike(ctx context.Context, podcastID, likerID string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("podcast_id = ? AND liker_id = ?", podcastID, likerID).
		Delete(&model.Like{})
	return res.RowsAffected, res.Error
}

func (r *socialRepository) HasLiked(ctx context.Context, podcastID, likerID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Like{}).
		Where("podcast_id = ? AND liker_id = ?", podcastID, likerID).
		Count(&count).Error
	return count > 0, err
}

func (r *socialRepository) AdjustLikesCount(ctx context.Context, podcastID string, delta int) error {
	return r.db.WithContext(ctx).Model(&model.Podcast{}).
		Where("id = ?", podcastID).
		UpdateColumn("likes_count", gorm.Expr("likes_count + ?", delta)).Error
}

func (r *socialRepository) InsertFollow(ctx context.Context, follow *model.Follow) error {
	return r.db.WithContext(ctx).Create(follow).Error
}

func (r *socialRepository) DeleteFollow(ctx context.Context, followerID, followeeID string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Delete(&model.Follow{})
	return res.RowsAffected, res.Error
}

func (r *socialRepository) IsFollowing(ctx context.Context, followerID, followeeID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Follow{}).
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Count(&count).Error
	return count > 0, err
}

type counterUpdate struct {
	userID string
	column string
}

// followCounterUpdates orders the two counter updates by user id.
// Without a fixed order, two users following each other concurrently
// lock the rows in opposite order and can deadlock.
func followCounterUpdates(followerID, followeeID string) [2]counterUpdate {
	updates := [2]counterUpdate{
		{userID: followerID, column: "following_count"},
		{userID: followeeID, column: "followers_count"},
	}
	if updates[1].userID < updates[0].userID {
		updates[0], updates[1] = updates[1], updates[0]
	}
	return updates
}

// AdjustFollowCounts moves the follower's following count and the
// followee's followers count by the same delta.
func (r *socialRepository) AdjustFollowCounts(ctx context.Context, followerID, followeeID string, delta int) error {
	for _, update := range followCounterUpdates(followerID, followeeID) {
		if err := r.db.WithContext(ctx).Model(&model.User{}).
			Where("id = ?", update.userID).
			UpdateColumn(update.column, gorm.Expr(update.column+" + ?", delta)).Error; err != nil {
			return err
		}
	}
	return nil
}
