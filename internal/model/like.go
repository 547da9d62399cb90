package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Like records that a user liked a podcast. The composite unique index
// on (podcast, liker) is what makes the toggle race-free: a concurrent
// duplicate insert fails on the constraint instead of double-counting.
type Like struct {
	ID        string    `json:"id" gorm:"type:char(36);primaryKey"`
	PodcastID string    `json:"podcast_id" gorm:"type:char(36);not null;uniqueIndex:idx_likes_podcast_liker"`
	LikerID   string    `json:"liker_id" gorm:"type:char(36);not null;uniqueIndex:idx_likes_podcast_liker"`
	CreatedAt time.Time `json:"created_at"`
}

// BeforeCreate sets the UUID before creating the record.
func (l *Like) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	return nil
}
