package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Follow records that FollowerID follows FolloweeID. The composite
// unique index rejects duplicate pairs; self-follows are rejected in
// the service before any row is touched.
type Follow struct {
	ID         string    `json:"id" gorm:"type:char(36);primaryKey"`
	FollowerID string    `json:"follower_id" gorm:"type:char(36);not null;uniqueIndex:idx_follows_pair"`
	FolloweeID string    `json:"followee_id" gorm:"type:char(36);not null;uniqueIndex:idx_follows_pair"`
	CreatedAt  time.Time `json:"created_at"`
}

// BeforeCreate sets the UUID before creating the record.
func (f *Follow) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.New().String()
	}
	return nil
}
