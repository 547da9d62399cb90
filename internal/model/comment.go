package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Comment is a user remark on a podcast. Only the commenter may delete
// it, regardless of who owns the podcast.
type Comment struct {
	ID          string    `json:"id" gorm:"type:char(36);primaryKey"`
	PodcastID   string    `json:"podcast_id" gorm:"type:char(36);not null;index"`
	CommenterID string    `json:"commenter_id" gorm:"type:char(36);not null;index"`
	Body        string    `json:"body" gorm:"size:150;not null"`
	CreatedAt   time.Time `json:"created_at"`

	// Relations
	Commenter User `json:"-" gorm:"foreignKey:CommenterID"`
}

// BeforeCreate sets the UUID before creating the record.
func (c *Comment) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}
