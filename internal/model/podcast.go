package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Podcast represents an uploaded episode. The audio itself lives in an
// external blob store; AudioRef is the stored file reference.
type Podcast struct {
	ID          string `json:"id" gorm:"type:char(36);primaryKey"`
	OwnerID     string `json:"owner_id" gorm:"type:char(36);not null;index"`
	Title       string `json:"title" gorm:"size:50;not null"`
	Description string `json:"description" gorm:"size:500;not null"`
	AudioRef    string `json:"audio_ref" gorm:"uniqueIndex;size:255;not null"`

	// Counters are maintained in the same transaction as the Like and
	// Comment rows they summarize.
	LikesCount    int64 `json:"likes_count" gorm:"not null;default:0"`
	CommentsCount int64 `json:"comments_count" gorm:"not null;default:0"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	Owner    User      `json:"-" gorm:"foreignKey:OwnerID"`
	Comments []Comment `json:"comments,omitempty" gorm:"foreignKey:PodcastID"`
}

// BeforeCreate sets the UUID before creating the record.
func (p *Podcast) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}
