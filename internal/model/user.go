package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents a registered member of the platform.
type User struct {
	ID           string `json:"id" gorm:"type:char(36);primaryKey"`
	FirstName    string `json:"first_name" gorm:"size:255;not null"`
	LastName     string `json:"last_name" gorm:"size:255;not null"`
	Username     string `json:"username" gorm:"uniqueIndex;not null;type:varchar(15) COLLATE utf8mb4_bin"` // binary collation: usernames are case-sensitive
	Email        string `json:"email" gorm:"uniqueIndex;size:320;not null"`
	PasswordHash string `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	ProfileImage string `json:"profile_image" gorm:"size:30;not null;default:'default.png'"`
	Deactivated  bool   `json:"-" gorm:"default:false;index"`

	// Follower counters are maintained in the same transaction as the
	// Follow rows they summarize.
	FollowersCount int64 `json:"followers_count" gorm:"not null;default:0"`
	FollowingCount int64 `json:"following_count" gorm:"not null;default:0"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	Podcasts []Podcast `json:"podcasts,omitempty" gorm:"foreignKey:OwnerID"`
}

// BeforeCreate sets the UUID before creating the record.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return nil
}
