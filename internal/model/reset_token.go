package model

import "time"

// PasswordResetToken is a single-use credential for the password reset
// flow. Consumption flips Used atomically with the password update;
// a used or expired token is permanently rejected.
type PasswordResetToken struct {
	Token     string    `json:"-" gorm:"size:36;primaryKey"`
	UserID    string    `json:"-" gorm:"type:char(36);not null;index"`
	IssuedAt  time.Time `json:"-" gorm:"not null"`
	ExpiresAt time.Time `json:"-" gorm:"not null"`
	Used      bool      `json:"-" gorm:"not null;default:false"`

	// Relations
	User User `json:"-" gorm:"foreignKey:UserID"`
}
