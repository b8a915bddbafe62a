package models

import (
	"time"

	"gorm.io/gorm"
)

// OTP stores signup email verification codes; rows expire after five minutes
type OTP struct {
	gorm.Model
	Email     string    `json:"email" gorm:"index;not null"`
	Code      string    `json:"-" gorm:"not null"`
	ExpiresAt time.Time `json:"expiresAt" gorm:"not null"`
	IsUsed    bool      `json:"-" gorm:"default:false"`
}
