package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	FirstName       string  `json:"firstName" gorm:"default:''"`
	LastName        string  `json:"lastName" gorm:"default:''"`
	Email           string  `json:"email" gorm:"unique;not null"`
	Password        string  `json:"-" gorm:"not null"`
	Role            string  `json:"role" gorm:"default:'STUDENT'"` // STUDENT, INSTRUCTOR, ADMIN
	Image           string  `json:"image" gorm:"default:''"`
	WalletBalance   float64 `json:"walletBalance" gorm:"default:0"`
	ProfileID       uint    `json:"profileId" gorm:"index"`
	IsEmailVerified bool    `json:"isEmailVerified" gorm:"default:false"`
	LastLogin       time.Time
	IsDeleted       bool `json:"-" gorm:"default:false"`

	Profile Profile `json:"profile,omitempty" gorm:"foreignKey:ProfileID"`
}
