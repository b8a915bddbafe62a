package models

import "gorm.io/gorm"

// Profile holds the personal details of a user, one-to-one with User
type Profile struct {
	gorm.Model
	Gender        string `json:"gender" gorm:"default:''"`
	DateOfBirth   string `json:"dateOfBirth" gorm:"default:''"`
	About         string `json:"about" gorm:"type:text"`
	ContactNumber string `json:"contactNumber" gorm:"default:''"`
	IsDeleted     bool   `json:"-" gorm:"default:false"`
}
