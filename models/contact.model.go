package models

import "gorm.io/gorm"

// ContactMessage stores contact-us form submissions
type ContactMessage struct {
	gorm.Model
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email" gorm:"not null"`
	PhoneNo   string `json:"phoneNo"`
	Message   string `json:"message" gorm:"type:text;not null"`
	IsDeleted bool   `json:"-" gorm:"default:false"`
}
