package course

import (
	"lms/models"

	"gorm.io/gorm"
)

// Course represents a catalog entry created by an instructor
type Course struct {
	gorm.Model
	CourseName        string  `json:"courseName" gorm:"not null"`
	CourseDescription string  `json:"courseDescription" gorm:"type:text"`
	WhatYouWillLearn  string  `json:"whatYouWillLearn" gorm:"type:text"`
	Price             float64 `json:"price" gorm:"default:0"`
	Thumbnail         string  `json:"thumbnail"`
	Tag               string  `json:"tag"`
	Instructions      string  `json:"instructions" gorm:"type:text"`
	Status            string  `json:"status" gorm:"default:'DRAFT'"` // DRAFT, PUBLISHED
	InstructorID      uint    `json:"instructorId" gorm:"index;not null"`
	CategoryID        uint    `json:"categoryId" gorm:"index;not null"`
	IsDeleted         bool    `json:"-" gorm:"default:false"`

	Instructor models.User     `json:"instructor,omitempty" gorm:"foreignKey:InstructorID"`
	Category   models.Category `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Sections   []Section       `json:"courseContent,omitempty" gorm:"foreignKey:CourseID"`
}
