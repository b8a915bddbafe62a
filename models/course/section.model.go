package course

import "gorm.io/gorm"

// Section is an ordered content group inside a course
type Section struct {
	gorm.Model
	CourseID    uint   `json:"courseId" gorm:"index;not null"`
	SectionName string `json:"sectionName" gorm:"not null"`
	OrderIndex  int    `json:"orderIndex" gorm:"default:0"`
	IsDeleted   bool   `json:"-" gorm:"default:false"`

	SubSections []SubSection `json:"subSection,omitempty" gorm:"foreignKey:SectionID"`
}
