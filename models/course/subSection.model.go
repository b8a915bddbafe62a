package course

import "gorm.io/gorm"

// SubSection is a single content unit (lecture) inside a section
type SubSection struct {
	gorm.Model
	SectionID    uint   `json:"sectionId" gorm:"index;not null"`
	Title        string `json:"title" gorm:"not null"`
	TimeDuration string `json:"timeDuration"`
	Description  string `json:"description" gorm:"type:text"`
	VideoURL     string `json:"videoUrl"`
	OrderIndex   int    `json:"orderIndex" gorm:"default:0"`
	IsDeleted    bool   `json:"-" gorm:"default:false"`
}
