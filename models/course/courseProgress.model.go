package course

import "gorm.io/gorm"

// CourseProgress exists exactly once per enrollment and tracks which content
// units the student has finished
type CourseProgress struct {
	gorm.Model
	UserID    uint `json:"userId" gorm:"index:idx_progress_user_course,unique;not null"`
	CourseID  uint `json:"courseId" gorm:"index:idx_progress_user_course,unique;not null"`
	IsDeleted bool `json:"-" gorm:"default:false"`

	CompletedVideos []CompletedSubSection `json:"completedVideos,omitempty" gorm:"foreignKey:CourseProgressID"`
}

// CompletedSubSection marks one content unit as done within a progress record
type CompletedSubSection struct {
	gorm.Model
	CourseProgressID uint `json:"courseProgressId" gorm:"index:idx_completed_progress_sub,unique;not null"`
	SubSectionID     uint `json:"subSectionId" gorm:"index:idx_completed_progress_sub,unique;not null"`
}
