package course

import "gorm.io/gorm"

// Enrollment links a user to a course. A single row stands for both the
// course's enrolled-student list and the user's enrolled-course list, so the
// two can never disagree.
type Enrollment struct {
	gorm.Model
	UserID    uint   `json:"userId" gorm:"index:idx_enrollment_user_course,unique;not null"`
	CourseID  uint   `json:"courseId" gorm:"index:idx_enrollment_user_course,unique;not null"`
	Status    string `json:"status" gorm:"default:'ENROLLED'"` // ENROLLED, COMPLETED
	IsDeleted bool   `json:"-" gorm:"default:false"`

	Course Course `json:"course,omitempty" gorm:"foreignKey:CourseID"`
}
