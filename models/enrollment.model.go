package models

import "gorm.io/gorm"

// Enrollment links a user to a course they have paid for. The composite
// unique index makes the enrollment write conditional: a second insert for
// the same (user, course) pair fails instead of silently duplicating.
type Enrollment struct {
	gorm.Model
	UserID   uint   `gorm:"uniqueIndex:idx_enrollment_user_course;not null" json:"user_id"`
	CourseID uint   `gorm:"uniqueIndex:idx_enrollment_user_course;not null" json:"course_id"`
	Status   string `gorm:"default:'ENROLLED'" json:"status"`
}
