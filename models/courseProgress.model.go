package models

import "gorm.io/gorm"

// CourseProgress tracks which subsections a user has completed in a course.
// Created once per enrollment with an empty completed set.
type CourseProgress struct {
	gorm.Model
	CourseID        uint         `gorm:"index;not null" json:"courseID"`
	UserID          uint         `gorm:"index;not null" json:"userId"`
	CompletedVideos []SubSection `gorm:"many2many:course_progress_completed_videos" json:"completedVideos"`
}
