package models

import "gorm.io/gorm"

// Course represents a sellable learning course
type Course struct {
	gorm.Model
	CourseName        string    `gorm:"not null" json:"courseName"`
	CourseDescription string    `json:"courseDescription"`
	InstructorID      uint      `gorm:"index;not null" json:"instructorId"`
	WhatYouWillLearn  string    `json:"whatYouWillLearn"`
	Price             float64   `gorm:"not null;default:0" json:"price"` // rupees, charged in paise
	Thumbnail         string    `json:"thumbnail"`
	TagID             uint      `json:"tagId"`
	Tag               Tag       `json:"tag"`
	Sections          []Section `json:"courseContent"`
	IsDeleted         bool      `gorm:"default:false" json:"-"`
}
