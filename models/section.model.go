package models

import "gorm.io/gorm"

type Section struct {
	gorm.Model
	SectionName string       `gorm:"not null" json:"sectionName"`
	CourseID    uint         `gorm:"index;not null" json:"courseId"`
	SubSections []SubSection `json:"subSection"`
}
