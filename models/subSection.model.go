package models

import "gorm.io/gorm"

type SubSection struct {
	gorm.Model
	SectionID    uint   `gorm:"index;not null" json:"sectionId"`
	Title        string `gorm:"not null" json:"title"`
	TimeDuration string `json:"timeDuration"`
	Description  string `json:"description"`
	VideoURL     string `json:"videoUrl"` // hosted by the media provider, stored as-is
}
