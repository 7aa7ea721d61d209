package models

import "gorm.io/gorm"

// Profile holds the additional details attached to a user account
type Profile struct {
	gorm.Model
	Gender        string `gorm:"default:''" json:"gender"`
	DateOfBirth   string `gorm:"default:''" json:"dateOfBirth"`
	About         string `gorm:"default:''" json:"about"`
	ContactNumber string `gorm:"default:''" json:"contactNumber"`
}
