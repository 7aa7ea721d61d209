package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	AccountTypeStudent    = "Student"
	AccountTypeInstructor = "Instructor"
	AccountTypeAdmin      = "Admin"
)

type User struct {
	gorm.Model
	FirstName            string     `gorm:"not null" json:"firstName"`
	LastName             string     `gorm:"not null" json:"lastName"`
	Email                string     `gorm:"unique;not null" json:"email"`
	Password             string     `gorm:"not null" json:"password,omitempty"`
	AccountType          string     `gorm:"default:'Student'" json:"accountType"` // Student, Instructor, Admin
	Approved             bool       `gorm:"default:true" json:"approved"`
	ContactNumber        string     `gorm:"default:''" json:"contactNumber,omitempty"`
	Image                string     `gorm:"default:''" json:"image"`
	ProfileID            uint       `json:"-"`
	Profile              Profile    `json:"additionalDetails"`
	Token                string     `gorm:"index" json:"-"` // password reset token
	ResetPasswordExpires *time.Time `json:"-"`
	IsDeleted            bool       `gorm:"default:false" json:"-"`
}
