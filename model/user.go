package model

import "gorm.io/gorm"

// User is an admin account. Password holds a bcrypt hash.
type User struct {
	gorm.Model
	Name     string `json:"name"`
	Email    string `json:"email" gorm:"uniqueIndex"`
	Password string `json:"-"`
}
