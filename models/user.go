package models

import (
	"gorm.io/gorm"
)

// User holds the admin account. Password is always a bcrypt digest; the
// plaintext never reaches the store.
type User struct {
	gorm.Model
	Username string `gorm:"uniqueIndex;not null" json:"username" binding:"required"`
	Password string `gorm:"not null" json:"-"`
	Role     string `json:"role"`
}
