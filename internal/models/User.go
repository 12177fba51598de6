package models

import "gorm.io/gorm"

// RoleAdmin is the only role allowed to maintain destinations.
const RoleAdmin = "admin"

type User struct {
	gorm.Model
	Email    string `json:"email" gorm:"unique;not null"`
	Password string `json:"-"`
	Role     string `json:"role"`
}
