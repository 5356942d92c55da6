package models

import "gorm.io/gorm"

const (
	RoleClient = "client"
	RoleAdmin  = "admin"
)

type User struct {
	gorm.Model
	Name     string `json:"name"`
	Email    string `json:"email" gorm:"uniqueIndex;not null"`
	Password string `json:"-"`
	Role     string `json:"role" gorm:"default:'client'"`
	Picture  string `json:"picture"`
}
