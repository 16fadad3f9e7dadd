package models

import (
	"time"

	"gorm.io/gorm"
)

// Roles de usuario
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User modelo de usuario
type User struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Name      string         `json:"name" gorm:"size:100;not null"`
	Email     string         `json:"email" gorm:"uniqueIndex;size:100;not null"`
	Password  string         `json:"-" gorm:"size:255;not null"`
	Role      string         `json:"role" gorm:"size:20;default:user"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName configura el nombre de la tabla
func (User) TableName() string {
	return "users"
}
