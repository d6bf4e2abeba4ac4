package models

import (
	"time"
)

const RoleAdmin = "admin"

type User struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	Password  string    `json:"-" gorm:"not null"`
	Role      string    `json:"role" gorm:"default:user"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Identity is the resolved acting user handed to the lifecycle services.
// It is produced upstream by the auth middleware and never persisted.
type Identity struct {
	UserID string
	Admin  bool
}
