package models

import (
	"time"
)

// Rating records that a user rated a post. At most one live rating
// exists per (user, post) pair; creating a second replaces the first.
type Rating struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	UserID    string    `json:"user_id" gorm:"not null;index"`
	PostID    string    `json:"post_id" gorm:"not null;index"`
	Published time.Time `json:"published"`
}
