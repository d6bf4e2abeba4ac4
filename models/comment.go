package models

import (
	"time"
)

type Comment struct {
	ID               string    `json:"id" gorm:"primaryKey"`
	PostID           string    `json:"post_id" gorm:"not null;index"`
	CommentID        string    `json:"comment_id" gorm:"index"` // parent comment, empty for top-level
	UserID           string    `json:"user_id" gorm:"not null;index"`
	Text             string    `json:"text"`
	CreatedDate      time.Time `json:"created_date"`
	ModificationDate time.Time `json:"modification_date"`

	Nodes []Node `json:"nodes" gorm:"-"`
}
