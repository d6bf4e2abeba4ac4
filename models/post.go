package models

import (
	"time"
)

type Post struct {
	ID        string      `json:"id" gorm:"primaryKey"`
	UserID    string      `json:"user_id" gorm:"not null;index"`
	Title     string      `json:"title" gorm:"not null"`
	Source    string      `json:"source"`
	Tags      StringSlice `json:"tags" gorm:"type:json"`
	Status    PostStatus  `json:"status" gorm:"default:DRAFT"`
	Published time.Time   `json:"published"`
	Changed   time.Time   `json:"changed"`

	// Nodes are stored in their own collection keyed by parent id
	// and re-attached on read.
	Nodes []Node `json:"nodes" gorm:"-"`
}
