package models

import (
	"time"
)

// Node is a single content block owned by exactly one parent: a post,
// a comment, or another node. Parent links are kept by id plus a
// discriminator tag; there are no back-pointers.
type Node struct {
	ID         string     `json:"id" gorm:"primaryKey"`
	ParentID   string     `json:"parent_id" gorm:"index"`
	ParentType ParentType `json:"parent_type"`
	UserID     string     `json:"user_id"`
	Type       NodeType   `json:"type"`
	Content    string     `json:"content"`
	Source     string     `json:"source"`
	Published  time.Time  `json:"published"`

	// Nested child blocks, persisted separately with this node as parent.
	Nodes []Node `json:"nodes" gorm:"-"`
}
