package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// ParentType discriminates which collection a node's parent lives in.
type ParentType string

const (
	ParentTypePost    ParentType = "POST"
	ParentTypeComment ParentType = "COMMENT"
	ParentTypeNode    ParentType = "NODE"
)

// PostStatus represents the moderation state of a post.
type PostStatus string

const (
	StatusDraft     PostStatus = "DRAFT"
	StatusPending   PostStatus = "PENDING"
	StatusPublished PostStatus = "PUBLISHED"
	StatusDeleted   PostStatus = "DELETED"
	StatusBanned    PostStatus = "BANNED"
)

// statusOrder fixes the ordering used when listings sort by status.
var statusOrder = map[PostStatus]int{
	StatusDraft:     0,
	StatusPending:   1,
	StatusPublished: 2,
	StatusDeleted:   3,
	StatusBanned:    4,
}

// Rank returns the position of the status in declaration order.
// Unknown values sort after all known ones.
func (s PostStatus) Rank() int {
	if r, ok := statusOrder[s]; ok {
		return r
	}
	return len(statusOrder)
}

// NodeType identifies the kind of content block a node carries.
type NodeType string

const (
	NodeTypeText  NodeType = "TEXT"
	NodeTypeImage NodeType = "IMAGE"
	NodeTypeVideo NodeType = "VIDEO"
	NodeTypeCode  NodeType = "CODE"
	NodeTypeList  NodeType = "LIST"
	NodeTypeAudio NodeType = "AUDIO"
)

// StringSlice is a custom type for handling JSON arrays of strings in database
type StringSlice []string

// Value implements driver.Valuer interface for database storage
func (ss StringSlice) Value() (driver.Value, error) {
	if ss == nil {
		return nil, nil
	}
	return json.Marshal(ss)
}

// Scan implements sql.Scanner interface for database retrieval
func (ss *StringSlice) Scan(value interface{}) error {
	if value == nil {
		*ss = nil
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, ss)
	case string:
		return json.Unmarshal([]byte(v), ss)
	default:
		return fmt.Errorf("cannot scan %T into StringSlice", value)
	}
}

// GormDataType returns the data type for GORM
func (StringSlice) GormDataType() string {
	return "json"
}

// MarshalJSON implements json.Marshaler interface
func (ss StringSlice) MarshalJSON() ([]byte, error) {
	if ss == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(ss))
}

// UnmarshalJSON implements json.Unmarshaler interface
func (ss *StringSlice) UnmarshalJSON(data []byte) error {
	var slice []string
	if err := json.Unmarshal(data, &slice); err != nil {
		return err
	}
	*ss = StringSlice(slice)
	return nil
}
