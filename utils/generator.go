package utils

import (
	"github.com/google/uuid"
)

// NewID produces a unique identifier for a new entity.
func NewID() string {
	return uuid.New().String()
}
