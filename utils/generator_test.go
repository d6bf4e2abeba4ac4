package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewID(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := NewID()
		assert.GreaterOrEqual(t, len(id), 7)
		assert.False(t, seen[id], "generated a duplicate id")
		seen[id] = true
	}
}
