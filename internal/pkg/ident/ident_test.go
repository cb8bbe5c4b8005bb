package ident

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewShape(t *testing.T) {
	id := New()
	assert.Len(t, id, Size)
	for _, r := range id {
		assert.Contains(t, "0123456789abcdef", string(r))
	}
}

func TestNewUnique(t *testing.T) {
	seen := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		id := New()
		_, dup := seen[id]
		assert.False(t, dup, "duplicate id %s", id)
		seen[id] = struct{}{}
	}
}
