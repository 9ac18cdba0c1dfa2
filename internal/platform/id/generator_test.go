package id

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUUIDGenerator(t *testing.T) {
	gen := NewUUIDGenerator()
	first := gen.NewID()
	second := gen.NewID()

	assert.True(t, Valid(first))
	assert.NotEqual(t, first, second)
}

func TestValid(t *testing.T) {
	assert.False(t, Valid(""))
	assert.False(t, Valid("not-a-uuid"))
	assert.False(t, Valid("urn:uuid:6ba7b810-9dad-11d1-80b4-00c04fd430c8"))
	assert.True(t, Valid("6ba7b810-9dad-11d1-80b4-00c04fd430c8"))
}
