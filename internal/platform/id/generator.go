package id

import (
	"github.com/google/uuid"
)

// Generator creates opaque IDs for request correlation.
type Generator interface {
	NewID() string
}

type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// NewID returns a random v4 UUID.
func (g *UUIDGenerator) NewID() string {
	return uuid.NewString()
}

// Valid reports whether value is a well-formed UUID. Incoming request ids are
// only echoed back when they pass.
func Valid(value string) bool {
	if len(value) != 36 {
		return false
	}
	_, err := uuid.Parse(value)
	return err == nil
}
