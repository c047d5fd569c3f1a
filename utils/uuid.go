package utils

import (
	"github.com/google/uuid"
)

// GenerateID returns a new random (v4) identifier string
func GenerateID() string {
	return uuid.New().String()
}

// IsValidID reports whether id has the shape GenerateID produces
func IsValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil && len(id) == 36
}
