package utils

import "github.com/google/uuid"

// NewID returns a UUID string for newly created records.
func NewID() string {
	return uuid.NewString()
}
