package id

import "github.com/google/uuid"

// New returns a random identifier for a single conversion.
func New() string {
	return uuid.NewString()
}
