package utils

import "github.com/google/uuid"

// NewTraceID returns a time-ordered UUIDv7 string, or a random UUIDv4 string
// if the v7 generator fails.
func NewTraceID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
