package idgen

import "github.com/google/uuid"

// NewFunc returns a new session handle.
var NewFunc = func() string { return uuid.NewString() }

// New returns a new globally unique handle.
func New() string { return NewFunc() }

// Valid reports whether handle parses as a UUID.
func Valid(handle string) bool {
	_, err := uuid.Parse(handle)
	return err == nil
}
