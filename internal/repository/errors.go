package repository

import (
	"errors"
	"strings"
)

// ErrNotFound is returned when a requested record does not exist in the database.
var ErrNotFound = errors.New("not found")

// ErrSlugTaken is returned when a blog insert collides with an existing slug.
// Callers present it as a specific "slug already exists" condition instead of
// the raw store message.
var ErrSlugTaken = errors.New("slug already exists")

// isDuplicateMessage reports whether a store error message indicates a
// unique-constraint violation. Fallback for stores that only relay text;
// the pg error code is checked first where available.
func isDuplicateMessage(msg string) bool {
	m := strings.ToLower(msg)
	return strings.Contains(m, "duplicate") || strings.Contains(m, "unique")
}
