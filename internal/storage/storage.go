package storage

import (
	"context"
	"io"
)

// Storage abstracts the object store holding blog cover images.
// The local filesystem implementation can be swapped for a hosted bucket
// (Supabase Storage, S3, R2) without touching callers.
type Storage interface {
	// Save stores the object under key (e.g. "covers/2026-08-29/<id>.jpg")
	// and returns its publicly resolvable URL.
	Save(ctx context.Context, key string, data io.Reader, contentType string) (url string, err error)
}
