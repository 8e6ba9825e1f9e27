package service

import (
	"context"
	"io"

	"github.com/jjrsoftware/backend/internal/model"
)

// BlogService defines the business logic for the blog content store.
type BlogService interface {
	// FetchPublished returns published posts, newest first.
	FetchPublished(ctx context.Context) ([]*model.BlogPost, error)

	// FetchPublishedNav returns lightweight stubs for prev/next navigation.
	FetchPublishedNav(ctx context.Context) ([]*model.BlogNavItem, error)

	// FetchBySlug returns the published post with the given slug, or
	// repository.ErrNotFound for drafts and nonexistent slugs alike.
	FetchBySlug(ctx context.Context, slug string) (*model.BlogPost, error)

	// Create validates and inserts a new post. Returns an ErrValidation
	// error before any I/O when required fields are missing, and
	// repository.ErrSlugTaken on a slug collision.
	Create(ctx context.Context, payload *model.BlogInsert) error

	// UploadCover stores a cover image under a date-partitioned random key
	// and returns its public URL.
	UploadCover(ctx context.Context, filename string, data io.Reader, contentType string) (string, error)
}
