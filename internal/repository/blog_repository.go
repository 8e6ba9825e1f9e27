package repository

import (
	"context"

	"github.com/jjrsoftware/backend/internal/model"
)

// BlogRepository defines the persistence interface for blog posts.
// All public reads are filtered to status=published server-side; drafts are
// indistinguishable from absent rows.
type BlogRepository interface {
	// FetchPublished returns published posts ordered by created_at descending.
	FetchPublished(ctx context.Context) ([]*model.BlogPost, error)

	// FetchPublishedNav returns lightweight navigation stubs under the same
	// filter and order, sized for prev/next link computation.
	FetchPublishedNav(ctx context.Context) ([]*model.BlogNavItem, error)

	// FetchBySlug returns the published post with the given slug, or
	// ErrNotFound. Drafts return ErrNotFound, identical to nonexistent slugs.
	FetchBySlug(ctx context.Context, slug string) (*model.BlogPost, error)

	// Insert creates a new post. A slug collision returns ErrSlugTaken.
	Insert(ctx context.Context, payload *model.BlogInsert) error
}
