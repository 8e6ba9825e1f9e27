package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jjrsoftware/backend/internal/model"
)

// PgBlogRepository is the PostgreSQL implementation of BlogRepository.
type PgBlogRepository struct {
	pool *pgxpool.Pool
}

// NewPgBlogRepository creates a PgBlogRepository backed by the given pool.
func NewPgBlogRepository(pool *pgxpool.Pool) *PgBlogRepository {
	return &PgBlogRepository{pool: pool}
}

var _ BlogRepository = (*PgBlogRepository)(nil)

// FetchPublished returns published posts, newest first.
func (r *PgBlogRepository) FetchPublished(ctx context.Context) ([]*model.BlogPost, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, title, slug, COALESCE(category, ''), COALESCE(excerpt, ''), content,
		        COALESCE(cover_image, ''), status, COALESCE(author, ''), created_at
		 FROM blogs
		 WHERE status = 'published'
		 ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("fetch published blogs: %w", err)
	}
	defer rows.Close()

	var posts []*model.BlogPost
	for rows.Next() {
		var p model.BlogPost
		if err := rows.Scan(&p.ID, &p.Title, &p.Slug, &p.Category, &p.Excerpt, &p.Content,
			&p.CoverImage, &p.Status, &p.Author, &p.CreatedAt); err != nil {
			return nil, err
		}
		posts = append(posts, &p)
	}
	return posts, rows.Err()
}

// FetchPublishedNav returns navigation stubs for published posts, newest first.
func (r *PgBlogRepository) FetchPublishedNav(ctx context.Context) ([]*model.BlogNavItem, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, title, slug, COALESCE(cover_image, ''), created_at
		 FROM blogs
		 WHERE status = 'published'
		 ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("fetch blog nav: %w", err)
	}
	defer rows.Close()

	var items []*model.BlogNavItem
	for rows.Next() {
		var n model.BlogNavItem
		if err := rows.Scan(&n.ID, &n.Title, &n.Slug, &n.CoverImage, &n.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, &n)
	}
	return items, rows.Err()
}

// FetchBySlug returns the published post with the given slug, or ErrNotFound.
func (r *PgBlogRepository) FetchBySlug(ctx context.Context, slug string) (*model.BlogPost, error) {
	var p model.BlogPost
	err := r.pool.QueryRow(ctx,
		`SELECT id, title, slug, COALESCE(category, ''), COALESCE(excerpt, ''), content,
		        COALESCE(cover_image, ''), status, COALESCE(author, ''), created_at
		 FROM blogs
		 WHERE status = 'published' AND slug = $1`,
		slug,
	).Scan(&p.ID, &p.Title, &p.Slug, &p.Category, &p.Excerpt, &p.Content,
		&p.CoverImage, &p.Status, &p.Author, &p.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("fetch blog by slug: %w", err)
	}
	return &p, nil
}

// Insert creates a new blogs row. Optional fields are stored as NULL when
// empty. Unique-constraint violations on the slug surface as ErrSlugTaken.
func (r *PgBlogRepository) Insert(ctx context.Context, payload *model.BlogInsert) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO blogs (title, slug, category, excerpt, content, cover_image, status, author)
		 VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), $5, NULLIF($6, ''), $7, NULLIF($8, ''))`,
		payload.Title, payload.Slug, payload.Category, payload.Excerpt,
		payload.Content, payload.CoverImage, payload.Status, payload.Author,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrSlugTaken
		}
		if isDuplicateMessage(err.Error()) {
			return ErrSlugTaken
		}
		return fmt.Errorf("insert blog: %w", err)
	}
	return nil
}
