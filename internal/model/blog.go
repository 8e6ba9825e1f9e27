package model

import "time"

// Blog post statuses. Only published posts are visible on public reads.
const (
	BlogStatusDraft     = "draft"
	BlogStatusPublished = "published"
)

// BlogPost represents one row of the blogs table.
type BlogPost struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Slug       string    `json:"slug"`
	Category   string    `json:"category,omitempty"`
	Excerpt    string    `json:"excerpt,omitempty"`
	Content    string    `json:"content"`
	CoverImage string    `json:"cover_image,omitempty"`
	Status     string    `json:"status"` // "draft" | "published"
	Author     string    `json:"author,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// BlogInsert carries the fields accepted when creating a post.
// Optional fields left empty are stored as NULL.
type BlogInsert struct {
	Title      string `json:"title"`
	Slug       string `json:"slug"`
	Category   string `json:"category"`
	Excerpt    string `json:"excerpt,omitempty"`
	Content    string `json:"content"`
	CoverImage string `json:"cover_image,omitempty"`
	Status     string `json:"status"`
	Author     string `json:"author,omitempty"`
}

// BlogNavItem is the lightweight projection used to compute prev/next
// navigation without fetching full post content.
type BlogNavItem struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Slug       string    `json:"slug"`
	CoverImage string    `json:"cover_image,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
