package service

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jjrsoftware/backend/internal/model"
	"github.com/jjrsoftware/backend/internal/repository"
	"github.com/jjrsoftware/backend/internal/storage"
)

const (
	maxSlugLength = 80
	maxExtLength  = 10
	defaultExt    = "jpg"
)

var (
	slugQuotes = strings.NewReplacer("'", "", `"`, "")
	slugRuns   = regexp.MustCompile(`[^a-z0-9]+`)
	extUnsafe  = regexp.MustCompile(`[^a-z0-9]`)
)

// Slugify derives a URL-safe slug from a title: lowercase, quotes
// stripped, any run of non-alphanumerics collapsed to a single hyphen,
// hyphens trimmed from both ends, capped at 80 characters. Idempotent.
func Slugify(input string) string {
	s := strings.ToLower(strings.TrimSpace(input))
	s = slugQuotes.Replace(s)
	s = slugRuns.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if len(s) > maxSlugLength {
		// Truncation can re-expose a trailing hyphen; trim again.
		s = strings.TrimRight(s[:maxSlugLength], "-")
	}
	return s
}

// blogServiceImpl is the production implementation of BlogService.
type blogServiceImpl struct {
	repo  repository.BlogRepository
	store storage.Storage
}

// NewBlogService creates a BlogService backed by the given repository and
// cover-image store.
func NewBlogService(repo repository.BlogRepository, store storage.Storage) BlogService {
	return &blogServiceImpl{repo: repo, store: store}
}

func (s *blogServiceImpl) FetchPublished(ctx context.Context) ([]*model.BlogPost, error) {
	return s.repo.FetchPublished(ctx)
}

func (s *blogServiceImpl) FetchPublishedNav(ctx context.Context) ([]*model.BlogNavItem, error) {
	return s.repo.FetchPublishedNav(ctx)
}

func (s *blogServiceImpl) FetchBySlug(ctx context.Context, slug string) (*model.BlogPost, error) {
	return s.repo.FetchBySlug(ctx, slug)
}

// Create validates the payload and inserts it. Validation happens before
// any network call.
func (s *blogServiceImpl) Create(ctx context.Context, payload *model.BlogInsert) error {
	required := []struct {
		field, value string
	}{
		{"title", payload.Title},
		{"slug", payload.Slug},
		{"category", payload.Category},
		{"content", payload.Content},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("%w: %s is required", ErrValidation, f.field)
		}
	}
	if payload.Status != model.BlogStatusDraft && payload.Status != model.BlogStatusPublished {
		return fmt.Errorf("%w: status must be draft or published", ErrValidation)
	}
	return s.repo.Insert(ctx, payload)
}

// UploadCover stores a cover image at covers/<date>/<random-id>.<ext> and
// returns the public URL.
func (s *blogServiceImpl) UploadCover(ctx context.Context, filename string, data io.Reader, contentType string) (string, error) {
	key := fmt.Sprintf("covers/%s/%s.%s",
		time.Now().UTC().Format("2006-01-02"), randomID(), extFromFilename(filename))

	url, err := s.store.Save(ctx, key, data, contentType)
	if err != nil {
		return "", fmt.Errorf("upload cover image: %w", err)
	}
	return url, nil
}

// extFromFilename derives a safe lowercase alphanumeric extension from
// the uploaded file name, capped at 10 characters, defaulting to "jpg".
func extFromFilename(name string) string {
	ext := ""
	if i := strings.LastIndex(name, "."); i >= 0 && i < len(name)-1 {
		ext = strings.ToLower(name[i+1:])
	}
	ext = extUnsafe.ReplaceAllString(ext, "")
	if len(ext) > maxExtLength {
		ext = ext[:maxExtLength]
	}
	if ext == "" {
		return defaultExt
	}
	return ext
}

// randomID returns a random UUID, or a timestamp+random composite if UUID
// generation is unavailable.
func randomID() string {
	if id, err := uuid.NewRandom(); err == nil {
		return id.String()
	}
	return fmt.Sprintf("%d-%x", time.Now().UnixMilli(), rand.Uint64())
}
