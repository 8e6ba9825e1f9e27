package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/jjrsoftware/backend/internal/model"
	"github.com/jjrsoftware/backend/internal/repository"
	"github.com/jjrsoftware/backend/internal/service"
)

const maxCoverSize = 5 << 20 // 5 MB

// BlogHandler serves blog reads and the feature-flag-gated admin surface
// (create post, upload cover image).
type BlogHandler struct {
	blogService  service.BlogService
	adminEnabled bool
}

// NewBlogHandler creates a BlogHandler. adminEnabled is resolved once at
// startup; when false the admin endpoints answer 404 as if unrouted.
func NewBlogHandler(blogService service.BlogService, adminEnabled bool) *BlogHandler {
	return &BlogHandler{blogService: blogService, adminEnabled: adminEnabled}
}

type blogListResponse struct {
	Posts []*model.BlogPost `json:"posts"`
}

// List handles GET /api/blogs.
func (h *BlogHandler) List(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	posts, err := h.blogService.FetchPublished(r.Context())
	if err != nil {
		slog.Error("blog list failed", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "fetch_failed"})
		return
	}

	// Return [] not null for empty lists
	if posts == nil {
		posts = []*model.BlogPost{}
	}
	_ = json.NewEncoder(w).Encode(blogListResponse{Posts: posts})
}

type blogNavResponse struct {
	Items []*model.BlogNavItem `json:"items"`
}

// Nav handles GET /api/blogs/nav, the lightweight listing used for
// prev/next navigation.
func (h *BlogHandler) Nav(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	items, err := h.blogService.FetchPublishedNav(r.Context())
	if err != nil {
		slog.Error("blog nav failed", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "fetch_failed"})
		return
	}

	if items == nil {
		items = []*model.BlogNavItem{}
	}
	_ = json.NewEncoder(w).Encode(blogNavResponse{Items: items})
}

// Get handles GET /api/blogs/{slug}. Drafts and unknown slugs are both a
// plain 404, distinct from store failures.
func (h *BlogHandler) Get(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	slug := r.PathValue("slug")
	post, err := h.blogService.FetchBySlug(r.Context(), slug)
	if errors.Is(err, repository.ErrNotFound) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "not_found"})
		return
	}
	if err != nil {
		slog.Error("blog fetch failed", "error", err, "slug", slug)
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "fetch_failed"})
		return
	}

	_ = json.NewEncoder(w).Encode(post)
}

// Create handles POST /api/blogs (admin surface).
// A missing slug is derived from the title.
func (h *BlogHandler) Create(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if !h.adminEnabled {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "not_found"})
		return
	}

	var payload model.BlogInsert
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_json"})
		return
	}

	if strings.TrimSpace(payload.Slug) == "" {
		payload.Slug = service.Slugify(payload.Title)
	}

	err := h.blogService.Create(r.Context(), &payload)
	switch {
	case err == nil:
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]string{"slug": payload.Slug})
	case errors.Is(err, service.ErrValidation):
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_input", "message": err.Error()})
	case errors.Is(err, repository.ErrSlugTaken):
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "slug_taken", "message": "slug already exists"})
	default:
		slog.Error("blog create failed", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "create_failed"})
	}
}

// UploadCover handles POST /api/blogs/cover (admin surface, multipart
// field "image").
func (h *BlogHandler) UploadCover(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if !h.adminEnabled {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "not_found"})
		return
	}

	if err := r.ParseMultipartForm(maxCoverSize); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "file_too_large"})
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "image_required"})
		return
	}
	defer file.Close()

	if header.Size > maxCoverSize {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "file_too_large"})
		return
	}

	url, err := h.blogService.UploadCover(r.Context(), header.Filename, file, header.Header.Get("Content-Type"))
	if err != nil {
		slog.Error("cover upload failed", "error", err, "filename", header.Filename)
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "upload_failed"})
		return
	}

	_ = json.NewEncoder(w).Encode(map[string]string{"cover_image": url})
}
