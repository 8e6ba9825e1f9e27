package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/jjrsoftware/backend/internal/content"
	"github.com/jjrsoftware/backend/internal/search"
)

// SearchHandler serves the content search endpoint.
type SearchHandler struct {
	engine *search.Engine
}

// NewSearchHandler creates a SearchHandler over the given engine.
func NewSearchHandler(engine *search.Engine) *SearchHandler {
	return &SearchHandler{engine: engine}
}

// searchResult is one result row with highlight markup precomputed for
// the given query.
type searchResult struct {
	content.Record
	TitleHTML       string `json:"title_html"`
	DescriptionHTML string `json:"description_html"`
}

type searchResponse struct {
	Query   string         `json:"query"`
	Count   int            `json:"count"`
	Results []searchResult `json:"results"`
}

// Search handles GET /api/search?s=<query>&limit=<n>.
// The modal surface passes limit=6; the full results page omits limit.
// An empty query or zero matches is a normal empty response, never an
// error status.
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	query := r.URL.Query().Get("s")

	limit := 0
	if l := r.URL.Query().Get("limit"); l != "" {
		if n, err := strconv.Atoi(l); err == nil && n > 0 {
			limit = n
		}
	}

	matches := h.engine.SearchLimit(query, limit)

	results := make([]searchResult, 0, len(matches))
	for _, rec := range matches {
		results = append(results, searchResult{
			Record:          rec,
			TitleHTML:       search.Highlight(rec.Title, query),
			DescriptionHTML: search.Highlight(rec.Description, query),
		})
	}

	_ = json.NewEncoder(w).Encode(searchResponse{
		Query:   query,
		Count:   len(results),
		Results: results,
	})
}
