package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jjrsoftware/backend/internal/content"
	"github.com/jjrsoftware/backend/internal/search"
)

func newSearchHandler(t *testing.T) *SearchHandler {
	t.Helper()
	c, err := content.LoadCatalog()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	return NewSearchHandler(search.NewEngine(content.BuildIndex(c)))
}

func doSearch(t *testing.T, h *SearchHandler, target string) searchResponse {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	h.Search(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d — body: %s", rec.Code, rec.Body.String())
	}
	var resp searchResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp
}

func TestSearchHandler_EmptyQueryIsEmptyResult(t *testing.T) {
	h := newSearchHandler(t)

	resp := doSearch(t, h, "/api/search?s=")
	if resp.Count != 0 || len(resp.Results) != 0 {
		t.Errorf("expected empty result, got %d", resp.Count)
	}
}

func TestSearchHandler_NoMatchesIsNotAnError(t *testing.T) {
	h := newSearchHandler(t)

	resp := doSearch(t, h, "/api/search?s=xyzzyplugh")
	if resp.Count != 0 {
		t.Errorf("expected zero matches, got %d", resp.Count)
	}
}

func TestSearchHandler_ModalLimit(t *testing.T) {
	h := newSearchHandler(t)

	full := doSearch(t, h, "/api/search?s=a")
	if full.Count <= search.ModalResultLimit {
		t.Fatalf("test needs more than %d matches, got %d", search.ModalResultLimit, full.Count)
	}

	capped := doSearch(t, h, "/api/search?s=a&limit=6")
	if capped.Count != search.ModalResultLimit {
		t.Errorf("expected %d results with limit=6, got %d", search.ModalResultLimit, capped.Count)
	}
	for i := range capped.Results {
		if capped.Results[i].ID != full.Results[i].ID {
			t.Errorf("capped results must be the first matches in order, diverged at %d", i)
		}
	}
}

func TestSearchHandler_Highlighting(t *testing.T) {
	h := newSearchHandler(t)

	resp := doSearch(t, h, "/api/search?s=cloud")
	if resp.Count == 0 {
		t.Fatal("expected matches for cloud")
	}
	highlighted := false
	for _, r := range resp.Results {
		if strings.Contains(r.TitleHTML, "<mark>") || strings.Contains(r.DescriptionHTML, "<mark>") {
			highlighted = true
		}
	}
	if !highlighted {
		t.Error("expected at least one highlighted span for a raw-text match")
	}
}

func TestSearchHandler_BadLimitIgnored(t *testing.T) {
	h := newSearchHandler(t)

	a := doSearch(t, h, "/api/search?s=design")
	b := doSearch(t, h, "/api/search?s=design&limit=bogus")
	if a.Count != b.Count {
		t.Errorf("invalid limit should be ignored: %d vs %d", a.Count, b.Count)
	}
}
