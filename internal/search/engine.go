// Package search implements the site's content search: a normalized
// substring scan over the static record index, plus best-effort term
// highlighting for result rendering.
package search

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/jjrsoftware/backend/internal/content"
)

// ModalResultLimit caps results shown in the inline search modal. The
// full-page search surface is uncapped.
const ModalResultLimit = 6

// Engine performs substring search over a fixed record index. The index
// is read-only after construction, so an Engine is safe for concurrent
// use without synchronization.
type Engine struct {
	records    []content.Record
	normalized []string
}

// NewEngine builds an Engine over records. The normalized searchable text
// (title + description + content, lowercased, whitespace stripped) is
// precomputed per record.
func NewEngine(records []content.Record) *Engine {
	normalized := make([]string, len(records))
	for i, r := range records {
		normalized[i] = Normalize(r.Title + " " + r.Description + " " + r.Content)
	}
	return &Engine{records: records, normalized: normalized}
}

// Normalize lowercases text and strips all whitespace, making matching
// space- and case-insensitive: "ai integration" matches both
// "AI-Integration" and "aiintegration".
func Normalize(text string) string {
	lowered := strings.ToLower(text)
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, lowered)
}

// Search returns every record whose normalized text contains the
// normalized query as a contiguous substring, in index insertion order.
// An empty or whitespace-only query yields an empty result; absence of
// matches is a normal empty result, never an error.
func (e *Engine) Search(query string) []content.Record {
	return e.SearchLimit(query, 0)
}

// SearchLimit is Search truncated to the first limit matches.
// limit <= 0 means unlimited.
func (e *Engine) SearchLimit(query string, limit int) []content.Record {
	if strings.TrimSpace(query) == "" {
		return nil
	}

	q := Normalize(query)
	var matches []content.Record
	for i, text := range e.normalized {
		if strings.Contains(text, q) {
			matches = append(matches, e.records[i])
			if limit > 0 && len(matches) == limit {
				break
			}
		}
	}
	return matches
}

// Highlight wraps every case-insensitive occurrence of each
// whitespace-split query term in <mark> tags, one term at a time. Because
// it operates on the raw display text while matching operates on
// whitespace-stripped text, a matching record can legitimately render
// with zero highlighted spans; later terms may also re-wrap earlier
// insertions. Display aid only, not a matching oracle.
func Highlight(text, query string) string {
	if strings.TrimSpace(query) == "" {
		return text
	}

	result := text
	for _, term := range strings.Fields(strings.ToLower(query)) {
		re, err := regexp.Compile(`(?i)(` + regexp.QuoteMeta(term) + `)`)
		if err != nil {
			continue
		}
		result = re.ReplaceAllString(result, "<mark>$1</mark>")
	}
	return result
}
