// Package content holds the static site catalog (pages, services, blog
// stubs) and builds the searchable record index from it. The catalog is
// embedded at compile time; the index is constructed once at startup and
// never mutated afterwards.
package content

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var catalogYAML []byte

// Record categories.
const (
	CategoryPage    = "Page"
	CategoryService = "Service"
	CategoryBlog    = "Blog"
)

// Record is one indexed, searchable unit of content.
// Content is a denormalized bag of words used only for matching; it is
// never displayed.
type Record struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"-"`
	Category    string `json:"category"`
	Href        string `json:"href"`
	Image       string `json:"image,omitempty"`
}

// Page is a hand-authored static page descriptor.
type Page struct {
	ID          string `yaml:"id"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Content     string `yaml:"content"`
	Href        string `yaml:"href"`
}

// Feature is one bullet of a service offering.
type Feature struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// Service is one entry of the service catalog.
type Service struct {
	Slug        string    `yaml:"slug"`
	Title       string    `yaml:"title"`
	Description string    `yaml:"description"`
	About       string    `yaml:"about"`
	Features    []Feature `yaml:"features"`
}

// BlogStub is a static placeholder blog record. Stubs stand in for live
// posts at index-build time; posts published after deployment are not
// searchable (known boundary).
type BlogStub struct {
	ID          string `yaml:"id"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Content     string `yaml:"content"`
	Image       string `yaml:"image"`
}

// Catalog is the full static content catalog.
type Catalog struct {
	Pages     []Page     `yaml:"pages"`
	Services  []Service  `yaml:"services"`
	BlogStubs []BlogStub `yaml:"blog_stubs"`
}

// LoadCatalog parses the embedded catalog.
func LoadCatalog() (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(catalogYAML, &c); err != nil {
		return nil, fmt.Errorf("content: parse catalog: %w", err)
	}
	return &c, nil
}

// BuildIndex assembles the searchable records in fixed order: pages,
// services, blog stubs. A service record's Content concatenates the long
// description with every feature title and description. The result is
// deterministic for a given catalog.
func BuildIndex(c *Catalog) []Record {
	records := make([]Record, 0, len(c.Pages)+len(c.Services)+len(c.BlogStubs))

	for _, p := range c.Pages {
		records = append(records, Record{
			ID:          p.ID,
			Title:       p.Title,
			Description: p.Description,
			Content:     p.Content,
			Category:    CategoryPage,
			Href:        p.Href,
		})
	}

	for _, s := range c.Services {
		var b strings.Builder
		b.WriteString(s.About)
		for _, f := range s.Features {
			b.WriteString(" ")
			b.WriteString(f.Title)
			b.WriteString(" ")
			b.WriteString(f.Description)
		}
		records = append(records, Record{
			ID:          "service-" + s.Slug,
			Title:       s.Title,
			Description: s.Description,
			Content:     b.String(),
			Category:    CategoryService,
			Href:        "/services/" + s.Slug,
		})
	}

	for _, s := range c.BlogStubs {
		records = append(records, Record{
			ID:          s.ID,
			Title:       s.Title,
			Description: s.Description,
			Content:     s.Content,
			Category:    CategoryBlog,
			Href:        "/blog",
			Image:       s.Image,
		})
	}

	return records
}

// ServiceBySlug returns the catalog entry for slug, or nil if absent.
func (c *Catalog) ServiceBySlug(slug string) *Service {
	for i := range c.Services {
		if c.Services[i].Slug == slug {
			return &c.Services[i]
		}
	}
	return nil
}
