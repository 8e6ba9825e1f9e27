package content

import (
	"strings"
	"testing"
)

func TestLoadCatalog_Counts(t *testing.T) {
	c, err := LoadCatalog()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(c.Pages) != 7 {
		t.Errorf("expected 7 pages, got %d", len(c.Pages))
	}
	if len(c.Services) != 6 {
		t.Errorf("expected 6 services, got %d", len(c.Services))
	}
	if len(c.BlogStubs) != 6 {
		t.Errorf("expected 6 blog stubs, got %d", len(c.BlogStubs))
	}
}

func TestBuildIndex_OrderAndCount(t *testing.T) {
	c, err := LoadCatalog()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	records := BuildIndex(c)

	if len(records) != 19 {
		t.Fatalf("expected 19 records, got %d", len(records))
	}
	// Pages first, then services, then blog stubs.
	if records[0].ID != "home" || records[0].Category != CategoryPage {
		t.Errorf("expected first record to be the home page, got %q (%s)", records[0].ID, records[0].Category)
	}
	if records[7].Category != CategoryService {
		t.Errorf("expected record 7 to be a service, got %s", records[7].Category)
	}
	if records[13].Category != CategoryBlog {
		t.Errorf("expected record 13 to be a blog stub, got %s", records[13].Category)
	}
}

// TestBuildIndex_UniqueIDs verifies the index invariant: IDs are unique
// within one snapshot.
func TestBuildIndex_UniqueIDs(t *testing.T) {
	c, _ := LoadCatalog()
	records := BuildIndex(c)

	seen := make(map[string]bool, len(records))
	for _, r := range records {
		if r.ID == "" {
			t.Error("record with empty id")
		}
		if seen[r.ID] {
			t.Errorf("duplicate record id %q", r.ID)
		}
		seen[r.ID] = true
	}
}

// TestBuildIndex_ServiceContent verifies service record content is the
// long description plus every feature title and description.
func TestBuildIndex_ServiceContent(t *testing.T) {
	c, _ := LoadCatalog()
	records := BuildIndex(c)

	var svc *Record
	for i := range records {
		if records[i].ID == "service-prototyping-ux-design" {
			svc = &records[i]
			break
		}
	}
	if svc == nil {
		t.Fatal("service-prototyping-ux-design not indexed")
	}
	entry := c.ServiceBySlug("prototyping-ux-design")
	if entry == nil {
		t.Fatal("service missing from catalog")
	}
	if !strings.HasPrefix(svc.Content, entry.About) {
		t.Error("service content should start with the about text")
	}
	for _, f := range entry.Features {
		if !strings.Contains(svc.Content, f.Title) {
			t.Errorf("service content missing feature title %q", f.Title)
		}
		if !strings.Contains(svc.Content, f.Description) {
			t.Errorf("service content missing feature description %q", f.Title)
		}
	}
	if svc.Href != "/services/prototyping-ux-design" {
		t.Errorf("unexpected href %q", svc.Href)
	}
}

func TestBuildIndex_Deterministic(t *testing.T) {
	c, _ := LoadCatalog()
	a := BuildIndex(c)
	b := BuildIndex(c)

	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("record %d differs between builds", i)
		}
	}
}

func TestServiceBySlug_Absent(t *testing.T) {
	c, _ := LoadCatalog()
	if s := c.ServiceBySlug("no-such-service"); s != nil {
		t.Errorf("expected nil, got %+v", s)
	}
}
