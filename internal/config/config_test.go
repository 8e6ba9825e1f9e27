package config

import "testing"

func TestParseLeadProvider(t *testing.T) {
	cases := []struct {
		in   string
		want LeadProvider
		ok   bool
	}{
		{"", ProviderSupabase, true},
		{"supabase", ProviderSupabase, true},
		{"SUPABASE", ProviderSupabase, true},
		{"googlesheets", ProviderGoogleSheets, true},
		{"google-sheets", ProviderGoogleSheets, true},
		{"google_sheets", ProviderGoogleSheets, true},
		{"GoogleSheets", ProviderGoogleSheets, true},
		{"airtable", ProviderSupabase, false},
		{"  supabase  ", ProviderSupabase, true},
	}
	for _, c := range cases {
		got, ok := ParseLeadProvider(c.in)
		if got != c.want || ok != c.ok {
			t.Errorf("ParseLeadProvider(%q) = (%v, %v), want (%v, %v)", c.in, got, ok, c.want, c.ok)
		}
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("LEADS_PROVIDER", "")
	t.Setenv("BLOG_ADMIN_ENABLED", "")
	t.Setenv("DATABASE_URL", "")

	cfg := Load()
	if cfg.LeadProvider != ProviderSupabase {
		t.Errorf("expected default provider supabase, got %v", cfg.LeadProvider)
	}
	if cfg.BlogAdmin {
		t.Error("blog admin should default to disabled")
	}
	if cfg.DatabaseURL == "" {
		t.Error("expected database URL default")
	}
}

func TestLoad_UnrecognizedProviderFallsBack(t *testing.T) {
	t.Setenv("LEADS_PROVIDER", "notion")

	cfg := Load()
	if cfg.LeadProvider != ProviderSupabase {
		t.Errorf("unrecognized provider should fall back to supabase, got %v", cfg.LeadProvider)
	}
}

func TestLoad_BlogAdminFlag(t *testing.T) {
	for _, v := range []string{"true", "TRUE", "True"} {
		t.Setenv("BLOG_ADMIN_ENABLED", v)
		if !Load().BlogAdmin {
			t.Errorf("BLOG_ADMIN_ENABLED=%q should enable the admin surface", v)
		}
	}
	for _, v := range []string{"", "false", "1", "yes"} {
		t.Setenv("BLOG_ADMIN_ENABLED", v)
		if Load().BlogAdmin {
			t.Errorf("BLOG_ADMIN_ENABLED=%q should leave the admin surface disabled", v)
		}
	}
}
