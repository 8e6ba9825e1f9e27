package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLocalStorage_Save(t *testing.T) {
	dir := t.TempDir()
	s := NewLocalStorage(dir, "https://cdn.example.com/uploads/")

	url, err := s.Save(context.Background(), "covers/2026-08-29/abc.jpg", strings.NewReader("image-bytes"), "image/jpeg")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if url != "https://cdn.example.com/uploads/covers/2026-08-29/abc.jpg" {
		t.Errorf("unexpected url %q", url)
	}

	data, err := os.ReadFile(filepath.Join(dir, "covers", "2026-08-29", "abc.jpg"))
	if err != nil {
		t.Fatalf("file not written: %v", err)
	}
	if string(data) != "image-bytes" {
		t.Errorf("unexpected file contents %q", data)
	}
}
