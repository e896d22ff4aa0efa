package pathutil

import "testing"

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		path     string
		expected string
	}{
		{"/articles/123", "/articles/{id}"},
		{"/articles/123/", "/articles/{id}"},
		{"/articles/123?fields=title", "/articles/{id}"},
		{"/articles", "/articles"},
		{"/articles/search", "/articles/search"},
		{"/shopping-list/9", "/shopping-list/{id}"},
		{"/shopping-list/page/3", "/shopping-list/page/{page}"},
		{"/shopping-list/search", "/shopping-list/search"},
		{"/health", "/health"},
		{"/", "/"},
		{"/unknown/path/123", "/unknown/path/123"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := NormalizePath(tt.path); got != tt.expected {
				t.Errorf("NormalizePath(%q) = %q, want %q", tt.path, got, tt.expected)
			}
		})
	}
}

func TestNormalizePath_Cardinality(t *testing.T) {
	unique := make(map[string]bool)
	for _, path := range []string{"/shopping-list/1", "/shopping-list/2", "/shopping-list/999999"} {
		unique[NormalizePath(path)] = true
	}

	if len(unique) != 1 {
		t.Errorf("expected cardinality of 1, got %d unique paths: %v", len(unique), unique)
	}
}
