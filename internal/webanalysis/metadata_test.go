package webanalysis

import (
	"testing"

	"github.com/PuerkitoBio/goquery"
)

// mustParse is the shared parse helper for all analyzer tests.
func mustParse(t *testing.T, markup string) *goquery.Document {
	t.Helper()
	doc, err := parseDocument(markup)
	if err != nil {
		t.Fatalf("parseDocument: %v", err)
	}
	return doc
}

func TestAnalyzeMetadata(t *testing.T) {
	tests := []struct {
		name      string
		html      string
		sourceURL string
		expected  struct {
			title, description, keywords, domain, language, viewport string
		}
	}{
		{
			name: "fully populated head",
			html: `<!DOCTYPE html><html lang="de"><head>
				<title>  Mein Shop  </title>
				<meta name="description" content="Ein Laden">
				<meta name="keywords" content="shop,laden">
				<meta name="viewport" content="width=device-width, initial-scale=1.0">
			</head><body></body></html>`,
			sourceURL: "https://shop.example.de/products?page=2",
			expected: struct {
				title, description, keywords, domain, language, viewport string
			}{"Mein Shop", "Ein Laden", "shop,laden", "shop.example.de", "de", "width=device-width, initial-scale=1.0"},
		},
		{
			name:      "everything absent falls back to defaults",
			html:      `<html><head></head><body></body></html>`,
			sourceURL: "",
			expected: struct {
				title, description, keywords, domain, language, viewport string
			}{"Untitled", "", "", "", "en", "missing"},
		},
		{
			name:      "malformed source URL degrades to empty domain",
			html:      `<html><head><title>Page</title></head><body></body></html>`,
			sourceURL: "http://%zz-not-a-url",
			expected: struct {
				title, description, keywords, domain, language, viewport string
			}{"Page", "", "", "", "en", "missing"},
		},
		{
			name:      "whitespace-only title falls back to Untitled",
			html:      `<html><head><title>   </title></head><body></body></html>`,
			sourceURL: "",
			expected: struct {
				title, description, keywords, domain, language, viewport string
			}{"Untitled", "", "", "", "en", "missing"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := analyzeMetadata(mustParse(t, tt.html), tt.sourceURL)

			if meta.Title != tt.expected.title {
				t.Errorf("Title = %q, want %q", meta.Title, tt.expected.title)
			}
			if meta.Description != tt.expected.description {
				t.Errorf("Description = %q, want %q", meta.Description, tt.expected.description)
			}
			if meta.Keywords != tt.expected.keywords {
				t.Errorf("Keywords = %q, want %q", meta.Keywords, tt.expected.keywords)
			}
			if meta.Domain != tt.expected.domain {
				t.Errorf("Domain = %q, want %q", meta.Domain, tt.expected.domain)
			}
			if meta.Language != tt.expected.language {
				t.Errorf("Language = %q, want %q", meta.Language, tt.expected.language)
			}
			if meta.Viewport != tt.expected.viewport {
				t.Errorf("Viewport = %q, want %q", meta.Viewport, tt.expected.viewport)
			}
		})
	}
}
