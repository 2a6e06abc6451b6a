package webanalysis

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"
)

func TestSummarize_CompletePage(t *testing.T) {
	html := `<!DOCTYPE html><html lang="en"><head>
		<title>Acme Store</title>
		<meta name="description" content="Buy widgets">
		<meta name="viewport" content="width=device-width">
		<style>body { color: #333; font-family: Arial; display: flex; }</style>
	</head><body>
		<header><h1>Acme</h1></header>
		<nav><a href="#main">Skip</a></nav>
		<main id="main"><p>Shop our products</p><img src="w.png" alt="widget"></main>
		<footer>2024</footer>
	</body></html>`

	s := Summarize(html, "https://acme.example.com/store")

	if s.Metadata.Title != "Acme Store" {
		t.Errorf("Metadata.Title = %q, want %q", s.Metadata.Title, "Acme Store")
	}
	if s.Metadata.Domain != "acme.example.com" {
		t.Errorf("Metadata.Domain = %q, want %q", s.Metadata.Domain, "acme.example.com")
	}
	if s.Structure.LayoutType != "simple-page" {
		t.Errorf("Structure.LayoutType = %q, want %q", s.Structure.LayoutType, "simple-page")
	}
	if s.Content.Type != "e-commerce" {
		t.Errorf("Content.Type = %q, want %q", s.Content.Type, "e-commerce")
	}
	if !s.Design.UsesFlexbox {
		t.Error("Design.UsesFlexbox = false, want true")
	}
	if s.Technical.HTMLVersion != "HTML5" {
		t.Errorf("Technical.HTMLVersion = %q, want %q", s.Technical.HTMLVersion, "HTML5")
	}
	if !s.Accessibility.HasSkipLinks {
		t.Error("Accessibility.HasSkipLinks = false, want true")
	}
}

func TestSummarize_Deterministic(t *testing.T) {
	html := `<html><body><h1>Page</h1><section>a</section><aside>s</aside></body></html>`

	first := Summarize(html, "https://example.com")
	second := Summarize(html, "https://example.com")

	if !reflect.DeepEqual(first, second) {
		t.Error("two runs on identical input produced different summaries")
	}
}

func TestSummarize_EmptyInputDegradesToDefaults(t *testing.T) {
	s := Summarize("", "")

	if s.Metadata.Title != "Untitled" {
		t.Errorf("Metadata.Title = %q, want %q", s.Metadata.Title, "Untitled")
	}
	if s.Metadata.Viewport != "missing" {
		t.Errorf("Metadata.Viewport = %q, want %q", s.Metadata.Viewport, "missing")
	}
	if s.Structure.LayoutType != "simple-page" {
		t.Errorf("Structure.LayoutType = %q, want %q", s.Structure.LayoutType, "simple-page")
	}
	if s.Content.Type != "informational" {
		t.Errorf("Content.Type = %q, want %q", s.Content.Type, "informational")
	}
	if s.Design.DesignSystem != "custom" {
		t.Errorf("Design.DesignSystem = %q, want %q", s.Design.DesignSystem, "custom")
	}
	if s.Technical.HTMLVersion != "Legacy HTML" {
		t.Errorf("Technical.HTMLVersion = %q, want %q", s.Technical.HTMLVersion, "Legacy HTML")
	}
	if !s.Accessibility.HasAltTexts {
		t.Error("Accessibility.HasAltTexts = false, want true (vacuous)")
	}
	if s.Accessibility.FormLabels.Percentage != 100 {
		t.Errorf("FormLabels.Percentage = %d, want 100", s.Accessibility.FormLabels.Percentage)
	}
}

// The summary serializes with no null arrays: heading and design slices
// must encode as [] even when empty.
func TestSummarize_JSONHasNoNullArrays(t *testing.T) {
	s := Summarize(`<html><body><p>x</p></body></html>`, "")

	data, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	for _, field := range []string{`"h1":[]`, `"h2":[]`, `"h3":[]`, `"colors":[]`, `"fonts":[]`} {
		if !strings.Contains(string(data), field) {
			t.Errorf("serialized summary missing %s: %s", field, data)
		}
	}
}
