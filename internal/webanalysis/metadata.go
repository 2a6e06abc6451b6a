package webanalysis

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/SkorpionOP/UI-UX-Analyzer/internal/model"
)

// analyzeMetadata extracts head-level metadata. Every field degrades to a
// default on absence; a malformed source URL degrades to an empty domain
// instead of failing the analysis.
func analyzeMetadata(doc *goquery.Document, sourceURL string) model.Metadata {
	meta := model.Metadata{
		Title:    "Untitled",
		Language: "en",
		Viewport: "missing",
	}

	if title := strings.TrimSpace(doc.Find("title").First().Text()); title != "" {
		meta.Title = title
	}

	meta.Description = strings.TrimSpace(doc.Find(`meta[name="description"]`).First().AttrOr("content", ""))
	meta.Keywords = strings.TrimSpace(doc.Find(`meta[name="keywords"]`).First().AttrOr("content", ""))

	if sourceURL != "" {
		if u, err := url.Parse(sourceURL); err == nil {
			meta.Domain = u.Hostname()
		}
	}

	if lang := strings.TrimSpace(doc.Find("html").First().AttrOr("lang", "")); lang != "" {
		meta.Language = lang
	}

	// An empty content attribute is still a present viewport tag; only a
	// missing tag produces the "missing" sentinel.
	if viewport, ok := doc.Find(`meta[name="viewport"]`).First().Attr("content"); ok {
		meta.Viewport = viewport
	}

	return meta
}
