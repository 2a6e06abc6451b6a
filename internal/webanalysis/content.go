package webanalysis

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/SkorpionOP/UI-UX-Analyzer/internal/model"
)

// Per-level caps on captured heading text. The summary is a bounded
// record, not a full outline.
const (
	maxH1 = 3
	maxH2 = 5
	maxH3 = 5
)

func analyzeContent(doc *goquery.Document) model.Content {
	c := model.Content{
		Headings: model.Headings{
			H1: headingTexts(doc, "h1", maxH1),
			H2: headingTexts(doc, "h2", maxH2),
			H3: headingTexts(doc, "h3", maxH3),
		},
		ParagraphCount: doc.Find("p").Length(),
		ImageCount:     doc.Find("img").Length(),
		LinkCount:      doc.Find("a").Length(),
		FormCount:      doc.Find("form").Length(),
		ButtonCount:    doc.Find("button").Length() + doc.Find(`input[type="button"], input[type="submit"]`).Length(),
	}
	c.Type = classifyContent(doc, c.FormCount)
	return c
}

// headingTexts collects heading text in document order, up to limit.
func headingTexts(doc *goquery.Document, tag string, limit int) []string {
	texts := []string{}
	doc.Find(tag).EachWithBreak(func(i int, s *goquery.Selection) bool {
		if i >= limit {
			return false
		}
		texts = append(texts, strings.TrimSpace(s.Text()))
		return true
	})
	return texts
}

// classifyContent labels the page by case-insensitive keyword search over
// the visible body text. First match wins, so "shop" on a page that also
// mentions "blog" classifies as e-commerce.
func classifyContent(doc *goquery.Document, formCount int) string {
	text := strings.ToLower(doc.Find("body").Text())
	if text == "" {
		text = strings.ToLower(doc.Text())
	}

	switch {
	case containsAny(text, "shop", "product", "cart", "buy"):
		return "e-commerce"
	case containsAny(text, "portfolio", "work", "project"):
		return "portfolio"
	case containsAny(text, "blog", "article") || doc.Find("article").Length() > 0:
		return "blog"
	case containsAny(text, "service", "business", "company"):
		return "business"
	case formCount > 0:
		return "application"
	default:
		return "informational"
	}
}

func containsAny(text string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}
