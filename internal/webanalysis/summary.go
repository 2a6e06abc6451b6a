package webanalysis

import (
	"github.com/SkorpionOP/UI-UX-Analyzer/internal/model"
)

// Summarize analyzes raw HTML and returns the aggregate summary. It is
// total: malformed markup parses leniently, absent data degrades to
// defaults, and byte-identical input always yields identical output. The
// six analyzers are independent; this function only composes them.
//
// For meaningful design findings, run the CSS inliner over the markup
// first so external stylesheets appear as <style> elements.
func Summarize(markup, sourceURL string) model.WebsiteSummary {
	doc, err := parseDocument(markup)
	if err != nil {
		return defaultSummary()
	}

	return model.WebsiteSummary{
		Metadata:      analyzeMetadata(doc, sourceURL),
		Structure:     analyzeStructure(doc),
		Content:       analyzeContent(doc),
		Design:        analyzeDesign(doc),
		Technical:     analyzeTechnical(doc),
		Accessibility: analyzeAccessibility(doc),
	}
}

// defaultSummary is the worst-case result: every sub-record at its
// documented default.
func defaultSummary() model.WebsiteSummary {
	return model.WebsiteSummary{
		Metadata: model.Metadata{Title: "Untitled", Language: "en", Viewport: "missing"},
		Structure: model.Structure{
			LayoutType: "simple-page",
		},
		Content: model.Content{
			Headings: model.Headings{H1: []string{}, H2: []string{}, H3: []string{}},
			Type:     "informational",
		},
		Design: model.Design{
			Colors:       []string{},
			Fonts:        []string{},
			DesignSystem: "custom",
		},
		Technical: model.Technical{HTMLVersion: "Legacy HTML"},
		Accessibility: model.Accessibility{
			HasAltTexts:      true,
			HeadingStructure: model.HeadingStructure{ProperHierarchy: true},
			FormLabels:       model.FormLabels{Percentage: 100},
			ColorContrast:    "unknown",
		},
	}
}
