package webanalysis

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/SkorpionOP/UI-UX-Analyzer/internal/model"
)

// analyzeDesign mines the page's style corpus. Meaningful results depend on
// the CSS inliner having already rewritten external stylesheet links into
// <style> elements: links that were never inlined contribute nothing here.
func analyzeDesign(doc *goquery.Document) model.Design {
	var corpus strings.Builder
	doc.Find("style").Each(func(_ int, s *goquery.Selection) {
		corpus.WriteString(s.Text())
		corpus.WriteString("\n")
	})
	css := corpus.String()

	f := mineStyles(css)
	return model.Design{
		Colors:        f.Colors,
		Fonts:         f.Fonts,
		HasAnimations: f.HasAnimations,
		UsesGrid:      f.UsesGrid,
		UsesFlexbox:   f.UsesFlexbox,
		IsResponsive:  f.IsResponsive,
		HasDarkMode:   f.HasDarkMode,
		DesignSystem:  detectDesignSystem(doc, css),
	}
}

// detectDesignSystem returns the first matching framework label. Body
// classes are checked alongside style text because CDN-loaded frameworks
// often leave no local CSS to mine.
func detectDesignSystem(doc *goquery.Document, css string) string {
	bodyClass := strings.ToLower(doc.Find("body").First().AttrOr("class", ""))
	lower := strings.ToLower(css)

	switch {
	case strings.Contains(bodyClass, "bootstrap") || strings.Contains(lower, "bootstrap"):
		return "bootstrap"
	case strings.Contains(bodyClass, "tailwind") || strings.Contains(lower, "tailwind"):
		return "tailwind"
	case strings.Contains(lower, "material") || doc.Find(`[class*="mat-"]`).Length() > 0:
		return "material"
	default:
		return "custom"
	}
}
