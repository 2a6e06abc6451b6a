package webanalysis

import (
	"math"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/SkorpionOP/UI-UX-Analyzer/internal/model"
)

func analyzeAccessibility(doc *goquery.Document) model.Accessibility {
	a := model.Accessibility{
		HasAltTexts:     true, // vacuously true with no images
		HasAriaLabels:   doc.Find("[aria-label], [aria-labelledby]").Length() > 0,
		HasSemanticHTML: doc.Find("header, nav, main, article, section, aside, footer").Length() > 0,
		HasSkipLinks:    doc.Find(`a[href^="#"]`).Length() > 0,
		ColorContrast:   "unknown", // requires rendering; deliberately not evaluated
	}

	doc.Find("img").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if _, ok := s.Attr("alt"); !ok {
			a.HasAltTexts = false
			return false
		}
		return true
	})

	a.HeadingStructure = analyzeHeadingStructure(doc)
	a.FormLabels = analyzeFormLabels(doc)
	return a
}

// headingLevels collects heading levels 1-6 in document order.
func headingLevels(doc *goquery.Document) []int {
	var levels []int
	doc.Find("h1, h2, h3, h4, h5, h6").Each(func(_ int, s *goquery.Selection) {
		name := goquery.NodeName(s)
		if len(name) == 2 && name[0] == 'h' {
			levels = append(levels, int(name[1]-'0'))
		}
	})
	return levels
}

// properHierarchy reports whether no heading increases by more than one
// level over the heading immediately before it. Decreases and same-level
// repeats are always allowed; only upward jumps greater than 1 violate
// the rule, so [1,2,4] fails and [3,1,2] passes.
func properHierarchy(levels []int) bool {
	for i := 1; i < len(levels); i++ {
		if levels[i]-levels[i-1] > 1 {
			return false
		}
	}
	return true
}

func analyzeHeadingStructure(doc *goquery.Document) model.HeadingStructure {
	levels := headingLevels(doc)

	h1Count := 0
	for _, l := range levels {
		if l == 1 {
			h1Count++
		}
	}

	return model.HeadingStructure{
		HasH1:           h1Count > 0,
		MultipleH1:      h1Count > 1,
		ProperHierarchy: properHierarchy(levels),
	}
}

// analyzeFormLabels counts form controls with an accessible label: an
// aria-label/aria-labelledby attribute, a <label for> referencing the
// control's id, or nesting inside a <label>. A page with no controls
// reports 100%.
func analyzeFormLabels(doc *goquery.Document) model.FormLabels {
	controls := doc.Find("input, textarea, select")
	total := controls.Length()
	if total == 0 {
		return model.FormLabels{Total: 0, Labeled: 0, Percentage: 100}
	}

	labeled := 0
	controls.Each(func(_ int, s *goquery.Selection) {
		if isLabeled(doc, s) {
			labeled++
		}
	})

	return model.FormLabels{
		Total:      total,
		Labeled:    labeled,
		Percentage: int(math.Round(float64(labeled) / float64(total) * 100)),
	}
}

func isLabeled(doc *goquery.Document, s *goquery.Selection) bool {
	if _, ok := s.Attr("aria-label"); ok {
		return true
	}
	if _, ok := s.Attr("aria-labelledby"); ok {
		return true
	}
	if id, ok := s.Attr("id"); ok && id != "" && !strings.ContainsAny(id, `"\`) {
		if doc.Find(`label[for="`+id+`"]`).Length() > 0 {
			return true
		}
	}
	return s.Closest("label").Length() > 0
}
