package webanalysis

import (
	"testing"
)

func TestAnalyzeAccessibility_AltTexts(t *testing.T) {
	tests := []struct {
		name     string
		html     string
		expected bool
	}{
		{
			name:     "no images is vacuously true",
			html:     `<html><body><p>text</p></body></html>`,
			expected: true,
		},
		{
			name:     "all images have alt",
			html:     `<html><body><img src="a.png" alt="a"><img src="b.png" alt=""></body></html>`,
			expected: true,
		},
		{
			name:     "one image missing alt",
			html:     `<html><body><img src="a.png" alt="a"><img src="b.png"></body></html>`,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := analyzeAccessibility(mustParse(t, tt.html))
			if a.HasAltTexts != tt.expected {
				t.Errorf("HasAltTexts = %v, want %v", a.HasAltTexts, tt.expected)
			}
		})
	}
}

func TestAnalyzeAccessibility_Flags(t *testing.T) {
	html := `<html><body>
		<a href="#main">Skip to content</a>
		<nav aria-label="Primary">menu</nav>
		<main id="main">content</main>
	</body></html>`

	a := analyzeAccessibility(mustParse(t, html))

	if !a.HasAriaLabels {
		t.Error("HasAriaLabels = false, want true")
	}
	if !a.HasSemanticHTML {
		t.Error("HasSemanticHTML = false, want true")
	}
	if !a.HasSkipLinks {
		t.Error("HasSkipLinks = false, want true")
	}
	if a.ColorContrast != "unknown" {
		t.Errorf("ColorContrast = %q, want %q", a.ColorContrast, "unknown")
	}
}

func TestProperHierarchy(t *testing.T) {
	tests := []struct {
		name     string
		levels   []int
		expected bool
	}{
		{name: "empty", levels: nil, expected: true},
		{name: "single heading", levels: []int{2}, expected: true},
		{name: "clean descent", levels: []int{1, 2, 3}, expected: true},
		{name: "jump of two fails", levels: []int{1, 2, 4}, expected: false},
		{name: "repeats allowed", levels: []int{1, 2, 2, 3}, expected: true},
		{name: "decreases unrestricted", levels: []int{3, 1, 2}, expected: true},
		{name: "reset then jump fails", levels: []int{1, 2, 1, 3}, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := properHierarchy(tt.levels); got != tt.expected {
				t.Errorf("properHierarchy(%v) = %v, want %v", tt.levels, got, tt.expected)
			}
		})
	}
}

func TestAnalyzeHeadingStructure(t *testing.T) {
	html := `<html><body>
		<h1>First</h1>
		<h2>Sub</h2>
		<h1>Second</h1>
	</body></html>`

	hs := analyzeHeadingStructure(mustParse(t, html))

	if !hs.HasH1 {
		t.Error("HasH1 = false, want true")
	}
	if !hs.MultipleH1 {
		t.Error("MultipleH1 = false, want true")
	}
	if !hs.ProperHierarchy {
		t.Error("ProperHierarchy = false, want true")
	}
}

func TestAnalyzeFormLabels(t *testing.T) {
	tests := []struct {
		name       string
		html       string
		total      int
		labeled    int
		percentage int
	}{
		{
			name:       "no controls reports full compliance",
			html:       `<html><body><p>no forms</p></body></html>`,
			total:      0,
			labeled:    0,
			percentage: 100,
		},
		{
			name:       "single unlabeled input",
			html:       `<html><body><input type="text"></body></html>`,
			total:      1,
			labeled:    0,
			percentage: 0,
		},
		{
			name: "label-for association",
			html: `<html><body>
				<label for="email">Email</label><input id="email" type="email">
			</body></html>`,
			total:      1,
			labeled:    1,
			percentage: 100,
		},
		{
			name: "nested inside label",
			html: `<html><body>
				<label>Name <input type="text"></label>
			</body></html>`,
			total:      1,
			labeled:    1,
			percentage: 100,
		},
		{
			name: "aria-label and aria-labelledby",
			html: `<html><body>
				<input type="search" aria-label="Search">
				<span id="t">Notes</span><textarea aria-labelledby="t"></textarea>
			</body></html>`,
			total:      2,
			labeled:    2,
			percentage: 100,
		},
		{
			name: "mixed controls round the percentage",
			html: `<html><body>
				<label for="a">A</label><input id="a" type="text">
				<select></select>
				<textarea></textarea>
			</body></html>`,
			total:      3,
			labeled:    1,
			percentage: 33,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fl := analyzeFormLabels(mustParse(t, tt.html))
			if fl.Total != tt.total {
				t.Errorf("Total = %d, want %d", fl.Total, tt.total)
			}
			if fl.Labeled != tt.labeled {
				t.Errorf("Labeled = %d, want %d", fl.Labeled, tt.labeled)
			}
			if fl.Percentage != tt.percentage {
				t.Errorf("Percentage = %d, want %d", fl.Percentage, tt.percentage)
			}
			if fl.Percentage < 0 || fl.Percentage > 100 {
				t.Errorf("Percentage = %d, outside [0,100]", fl.Percentage)
			}
		})
	}
}
