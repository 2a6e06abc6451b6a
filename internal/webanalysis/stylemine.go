package webanalysis

import (
	"regexp"
	"sort"
	"strings"
)

// styleFeatures is everything the design analyzer learns from raw style
// text. Mining is pattern-based on purpose: a heuristic approximation of a
// CSS parser, kept behind this one narrow entry point so a real parser
// could replace it without touching callers. Color-like or font-like
// substrings inside string literals can produce false positives.
type styleFeatures struct {
	Colors        []string
	Fonts         []string
	HasAnimations bool
	UsesGrid      bool
	UsesFlexbox   bool
	IsResponsive  bool
	HasDarkMode   bool
}

const (
	maxColors = 10
	maxFonts  = 5
)

var (
	reHexColor   = regexp.MustCompile(`#[0-9a-fA-F]{3,6}\b`)
	reRGBColor   = regexp.MustCompile(`rgba?\([^)]*\)`)
	reNamedColor = regexp.MustCompile(`(?i):\s*(red|blue|green|black|white|gray|yellow|orange|purple|pink|brown)\b`)
	reFontFamily = regexp.MustCompile(`(?i)font-family\s*:\s*([^;}]+)`)
	reAnimation  = regexp.MustCompile(`(?i)animation|transition|transform`)
	reGrid       = regexp.MustCompile(`(?i)display\s*:\s*grid|grid-template`)
	reFlexbox    = regexp.MustCompile(`(?i)display\s*:\s*flex|flex-direction`)
)

func mineStyles(css string) styleFeatures {
	return styleFeatures{
		Colors:        extractColors(css),
		Fonts:         extractFonts(css),
		HasAnimations: reAnimation.MatchString(css),
		UsesGrid:      reGrid.MatchString(css),
		UsesFlexbox:   reFlexbox.MatchString(css),
		IsResponsive:  strings.Contains(css, "@media"),
		HasDarkMode:   detectDarkMode(css),
	}
}

// extractColors merges hex tokens, rgb()/rgba() tokens, and a closed set
// of named colors, ordered by first occurrence in the style text,
// deduplicated, capped at maxColors.
func extractColors(css string) []string {
	type hit struct {
		pos   int
		token string
	}
	var hits []hit

	for _, m := range reHexColor.FindAllStringIndex(css, -1) {
		hits = append(hits, hit{m[0], strings.ToLower(css[m[0]:m[1]])})
	}
	for _, m := range reRGBColor.FindAllStringIndex(css, -1) {
		hits = append(hits, hit{m[0], strings.ReplaceAll(css[m[0]:m[1]], " ", "")})
	}
	for _, m := range reNamedColor.FindAllStringSubmatchIndex(css, -1) {
		// m[2]:m[3] is the captured color name, without the leading colon.
		hits = append(hits, hit{m[2], strings.ToLower(css[m[2]:m[3]])})
	}

	sort.SliceStable(hits, func(i, j int) bool { return hits[i].pos < hits[j].pos })

	seen := make(map[string]struct{}, len(hits))
	colors := []string{}
	for _, h := range hits {
		if _, dup := seen[h.token]; dup {
			continue
		}
		seen[h.token] = struct{}{}
		colors = append(colors, h.token)
		if len(colors) == maxColors {
			break
		}
	}
	return colors
}

// extractFonts collects font-family declaration values, deduplicated
// case-insensitively, capped at maxFonts.
func extractFonts(css string) []string {
	seen := make(map[string]struct{})
	fonts := []string{}
	for _, m := range reFontFamily.FindAllStringSubmatch(css, -1) {
		font := strings.TrimSpace(m[1])
		if font == "" {
			continue
		}
		key := strings.ToLower(font)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		fonts = append(fonts, font)
		if len(fonts) == maxFonts {
			break
		}
	}
	return fonts
}

// detectDarkMode is a keyword heuristic over lower-cased style text.
func detectDarkMode(css string) bool {
	lower := strings.ToLower(css)
	return strings.Contains(lower, "prefers-color-scheme: dark") ||
		strings.Contains(lower, "prefers-color-scheme:dark") ||
		strings.Contains(lower, "dark-mode") ||
		strings.Contains(lower, "darkmode") ||
		strings.Contains(lower, ".dark")
}
