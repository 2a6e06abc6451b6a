package redesign

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/SkorpionOP/UI-UX-Analyzer/internal/webanalysis"
)

// buildPrompt renders one analysis into a generation request. The clean
// template is already size-bounded by the reducer, which keeps the request
// within model context limits.
func buildPrompt(analysis *webanalysis.Analysis, style string) string {
	summaryJSON, err := json.MarshalIndent(analysis.Summary, "", "  ")
	if err != nil {
		summaryJSON = []byte("{}")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Redesign the website at %s.\n\n", analysis.URL)
	if style = strings.TrimSpace(style); style != "" {
		fmt.Fprintf(&b, "Requested style direction: %s\n\n", style)
	}
	b.WriteString("Analysis of the current site:\n")
	b.Write(summaryJSON)
	b.WriteString("\n\nCurrent page template (cleaned):\n")
	b.WriteString(analysis.Template)
	b.WriteString("\n\nProduce a modernized, accessible, responsive version ")
	b.WriteString("that keeps the original content and information architecture.")
	return b.String()
}
