package webanalysis

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// parseDocument parses raw markup into a queryable tree. The underlying
// parser is lenient: malformed or partial HTML still yields a tree, so the
// only error case is a reader failure, which a string reader cannot produce.
//
// Analyzers treat the returned document as read-only. The template reducer
// and the CSS inliner each parse their own working copy so their mutations
// never leak into analysis.
func parseDocument(markup string) (*goquery.Document, error) {
	return goquery.NewDocumentFromReader(strings.NewReader(markup))
}
