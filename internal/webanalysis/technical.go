package webanalysis

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/SkorpionOP/UI-UX-Analyzer/internal/model"
)

func analyzeTechnical(doc *goquery.Document) model.Technical {
	return model.Technical{
		HasJavascript:       doc.Find("script").Length() > 0,
		ExternalStylesheets: doc.Find(`link[rel="stylesheet"]`).Length(),
		InlineStyles:        doc.Find("style").Length(),
		MetaTagCount:        doc.Find("meta").Length(),
		HTMLVersion:         detectHTMLVersion(doc),
		HasServiceWorker:    detectServiceWorker(doc),
		HasManifest:         doc.Find(`link[rel="manifest"]`).Length() > 0,
	}
}

// detectHTMLVersion reports "HTML5" when the parse tree carries a doctype
// node. goquery selectors cannot match doctypes, so this walks the root's
// children directly.
func detectHTMLVersion(doc *goquery.Document) string {
	for _, root := range doc.Nodes {
		for n := root.FirstChild; n != nil; n = n.NextSibling {
			if n.Type == html.DoctypeNode {
				return "HTML5"
			}
		}
	}
	return "Legacy HTML"
}

// detectServiceWorker searches the body markup for a service-worker
// registration mention. A substring check, not script analysis.
func detectServiceWorker(doc *goquery.Document) bool {
	markup, err := doc.Find("body").Html()
	if err != nil {
		return false
	}
	lower := strings.ToLower(markup)
	return strings.Contains(lower, "serviceworker") ||
		strings.Contains(lower, "service-worker") ||
		strings.Contains(lower, "sw.js")
}
