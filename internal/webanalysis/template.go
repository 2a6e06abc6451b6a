package webanalysis

import (
	stdhtml "html"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// maxTemplateSize is the character gate between the pruned-but-complete
// template and the skeleton fallback.
const maxTemplateSize = 50000

// removalSelectors target analytics, social and tracking scripts,
// non-essential async scripts, noscript fallbacks, and ad-marked
// containers. The criteria do not overlap, so removal order is
// irrelevant.
var removalSelectors = []string{
	`script[src*="analytics"]`,
	`script[src*="googletagmanager"]`,
	`script[src*="gtag"]`,
	`script[src*="doubleclick"]`,
	`script[src*="facebook"]`,
	`script[src*="twitter"]`,
	`script[src*="hotjar"]`,
	`script[src*="ads"]`,
	`script[async]`,
	`noscript`,
	`.ad`, `.ads`, `.advertisement`, `.ad-banner`,
	`[class*="ad-container"]`,
	`[id*="google_ads"]`,
	`[data-ad]`,
	`iframe[src*="ads"]`,
}

// ReduceTemplate strips non-essential nodes from the document and returns
// the pruned markup when it fits under the size gate. An oversized result
// is discarded for a fixed-shape structural skeleton: a lossy escape valve
// that keeps one representative of each landmark so downstream processing
// cost stays bounded.
func ReduceTemplate(markup string) string {
	doc, err := parseDocument(markup)
	if err != nil {
		return markup
	}

	for _, sel := range removalSelectors {
		doc.Find(sel).Remove()
	}

	pruned, err := doc.Html()
	if err != nil {
		return markup
	}
	if len(pruned) <= maxTemplateSize {
		return pruned
	}

	return buildSkeleton(doc)
}

// buildSkeleton assembles a minimal document from the first instance of
// each landmark, in a fixed order: lang-preserving doctype, charset and
// viewport metas, title, first inline style block, then header, nav,
// main (or the whole body when no <main> exists), footer.
func buildSkeleton(doc *goquery.Document) string {
	lang := strings.TrimSpace(doc.Find("html").First().AttrOr("lang", ""))
	if lang == "" {
		lang = "en"
	}
	title := strings.TrimSpace(doc.Find("title").First().Text())

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n")
	b.WriteString(`<html lang="` + lang + "\">\n<head>\n")
	b.WriteString("<meta charset=\"UTF-8\">\n")
	b.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1.0\">\n")
	b.WriteString("<title>" + stdhtml.EscapeString(title) + "</title>\n")
	if style := firstOuterHTML(doc, "style"); style != "" {
		b.WriteString(style + "\n")
	}
	b.WriteString("</head>\n<body>\n")

	if header := firstOuterHTML(doc, "header"); header != "" {
		b.WriteString(header + "\n")
	}
	if nav := firstOuterHTML(doc, "nav"); nav != "" {
		b.WriteString(nav + "\n")
	}
	if mainContent := firstOuterHTML(doc, "main"); mainContent != "" {
		b.WriteString(mainContent + "\n")
	} else if body, err := doc.Find("body").First().Html(); err == nil {
		b.WriteString(body + "\n")
	}
	if footer := firstOuterHTML(doc, "footer"); footer != "" {
		b.WriteString(footer + "\n")
	}

	b.WriteString("</body>\n</html>")
	return b.String()
}

// firstOuterHTML serializes the first element matching tag, or returns ""
// when the document has none.
func firstOuterHTML(doc *goquery.Document, tag string) string {
	sel := doc.Find(tag).First()
	if sel.Length() == 0 {
		return ""
	}
	markup, err := goquery.OuterHtml(sel)
	if err != nil {
		return ""
	}
	return markup
}
