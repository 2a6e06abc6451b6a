package webanalysis

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// DefaultInlineBudget caps the cumulative bytes of normalized CSS inlined
// into one document.
const DefaultInlineBudget = 80000

var (
	reCSSComment    = regexp.MustCompile(`/\*[\s\S]*?\*/`)
	reWhitespaceRun = regexp.MustCompile(`\s+`)
)

// Inliner rewrites external stylesheet references into inline <style>
// elements under a cumulative byte budget, so the design analyzer has
// style text to mine.
type Inliner struct {
	fetcher StyleFetcher
	logger  *slog.Logger
}

// NewInliner returns an Inliner using the given fetcher for stylesheet
// retrieval.
func NewInliner(fetcher StyleFetcher, logger *slog.Logger) *Inliner {
	return &Inliner{fetcher: fetcher, logger: logger}
}

// Inline fetches each external stylesheet in document order and replaces
// its <link> with a <style> element at the same cascade position.
//
// Two budget checks run on purpose. The loop guard abandons all remaining
// links once the committed total is strictly over budget; the per-candidate
// commit check skips a single stylesheet whose addition would overshoot,
// while the loop continues because a smaller later stylesheet may still
// fit. Fetches are strictly sequential so which stylesheets get inlined
// never depends on network race order. Individual fetch failures and
// malformed hrefs are logged and skipped, never escalated: the worst case
// is a document with zero stylesheets inlined.
func (in *Inliner) Inline(ctx context.Context, markup, baseURL string, budget int) (string, error) {
	if budget <= 0 {
		budget = DefaultInlineBudget
	}

	doc, err := parseDocument(markup)
	if err != nil {
		return "", fmt.Errorf("parse document: %w", err)
	}
	base, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("parse base URL %q: %w", baseURL, err)
	}

	total := 0
	doc.Find(`link[rel="stylesheet"][href]`).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if total > budget {
			in.logger.Warn("inline budget exhausted, leaving remaining stylesheets as links",
				"inlined_bytes", total, "budget", budget)
			return false
		}

		href := strings.TrimSpace(s.AttrOr("href", ""))
		ref, err := url.Parse(href)
		if err != nil {
			in.logger.Warn("skipping malformed stylesheet href", "href", href, "error", err)
			return true
		}
		target := base.ResolveReference(ref).String()

		css, err := in.fetcher.FetchStylesheet(ctx, target)
		if err != nil {
			in.logger.Warn("skipping stylesheet", "url", target, "error", err)
			return true
		}

		css = normalizeCSS(css)
		if total+len(css) > budget {
			in.logger.Debug("stylesheet skipped, would exceed inline budget",
				"url", target, "size", len(css), "inlined_bytes", total, "budget", budget)
			return true
		}

		s.ReplaceWithHtml("<style>" + css + "</style>")
		total += len(css)
		return true
	})

	out, err := doc.Html()
	if err != nil {
		return "", fmt.Errorf("serialize document: %w", err)
	}
	return out, nil
}

// normalizeCSS strips block comments, collapses whitespace runs to a
// single space, and trims.
func normalizeCSS(css string) string {
	css = reCSSComment.ReplaceAllString(css, "")
	css = reWhitespaceRun.ReplaceAllString(css, " ")
	return strings.TrimSpace(css)
}
