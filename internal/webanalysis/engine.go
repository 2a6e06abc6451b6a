package webanalysis

import (
	"context"
	"io"
	"log/slog"
	"net/url"

	"github.com/SkorpionOP/UI-UX-Analyzer/internal/model"
	"github.com/SkorpionOP/UI-UX-Analyzer/internal/platform/errs"
)

// Analysis bundles everything the engine produces for one page.
type Analysis struct {
	URL      string
	Summary  model.WebsiteSummary
	Template string
}

// Engine orchestrates page fetching, CSS inlining, summarization, and
// template reduction.
type Engine struct {
	fetcher Fetcher
	inliner *Inliner
	budget  int
	logger  *slog.Logger
}

// NewEngine returns an Engine backed by the given Fetcher and Inliner. A
// non-positive budget falls back to DefaultInlineBudget.
func NewEngine(fetcher Fetcher, inliner *Inliner, budget int, logger *slog.Logger) *Engine {
	if budget <= 0 {
		budget = DefaultInlineBudget
	}
	return &Engine{
		fetcher: fetcher,
		inliner: inliner,
		budget:  budget,
		logger:  logger,
	}
}

// Analyze fetches a URL, inlines its external CSS, and produces the
// website summary and clean template. Only the fetch and URL validation
// can fail; the analysis itself is total.
func (e *Engine) Analyze(ctx context.Context, targetURL string) (*Analysis, error) {
	parsed, err := url.Parse(targetURL)
	if err != nil {
		return nil, &errs.AppError{
			Kind:    errs.InvalidInput,
			Message: "Invalid URL format. Please ensure you entered a valid URL (e.g., https://example.com).",
			Cause:   err,
		}
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return nil, &errs.AppError{
			Kind:    errs.InvalidInput,
			Message: "Invalid URL format. Please ensure you entered a valid URL (e.g., https://example.com).",
		}
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, &errs.AppError{
			Kind:    errs.InvalidInput,
			Message: "Only http and https URLs are supported.",
		}
	}

	body, statusCode, err := e.fetcher.Fetch(ctx, targetURL)
	if err != nil {
		return nil, &errs.AppError{
			Kind:    errs.Unreachable,
			Message: "The provided URL could not be reached. Check the address.",
			Cause:   err,
		}
	}
	defer func() { _ = body.Close() }()

	if statusCode >= 400 {
		return nil, &errs.AppError{
			Kind:           errs.Unreachable,
			UpstreamStatus: statusCode,
			Message:        "The provided URL returned an error status.",
		}
	}

	raw, err := io.ReadAll(body)
	if err != nil {
		return nil, &errs.AppError{
			Kind:    errs.Unreachable,
			Message: "The page body could not be read.",
			Cause:   err,
		}
	}

	markup := string(raw)
	inlined, err := e.inliner.Inline(ctx, markup, targetURL, e.budget)
	if err != nil {
		// Inlining failure only costs design fidelity; analyze the
		// original markup instead.
		e.logger.Warn("css inlining failed, analyzing original markup", "url", targetURL, "error", err)
		inlined = markup
	}

	return &Analysis{
		URL:      targetURL,
		Summary:  Summarize(inlined, targetURL),
		Template: ReduceTemplate(inlined),
	}, nil
}
