package redesign

import (
	"context"
	"errors"
	"log/slog"

	"github.com/SkorpionOP/UI-UX-Analyzer/internal/model"
	"github.com/SkorpionOP/UI-UX-Analyzer/internal/platform/errs"
	"github.com/SkorpionOP/UI-UX-Analyzer/internal/platform/requestid"
)

// Service orchestrates the analysis engine and the generation model.
type Service struct {
	provider  AnalysisProvider
	generator Generator
	logger    *slog.Logger
}

// NewService creates a Service backed by the given provider and generator.
func NewService(provider AnalysisProvider, generator Generator, logger *slog.Logger) *Service {
	return &Service{provider: provider, generator: generator, logger: logger}
}

// Analyze delegates to the provider and logs the outcome.
func (s *Service) Analyze(ctx context.Context, targetURL string) (*model.WebsiteSummary, error) {
	logger := s.logger.With("url", targetURL, "request_id", requestid.FromContext(ctx))

	analysis, err := s.provider.Analyze(ctx, targetURL)
	if err != nil {
		err = s.classify(ctx, err)
		logger.Error("analysis failed", "error", err)
		return nil, err
	}

	logger.Info("analysis complete",
		"title", analysis.Summary.Metadata.Title,
		"layout_type", analysis.Summary.Structure.LayoutType,
		"content_type", analysis.Summary.Content.Type,
		"design_system", analysis.Summary.Design.DesignSystem,
		"template_bytes", len(analysis.Template),
	)
	return &analysis.Summary, nil
}

// Redesign analyzes the target and asks the generation model for a
// redesigned document.
func (s *Service) Redesign(ctx context.Context, targetURL, style string) (*model.RedesignResult, error) {
	logger := s.logger.With("url", targetURL, "request_id", requestid.FromContext(ctx))

	analysis, err := s.provider.Analyze(ctx, targetURL)
	if err != nil {
		err = s.classify(ctx, err)
		logger.Error("analysis failed", "error", err)
		return nil, err
	}

	html, err := s.generator.GenerateHTML(ctx, buildPrompt(analysis, style))
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			err = &errs.AppError{
				Kind:    errs.Timeout,
				Message: "Redesign timed out. The generation model may be slow to respond.",
				Cause:   err,
			}
		} else {
			err = &errs.AppError{
				Kind:    errs.GenerationFailed,
				Message: "The redesign could not be generated. Please try again.",
				Cause:   err,
			}
		}
		logger.Error("generation failed", "error", err)
		return nil, err
	}

	logger.Info("redesign complete",
		"title", analysis.Summary.Metadata.Title,
		"generated_bytes", len(html),
	)
	return &model.RedesignResult{
		URL:     targetURL,
		Summary: analysis.Summary,
		HTML:    html,
	}, nil
}

// classify upgrades a provider error to a timeout when the request
// deadline is the underlying reason.
func (s *Service) classify(ctx context.Context, err error) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return &errs.AppError{
			Kind:    errs.Timeout,
			Message: "Analysis timed out. The target URL may be slow to respond.",
			Cause:   err,
		}
	}
	return err
}
