package redesign

import (
	"context"

	"github.com/SkorpionOP/UI-UX-Analyzer/internal/webanalysis"
)

// AnalysisProvider defines the contract for any page analysis engine.
type AnalysisProvider interface {
	Analyze(ctx context.Context, targetURL string) (*webanalysis.Analysis, error)
}

// Generator produces redesigned HTML from a prompt. Implementations wrap a
// chat-completion model; the handle is injected at construction so nothing
// in this package reads process-global state.
type Generator interface {
	GenerateHTML(ctx context.Context, prompt string) (string, error)
}
