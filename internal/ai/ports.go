package ai

import (
	"context"

	"github.com/Vovarama1992/fine_teaching/internal/lang"
)

// CompletionRequest is a single system + user exchange.
type CompletionRequest struct {
	Model  string
	System string
	User   string

	// JSON asks the backend for a JSON object answer.
	JSON bool
}

// Completer is a text-generation backend.
type Completer interface {
	Name() string
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

// Models holds the model names per language profile. Korean falls back to Default.
type Models struct {
	Default string
	Korean  string
}

func (m Models) For(code string) string {
	if lang.Profile(code) == lang.Korean && m.Korean != "" {
		return m.Korean
	}
	return m.Default
}
