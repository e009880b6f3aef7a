package llm

import (
	"context"
	"errors"
)

// Options controls a single model invocation.
type Options struct {
	// Temperature is the sampling temperature passed to the provider.
	Temperature float32
	// JSONMode requests JSON-formatted output where the provider supports it.
	JSONMode bool
}

// Client abstracts LLM providers as text in, text out.
type Client interface {
	Generate(ctx context.Context, prompt string, opts Options) (string, error)
}

// ErrNotConfigured is returned by the placeholder client.
var ErrNotConfigured = errors.New("LLM provider not configured")

// PlaceholderClient stands in when no provider could be built from config,
// for example a missing API key. Every call fails with ErrNotConfigured so
// misconfiguration surfaces on first use instead of at startup.
type PlaceholderClient struct{}

// Generate returns ErrNotConfigured.
func (PlaceholderClient) Generate(ctx context.Context, prompt string, opts Options) (string, error) {
	_ = ctx
	_ = prompt
	_ = opts
	return "", ErrNotConfigured
}
