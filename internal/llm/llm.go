package llm

import (
	"context"
	"errors"
)

// Client abstracts LLM providers for bullet point generation.
type Client interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// ErrNotImplemented is returned by the placeholder client.
var ErrNotImplemented = errors.New("LLM not implemented")

// PlaceholderClient is a stub implementation until provider wiring is added.
type PlaceholderClient struct{}

// Complete returns ErrNotImplemented.
func (PlaceholderClient) Complete(ctx context.Context, prompt string) (string, error) {
	_ = ctx
	_ = prompt
	return "", ErrNotImplemented
}

var _ Client = (PlaceholderClient{})
