package pipeline

import "context"

// Completer sends a prompt to the language-inference collaborator.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Cache stores small classification results keyed by kind and input text.
type Cache interface {
	Get(ctx context.Context, kind, text string) (string, bool)
	Put(ctx context.Context, kind, text, value string)
}
