package domain

import "context"

// EmbeddingResult holds a vector plus provider token usage.
type EmbeddingResult struct {
	Embedding    []float32
	PromptTokens int
	TotalTokens  int
}

// Embedder vectorizes text into embeddings.
type Embedder interface {
	Embed(ctx context.Context, text string) (EmbeddingResult, error)
}

// Completer sends a prompt to a language-inference collaborator and returns
// the raw text reply. Implementations fail with ErrInferenceUnavailable.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
