package taste

import (
	"context"

	"github.com/gustohq/gusto/internal/domain"
	domtaste "github.com/gustohq/gusto/internal/domain/taste"
)

// Strategy produces a taste vector from free text.
type Strategy interface {
	Name() string
	Infer(ctx context.Context, text string) (domtaste.Vector, error)
}

// Completer sends a prompt to the language-inference collaborator.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Embedder vectorizes text into embeddings.
type Embedder interface {
	Embed(ctx context.Context, text string) (domain.EmbeddingResult, error)
}

// ReferenceCorpus looks up reference entries near an embedding.
type ReferenceCorpus interface {
	Nearest(ctx context.Context, embedding []float32, topK int) ([]domtaste.Reference, error)
}

// CorpusWriter seeds the reference corpus at startup.
type CorpusWriter interface {
	EnsureIndex(ctx context.Context, dim int) error
	Count(ctx context.Context) (int, error)
	Upsert(ctx context.Context, entries []domtaste.ReferenceEntry) error
}

// Cache stores small inference results keyed by kind and input text.
// Implementations are best-effort: a miss is never an error.
type Cache interface {
	Get(ctx context.Context, kind, text string) (string, bool)
	Put(ctx context.Context, kind, text, value string)
}
