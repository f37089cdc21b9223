package taste

import (
	"context"
	"fmt"

	domtaste "github.com/gustohq/gusto/internal/domain/taste"
)

// Semantic infers a taste vector from the reference corpus: the text is
// embedded, the nearest reference entries are fetched, and their taste
// profiles are averaged weighted by similarity.
type Semantic struct {
	embedder Embedder
	corpus   ReferenceCorpus
	topK     int
	minSim   float64
}

// NewSemantic creates the semantic strategy.
func NewSemantic(embedder Embedder, corpus ReferenceCorpus, topK int, minSim float64) *Semantic {
	return &Semantic{embedder: embedder, corpus: corpus, topK: topK, minSim: minSim}
}

// Name identifies the strategy in logs and metrics.
func (s *Semantic) Name() string { return "semantic" }

// Infer embeds the text and returns the similarity-weighted mean of the
// nearest reference entries. Neighbors below the minimum similarity are
// ignored; no qualifying neighbor yields the zero vector.
func (s *Semantic) Infer(ctx context.Context, text string) (domtaste.Vector, error) {
	if text == "" {
		return domtaste.Vector{}, nil
	}

	emb, err := s.embedder.Embed(ctx, text)
	if err != nil {
		return domtaste.Vector{}, fmt.Errorf("embed text: %w", err)
	}

	refs, err := s.corpus.Nearest(ctx, emb.Embedding, s.topK)
	if err != nil {
		return domtaste.Vector{}, fmt.Errorf("search reference corpus: %w", err)
	}

	var (
		vectors []domtaste.Vector
		weights []float64
	)
	for _, ref := range refs {
		if ref.Similarity < s.minSim {
			continue
		}
		vectors = append(vectors, ref.Taste)
		weights = append(weights, ref.Similarity)
	}
	return domtaste.WeightedMean(vectors, weights), nil
}
