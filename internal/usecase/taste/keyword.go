// Package taste implements the four taste-vector inference strategies:
// keyword, llm, semantic, and the hybrid merge over all three.
package taste

import (
	"context"
	"strings"

	domtaste "github.com/gustohq/gusto/internal/domain/taste"
)

// Keyword infers a taste vector by matching lexicon terms inside the text.
// Deterministic, no external calls.
type Keyword struct {
	lexicon []LexiconEntry
}

// NewKeyword creates the keyword strategy over the given lexicon.
func NewKeyword(lexicon []LexiconEntry) *Keyword {
	return &Keyword{lexicon: lexicon}
}

// Name identifies the strategy in logs and metrics.
func (k *Keyword) Name() string { return "keyword" }

// Infer averages the taste profiles of every lexicon term found in the text.
// Returns the zero vector when nothing matches.
func (k *Keyword) Infer(_ context.Context, text string) (domtaste.Vector, error) {
	if text == "" {
		return domtaste.Vector{}, nil
	}

	lower := strings.ToLower(text)
	var matched []domtaste.Vector
	for _, e := range k.lexicon {
		if strings.Contains(lower, e.Term) {
			matched = append(matched, e.Taste)
		}
	}
	return domtaste.Mean(matched), nil
}
