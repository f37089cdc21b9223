package taste

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	domtaste "github.com/gustohq/gusto/internal/domain/taste"
)

// Seeder loads the lexicon into the semantic reference corpus at startup.
// Seeding is skipped when the corpus is already populated.
type Seeder struct {
	corpus   CorpusWriter
	embedder Embedder
	lexicon  []LexiconEntry
	dim      int
	logger   *zap.Logger
}

// NewSeeder creates a corpus seeder.
func NewSeeder(corpus CorpusWriter, embedder Embedder, lexicon []LexiconEntry, dim int, logger *zap.Logger) *Seeder {
	return &Seeder{
		corpus:   corpus,
		embedder: embedder,
		lexicon:  lexicon,
		dim:      dim,
		logger:   logger,
	}
}

// Seed ensures the index exists and populates it from the lexicon.
func (s *Seeder) Seed(ctx context.Context) error {
	if err := s.corpus.EnsureIndex(ctx, s.dim); err != nil {
		return fmt.Errorf("ensure reference index: %w", err)
	}

	n, err := s.corpus.Count(ctx)
	if err != nil {
		return fmt.Errorf("count reference entries: %w", err)
	}
	if n > 0 {
		s.logger.Debug("Reference corpus already seeded", zap.Int("entries", n))
		return nil
	}

	entries := make([]domtaste.ReferenceEntry, 0, len(s.lexicon))
	for _, e := range s.lexicon {
		emb, err := s.embedder.Embed(ctx, e.Term)
		if err != nil {
			return fmt.Errorf("embed lexicon term %q: %w", e.Term, err)
		}
		entries = append(entries, domtaste.ReferenceEntry{
			ID:        strings.ReplaceAll(e.Term, " ", "_"),
			Text:      e.Term,
			Taste:     e.Taste,
			Embedding: emb.Embedding,
		})
	}

	if err := s.corpus.Upsert(ctx, entries); err != nil {
		return fmt.Errorf("upsert reference entries: %w", err)
	}

	s.logger.Info("Reference corpus seeded", zap.Int("entries", len(entries)))
	return nil
}
