package taste

import (
	"context"
	"errors"
	"testing"

	"github.com/gustohq/gusto/internal/domain"
	domtaste "github.com/gustohq/gusto/internal/domain/taste"
)

func TestSemantic_WeightedMean(t *testing.T) {
	me := &mockEmbedder{result: domain.EmbeddingResult{Embedding: []float32{0.1, 0.2}}}
	corpus := &mockCorpus{refs: []domtaste.Reference{
		{Text: "chili", Taste: domtaste.New(0, 0, 0, 0, 0, 1), Similarity: 0.9},
		{Text: "honey", Taste: domtaste.New(1, 0, 0, 0, 0, 0), Similarity: 0.3},
	}}
	s := NewSemantic(me, corpus, 5, 0.3)

	v, err := s.Infer(context.Background(), "hot chili honey glaze")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertInRange(t, v)
	// weights renormalize to 0.75/0.25
	if v[domtaste.Spicy] != 0.75 {
		t.Errorf("expected spicy=0.75, got %f", v[domtaste.Spicy])
	}
	if v[domtaste.Sweet] != 0.25 {
		t.Errorf("expected sweet=0.25, got %f", v[domtaste.Sweet])
	}
}

func TestSemantic_MinSimilarityFilters(t *testing.T) {
	me := &mockEmbedder{result: domain.EmbeddingResult{Embedding: []float32{0.1}}}
	corpus := &mockCorpus{refs: []domtaste.Reference{
		{Text: "chili", Taste: domtaste.New(0, 0, 0, 0, 0, 1), Similarity: 0.2},
	}}
	s := NewSemantic(me, corpus, 5, 0.3)

	v, err := s.Infer(context.Background(), "unfamiliar dish")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !v.IsZero() {
		t.Errorf("expected zero vector when no neighbor clears threshold, got %v", v)
	}
}

func TestSemantic_EmbedError(t *testing.T) {
	me := &mockEmbedder{err: domain.ErrSearchUnavailable}
	s := NewSemantic(me, &mockCorpus{}, 5, 0.3)

	_, err := s.Infer(context.Background(), "pad thai")
	if !errors.Is(err, domain.ErrSearchUnavailable) {
		t.Fatalf("expected ErrSearchUnavailable, got %v", err)
	}
}

func TestSemantic_CorpusError(t *testing.T) {
	me := &mockEmbedder{result: domain.EmbeddingResult{Embedding: []float32{0.1}}}
	corpus := &mockCorpus{err: errors.New("index gone")}
	s := NewSemantic(me, corpus, 5, 0.3)

	_, err := s.Infer(context.Background(), "pad thai")
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestSemantic_EmptyText(t *testing.T) {
	me := &mockEmbedder{}
	s := NewSemantic(me, &mockCorpus{}, 5, 0.3)

	v, err := s.Infer(context.Background(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !v.IsZero() || me.calls != 0 {
		t.Error("expected zero vector without an embed call")
	}
}
