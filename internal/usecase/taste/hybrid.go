package taste

import (
	"context"
	"strings"

	"go.uber.org/zap"

	domtaste "github.com/gustohq/gusto/internal/domain/taste"
)

// longTextFields is the word count at which text is considered too long
// for keyword matching alone and the semantic signal is added.
const longTextFields = 6

// Weights distributes influence across the three underlying strategies.
// They are renormalized over whichever sources actually contribute.
type Weights struct {
	Keyword  float64
	Semantic float64
	LLM      float64
}

// Result is a hybrid inference outcome. Degraded marks that at least one
// underlying source failed and its weight was redistributed.
type Result struct {
	Vector   domtaste.Vector
	Degraded bool
}

// Hybrid merges the keyword, semantic, and llm strategies. Keyword runs
// first; when the text is long or has no lexicon hits, semantic is added,
// with llm as the fallback when semantic contributes nothing. Hybrid never
// fails outward: all-source failure yields a zero vector flagged degraded.
type Hybrid struct {
	keyword  Strategy
	semantic Strategy
	llm      Strategy
	weights  Weights
	logger   *zap.Logger
}

// NewHybrid creates the hybrid strategy over the three sources.
func NewHybrid(keyword, semantic, llm Strategy, weights Weights, logger *zap.Logger) *Hybrid {
	return &Hybrid{
		keyword:  keyword,
		semantic: semantic,
		llm:      llm,
		weights:  weights,
		logger:   logger,
	}
}

// Name identifies the strategy in logs and metrics.
func (h *Hybrid) Name() string { return "hybrid" }

// Infer implements Strategy. The error is always nil; callers needing the
// degraded flag use Blend directly.
func (h *Hybrid) Infer(ctx context.Context, text string) (domtaste.Vector, error) {
	return h.Blend(ctx, text).Vector, nil
}

// Blend runs the source strategies and merges their vectors by weighted
// average over the sources that produced a signal.
func (h *Hybrid) Blend(ctx context.Context, text string) Result {
	kw, _ := h.keyword.Infer(ctx, text)

	vectors := []domtaste.Vector{}
	weights := []float64{}
	if !kw.IsZero() {
		vectors = append(vectors, kw)
		weights = append(weights, h.weights.Keyword)
	}

	degraded := false
	if kw.IsZero() || len(strings.Fields(text)) >= longTextFields {
		sem, err := h.semantic.Infer(ctx, text)
		switch {
		case err != nil:
			degraded = true
			h.logger.Warn("Semantic inference unavailable",
				zap.String("text", text),
				zap.Error(err),
			)
		case !sem.IsZero():
			vectors = append(vectors, sem)
			weights = append(weights, h.weights.Semantic)
		}

		// Semantic silent or down: ask the llm instead.
		if err != nil || sem.IsZero() {
			lv, lerr := h.llm.Infer(ctx, text)
			switch {
			case lerr != nil:
				degraded = true
				h.logger.Warn("LLM inference unavailable",
					zap.String("text", text),
					zap.Error(lerr),
				)
			case !lv.IsZero():
				vectors = append(vectors, lv)
				weights = append(weights, h.weights.LLM)
			}
		}
	}

	if len(vectors) == 0 {
		return Result{Vector: domtaste.Vector{}, Degraded: true}
	}
	return Result{Vector: domtaste.WeightedMean(vectors, weights), Degraded: degraded}
}
