package taste

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/gustohq/gusto/internal/domain"
	domtaste "github.com/gustohq/gusto/internal/domain/taste"
)

const tastePromptTemplate = `Analyze the dish %q and provide taste profile values on a scale of 0.0 to 1.0 for each attribute.

Return ONLY a JSON object with these exact keys (no other text):
{"sweet": <value>, "salty": <value>, "sour": <value>, "bitter": <value>, "umami": <value>, "spicy": <value>}

Guidelines:
- Use 0.0 for no presence, 1.0 for very strong presence
- Consider typical preparation and ingredients
- Be realistic about standard recipes

Example for "Margherita Pizza": {"sweet": 0.2, "salty": 0.6, "sour": 0.1, "bitter": 0.0, "umami": 0.7, "spicy": 0.1}`

const llmCacheKind = "taste_llm"

// LLM infers a taste vector by asking the language-inference collaborator
// for six bounded JSON numbers. Results are cached by input text.
type LLM struct {
	completer Completer
	cache     Cache
	logger    *zap.Logger
}

// NewLLM creates the llm strategy. Cache may be nil.
func NewLLM(completer Completer, cache Cache, logger *zap.Logger) *LLM {
	return &LLM{completer: completer, cache: cache, logger: logger}
}

// Name identifies the strategy in logs and metrics.
func (l *LLM) Name() string { return "llm" }

// Infer prompts the collaborator and parses the structured reply.
// Fails with domain.ErrInferenceUnavailable on API error or unparsable output.
func (l *LLM) Infer(ctx context.Context, text string) (domtaste.Vector, error) {
	if text == "" {
		return domtaste.Vector{}, nil
	}

	if l.cache != nil {
		if cached, ok := l.cache.Get(ctx, llmCacheKind, text); ok {
			if v, err := parseTasteJSON(cached); err == nil {
				return v, nil
			}
		}
	}

	reply, err := l.completer.Complete(ctx, fmt.Sprintf(tastePromptTemplate, text))
	if err != nil {
		return domtaste.Vector{}, fmt.Errorf("complete taste prompt: %w", err)
	}

	v, err := parseTasteJSON(reply)
	if err != nil {
		l.logger.Warn("Unparsable taste reply",
			zap.String("text", text),
			zap.Error(err),
		)
		return domtaste.Vector{}, fmt.Errorf("%w: parse taste reply: %w", domain.ErrInferenceUnavailable, err)
	}

	if l.cache != nil {
		if data, err := json.Marshal(v.ToMap()); err == nil {
			l.cache.Put(ctx, llmCacheKind, text, string(data))
		}
	}
	return v, nil
}

// parseTasteJSON extracts the taste object from a reply, tolerating code
// fences and surrounding prose.
func parseTasteJSON(reply string) (domtaste.Vector, error) {
	s := strings.TrimSpace(reply)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")

	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start < 0 || end <= start {
		return domtaste.Vector{}, fmt.Errorf("no JSON object in reply")
	}

	var m map[string]float64
	if err := json.Unmarshal([]byte(s[start:end+1]), &m); err != nil {
		return domtaste.Vector{}, fmt.Errorf("decode taste object: %w", err)
	}
	return domtaste.FromMap(m), nil
}
