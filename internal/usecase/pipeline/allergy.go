package pipeline

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/gustohq/gusto/internal/domain/dish"
)

// allergenSynonyms expands an allergy keyword into the ingredient terms it
// covers during the keyword scan.
var allergenSynonyms = map[string][]string{
	"shellfish": {"shrimp", "prawn", "crab", "lobster", "oyster", "clam", "mussel", "scallop"},
	"nuts":      {"nut", "peanut", "almond", "cashew", "walnut", "pecan", "pistachio", "hazelnut"},
	"nut":       {"peanut", "almond", "cashew", "walnut", "pecan", "pistachio", "hazelnut"},
	"dairy":     {"milk", "cheese", "butter", "cream", "yogurt", "paneer", "ghee"},
	"gluten":    {"wheat", "bread", "pasta", "flour", "noodle", "dumpling"},
	"egg":       {"eggs", "omelette", "omelet", "mayo", "mayonnaise"},
	"soy":       {"tofu", "soya", "edamame", "miso"},
}

const allergyPromptTemplate = `Identify which of these dishes are SAFE for someone with these allergies: %s.

Rules:
1. Analyze the likely ingredients of each dish.
2. If a dish likely contains an allergen (e.g. "Pesto" contains nuts/dairy, "Carbonara" contains egg/dairy/pork), exclude it.
3. Be strict. Safety first.
4. Return ONLY the numbers of the SAFE dishes.
5. Return comma-separated numbers (e.g. "1,3,5").
6. If none are safe, return "none".

List:
%s

Response:`

// allergyBatchSize bounds the dish list sent per prompt.
const allergyBatchSize = 50

// AllergyFilter excludes dishes that may contain the user's allergens.
// A dish survives only when BOTH the keyword scan and the collaborator
// classification consider it safe.
type AllergyFilter struct {
	completer Completer
	logger    *zap.Logger
}

// NewAllergyFilter creates an allergy filter.
func NewAllergyFilter(completer Completer, logger *zap.Logger) *AllergyFilter {
	return &AllergyFilter{completer: completer, logger: logger}
}

// Filter returns the dishes safe for the given allergy set. The second
// return is true when the collaborator was unavailable and only the keyword
// scan was applied (reduced confidence).
func (f *AllergyFilter) Filter(ctx context.Context, dishes []dish.Dish, allergies []string) ([]dish.Dish, bool) {
	if len(dishes) == 0 || len(allergies) == 0 {
		return dishes, false
	}

	keywordSafe := make([]dish.Dish, 0, len(dishes))
	for _, d := range dishes {
		if KeywordSafe(d, allergies) {
			keywordSafe = append(keywordSafe, d)
		}
	}
	if len(keywordSafe) == 0 {
		return nil, false
	}

	aiSafe, err := f.classifyBatches(ctx, keywordSafe, allergies)
	if err != nil {
		f.logger.Warn("Allergy classification unavailable, keyword scan only",
			zap.Strings("allergies", allergies),
			zap.Error(err),
		)
		return keywordSafe, true
	}

	// Intersection: the collaborator can only shrink the keyword-safe set.
	kept := make([]dish.Dish, 0, len(keywordSafe))
	for _, d := range keywordSafe {
		if aiSafe[d.Normalized()] {
			kept = append(kept, d)
		}
	}
	return kept, false
}

// KeywordSafe reports whether no allergen term appears in the dish's
// allergy-relevant text.
func KeywordSafe(d dish.Dish, allergies []string) bool {
	text := strings.ToLower(d.AllergenText())
	for _, allergen := range allergies {
		a := strings.ToLower(strings.TrimSpace(allergen))
		if a == "" {
			continue
		}
		if strings.Contains(text, a) {
			return false
		}
		for _, syn := range allergenSynonyms[a] {
			if strings.Contains(text, syn) {
				return false
			}
		}
	}
	return true
}

// classifyBatches asks the collaborator which dishes are safe, in bounded
// batches, and returns the safe set keyed by normalized name.
func (f *AllergyFilter) classifyBatches(ctx context.Context, dishes []dish.Dish, allergies []string) (map[string]bool, error) {
	safe := make(map[string]bool, len(dishes))

	for offset := 0; offset < len(dishes); offset += allergyBatchSize {
		end := offset + allergyBatchSize
		if end > len(dishes) {
			end = len(dishes)
		}
		batch := dishes[offset:end]

		var list strings.Builder
		for i, d := range batch {
			fmt.Fprintf(&list, "%d. %s\n", i+1, d.Name())
		}

		prompt := fmt.Sprintf(allergyPromptTemplate, strings.Join(allergies, ", "), list.String())
		reply, err := f.completer.Complete(ctx, prompt)
		if err != nil {
			return nil, fmt.Errorf("allergy batch %d: %w", offset, err)
		}

		for _, idx := range parseSafeNumbers(reply, len(batch)) {
			safe[batch[idx].Normalized()] = true
		}
	}
	return safe, nil
}

// parseSafeNumbers extracts valid 0-based indices from a comma-separated
// reply. "none" or garbage yields nothing: ambiguity means exclusion.
func parseSafeNumbers(reply string, batchLen int) []int {
	s := strings.TrimSpace(strings.ToLower(reply))
	if s == "none" {
		return nil
	}

	var indices []int
	for _, part := range strings.Split(s, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			continue
		}
		if n >= 1 && n <= batchLen {
			indices = append(indices, n-1)
		}
	}
	return indices
}
