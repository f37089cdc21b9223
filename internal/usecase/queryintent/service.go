// Package queryintent classifies user queries and extracts entities from
// them. Rule-based fast paths decide most queries; the language-inference
// collaborator breaks ties.
package queryintent

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/gustohq/gusto/internal/domain/dish"
	"github.com/gustohq/gusto/internal/domain/query"
)

const relevancePromptTemplate = `Is this query about food, restaurants, or dining?
Query: %q

Rules:
1. Return "yes" if asking about food, restaurants, dishes, meals, or dining.
2. Return "no" if asking about tourist attractions, hotels, shopping, or general travel.
3. Return "no" if asking about non-food places to visit.

Response (only "yes" or "no"):`

const dishPromptTemplate = `Extract the specific food dish the user is asking for from this query.
Query: %q

Rules:
1. If the user is asking for a specific dish (e.g., "I want pizza", "where can I get sushi"), return ONLY the dish name (e.g., "pizza", "sushi").
2. If the user is asking for a cuisine (e.g., "Italian food"), return "cuisine:italian".
3. If the user is just greeting or asking general questions, return "none".
4. Remove words like "to eat", "I want", "looking for", "best", "delicious".
5. Return ONLY the extracted term in lowercase.

Response:`

const dietPromptTemplate = `Analyze the dietary preference in this query.
Query: %q

Rules:
1. If the user explicitly asks for vegetarian/vegan food (e.g. "no meat", "plant based"), return "veg".
2. If the user explicitly asks for meat/non-veg food (e.g. "meat lover", "carnivore"), return "non-veg".
3. If no specific diet is mentioned, return "none".

Response (only "veg", "non-veg", or "none"):`

// Service understands raw user queries.
type Service struct {
	completer Completer
	logger    *zap.Logger
}

// New creates a query understanding service.
func New(completer Completer, logger *zap.Logger) *Service {
	return &Service{completer: completer, logger: logger}
}

// Understand classifies the query's intent and extracts its entities.
// Extraction never fails the request: a missing entity stays empty.
func (s *Service) Understand(ctx context.Context, raw string) query.Query {
	q := query.Query{Raw: raw, Diet: dish.DietUnknown}

	if IsGreeting(raw) {
		q.Intent = query.IntentGreeting
		return q
	}
	if !s.IsRelevant(ctx, raw) {
		q.Intent = query.IntentIrrelevant
		return q
	}

	q.Dish = s.ExtractDish(ctx, raw)
	q.Location = ExtractLocation(raw)
	q.Cuisine = ExtractCuisine(raw)
	q.Diet = s.DetectDiet(ctx, raw)

	if q.Dish != "" {
		q.Intent = query.IntentDishSearch
	} else {
		q.Intent = query.IntentRestaurantSearch
	}
	return q
}

// IsRelevant reports whether the query is about food or dining. Keyword
// fast paths decide obvious queries; ambiguous ones go to the collaborator,
// defaulting to relevant when it is unavailable.
func (s *Service) IsRelevant(ctx context.Context, q string) bool {
	if relevant, decided := relevanceFastPath(q); decided {
		return relevant
	}

	reply, err := s.completer.Complete(ctx, fmt.Sprintf(relevancePromptTemplate, q))
	if err != nil {
		s.logger.Warn("Relevance check unavailable, accepting query", zap.Error(err))
		return true
	}
	return strings.TrimSpace(strings.ToLower(reply)) == "yes"
}

// ExtractDish pulls the requested dish name out of the query, trying the
// regex patterns first and the collaborator for phrasings the rules miss.
func (s *Service) ExtractDish(ctx context.Context, q string) string {
	if name := dishByRules(q); name != "" {
		return name
	}

	reply, err := s.completer.Complete(ctx, fmt.Sprintf(dishPromptTemplate, q))
	if err != nil {
		s.logger.Warn("Dish extraction unavailable", zap.Error(err))
		return ""
	}

	name := strings.TrimSpace(strings.ToLower(reply))
	name = strings.Trim(name, `"'`)
	if name == "none" || strings.HasPrefix(name, "cuisine:") {
		return ""
	}
	if len(name) < 2 || len(name) > 50 {
		return ""
	}
	// Reject repetitive strings: a sign of a runaway reply.
	words := strings.Fields(name)
	unique := map[string]bool{}
	for _, w := range words {
		unique[w] = true
	}
	if len(words) > 1 && len(unique) < (len(words)+1)/2 {
		return ""
	}
	return name
}

// DetectDiet finds a dietary preference stated in the query itself.
func (s *Service) DetectDiet(ctx context.Context, q string) dish.Diet {
	if d := dietByRules(q); d != dish.DietUnknown {
		return d
	}

	reply, err := s.completer.Complete(ctx, fmt.Sprintf(dietPromptTemplate, q))
	if err != nil {
		s.logger.Warn("Diet detection unavailable", zap.Error(err))
		return dish.DietUnknown
	}
	switch strings.TrimSpace(strings.ToLower(reply)) {
	case "veg":
		return dish.DietVegetarian
	case "non-veg":
		return dish.DietNonVegetarian
	default:
		return dish.DietUnknown
	}
}
