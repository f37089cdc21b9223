package queryintent

import (
	"regexp"
	"strings"

	"github.com/gustohq/gusto/internal/domain/dish"
)

var greetings = []string{
	"hi", "hello", "hey", "hola", "greetings", "good morning",
	"good afternoon", "good evening", "howdy", "what's up",
	"whats up", "sup", "yo", "hiya", "heya",
}

// IsGreeting reports whether the query is exactly a greeting or starts
// with one.
func IsGreeting(q string) bool {
	lower := strings.ToLower(strings.TrimSpace(q))
	for _, g := range greetings {
		if lower == g || strings.HasPrefix(lower, g+" ") {
			return true
		}
	}
	return false
}

var relevantKeywords = []string{
	"food", "eat", "restaurant", "dish", "meal", "hungry", "craving",
	"lunch", "dinner", "breakfast", "cuisine", "menu", "order",
	"pizza", "burger", "sushi", "pasta", "chicken", "veg", "non-veg",
	"taste", "flavor", "spicy", "sweet", "savory",
}

var irrelevantKeywords = []string{
	"tourist", "sightseeing", "museum", "park", "beach", "hotel",
	"shopping", "mall", "attraction", "landmark", "monument",
}

// relevanceFastPath returns (relevant, decided). Undecided queries go to
// the llm tiebreak.
func relevanceFastPath(q string) (bool, bool) {
	lower := strings.ToLower(q)

	hasRelevant := containsAny(lower, relevantKeywords)
	hasIrrelevant := containsAny(lower, irrelevantKeywords)

	if hasIrrelevant && !hasRelevant {
		return false, true
	}
	if hasRelevant {
		return true, true
	}
	return false, false
}

func containsAny(s string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(s, t) {
			return true
		}
	}
	return false
}

var dishPatterns = []*regexp.Regexp{
	regexp.MustCompile(`is\s+there\s+(?:a\s+)?(?:place|restaurant)\s+(?:where|that\s+has)\s+(.+?)\s+(?:is\s+)?available`),
	regexp.MustCompile(`where\s+(?:can\s+)?i\s+(?:can\s+)?(?:find|get|eat)\s+(.+?)(?:\s+near|\s+in|\s+at|\s*$)`),
	regexp.MustCompile(`^(?:do\s+you\s+have|is\s+there)\s+(?:any\s+)?(.+?)(?:\s+available|\s+near|\s+in|\s+at|\s*$)`),
	regexp.MustCompile(`^(?:i\s+want|i'd\s+like|i\s+need)\s+to\s+(?:eat|have|try)\s+(?:some\s+)?(.+?)(?:\s+near|\s+in|\s+at|\s*$)`),
	regexp.MustCompile(`^(?:i\s+want|i'd\s+like|i\s+need|give\s+me|show\s+me|find|get\s+me|looking\s+for|craving)\s+(?:for\s+)?(?:some\s+)?(.+?)(?:\s+near|\s+in|\s+at|\s*$)`),
	regexp.MustCompile(`^can\s+i\s+get\s+(.+?)(?:\s+near|\s+in|\s+at|\s*$)`),
}

var (
	trailingPlaceRE = regexp.MustCompile(`\s+(?:near|in|at|from)\s+.*$`)
	leadingFillerRE = regexp.MustCompile(`^(?:a|an|the|some|to)\s+`)
	punctuationRE   = regexp.MustCompile(`[^\w\s]`)
)

var genericTerms = map[string]bool{
	"food": true, "something": true, "anything": true, "restaurant": true,
	"place": true, "restaurants": true, "places": true,
	"dinner": true, "lunch": true, "breakfast": true,
}

var preferenceWords = map[string]bool{
	"spicy": true, "savory": true, "sweet": true, "sour": true,
	"salty": true, "bitter": true, "hot": true, "mild": true,
	"delicious": true, "tasty": true, "good": true, "fresh": true,
	"healthy": true, "light": true, "heavy": true,
}

// dishByRules extracts a dish name from common request phrasings.
// Returns "" when the query names only preferences or generic terms.
func dishByRules(q string) string {
	lower := strings.ToLower(strings.TrimSpace(q))
	if len(strings.Fields(lower)) <= 1 {
		return ""
	}

	for _, re := range dishPatterns {
		m := re.FindStringSubmatch(lower)
		if m == nil {
			continue
		}
		candidate := strings.TrimSpace(m[1])
		candidate = trailingPlaceRE.ReplaceAllString(candidate, "")
		for {
			stripped := leadingFillerRE.ReplaceAllString(candidate, "")
			if stripped == candidate {
				break
			}
			candidate = stripped
		}
		candidate = strings.TrimSpace(punctuationRE.ReplaceAllString(candidate, ""))

		if !hasMeaningfulWords(candidate) {
			return ""
		}
		if genericTerms[candidate] {
			return ""
		}
		if len(candidate) > 2 && len(candidate) < 50 {
			return candidate
		}
	}
	return ""
}

// hasMeaningfulWords reports whether anything beyond preference descriptors
// and generic terms remains in the candidate.
func hasMeaningfulWords(candidate string) bool {
	for _, w := range strings.Fields(candidate) {
		if w == "and" || w == "or" {
			continue
		}
		if genericTerms[w] || preferenceWords[w] {
			continue
		}
		return true
	}
	return false
}

var vegPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b(?:i am|i'm|looking for|want|need|prefer)\s+(?:a\s+)?veg(?:etarian)?\s+(?:food|dish|meal|option)`),
	regexp.MustCompile(`\bveg(?:etarian)?\s+(?:\w+\s+)?(?:food|dish|meal|option|restaurant|cuisine)`),
	regexp.MustCompile(`\bonly\s+veg(?:etarian)?\b`),
	regexp.MustCompile(`\bpure\s+veg(?:etarian)?\b`),
	regexp.MustCompile(`\bvegetarian\s+only\b`),
	regexp.MustCompile(`\bno\s+(?:meat|non-veg|nonveg)\b`),
	regexp.MustCompile(`\bplant[-\s]?based\b`),
	regexp.MustCompile(`\bvegan\b`),
}

var nonVegPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b(?:i am|i'm|looking for|want|need|prefer)\s+(?:a\s+)?non[-\s]?veg(?:etarian)?\s+(?:food|dish|meal|option)`),
	regexp.MustCompile(`\bnon[-\s]?veg(?:etarian)?\s+(?:\w+\s+)?(?:food|dish|meal|option|restaurant|cuisine)`),
	regexp.MustCompile(`\b(?:meat|chicken|fish|seafood)\s+(?:lover|eater)`),
	regexp.MustCompile(`\bonly\s+non[-\s]?veg\b`),
}

var meatDishRE = regexp.MustCompile(`\b(?:chicken|beef|pork|bacon|fish|seafood|shrimp|lamb|mutton)\b`)

// dietByRules detects an explicit dietary preference in the query.
// Vegetarian patterns run first so negations like "no meat" resolve as
// vegetarian instead of matching a meat keyword. Bare meat words in a dish
// phrasing ("chicken curry") imply non-vegetarian.
func dietByRules(q string) dish.Diet {
	lower := strings.ToLower(q)
	for _, re := range vegPatterns {
		if re.MatchString(lower) {
			return dish.DietVegetarian
		}
	}
	for _, re := range nonVegPatterns {
		if re.MatchString(lower) {
			return dish.DietNonVegetarian
		}
	}
	if meatDishRE.MatchString(lower) {
		return dish.DietNonVegetarian
	}
	return dish.DietUnknown
}

var locationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\bnear\s+(.+?)(?:\s*,|\s+also|\s+and|\s*$)`),
	regexp.MustCompile(`\bin\s+(.+?)(?:\s*,|\s+also|\s+and|\s*$)`),
	regexp.MustCompile(`\bat\s+(.+?)(?:\s*,|\s+also|\s+and|\s*$)`),
	regexp.MustCompile(`\baround\s+(.+?)(?:\s*,|\s+also|\s+and|\s*$)`),
}

var nonLocations = map[string]bool{
	"me": true, "here": true, "there": true, "my place": true, "home": true,
}

// ExtractLocation pulls a location phrase out of the query, or "" when the
// query does not mention one.
func ExtractLocation(q string) string {
	lower := strings.ToLower(q)
	for _, re := range locationPatterns {
		m := re.FindStringSubmatch(lower)
		if m == nil {
			continue
		}
		loc := strings.TrimSpace(m[1])
		if !nonLocations[loc] && len(loc) > 2 {
			return loc
		}
	}
	return ""
}

// cuisineRule pairs a cuisine name with the keywords that imply it.
// Ordered so detection is deterministic.
type cuisineRule struct {
	name     string
	keywords []string
}

var cuisineRules = []cuisineRule{
	{"thai", []string{"thai"}},
	{"italian", []string{"italian", "pizza", "pasta"}},
	{"chinese", []string{"chinese"}},
	{"japanese", []string{"japanese", "sushi", "ramen"}},
	{"indian", []string{"indian", "curry"}},
	{"mexican", []string{"mexican", "taco", "burrito"}},
	{"korean", []string{"korean", "kimchi", "bibimbap"}},
	{"vietnamese", []string{"vietnamese", "pho"}},
	{"american", []string{"american", "burger"}},
	{"french", []string{"french"}},
	{"greek", []string{"greek"}},
	{"mediterranean", []string{"mediterranean"}},
	{"middle eastern", []string{"middle eastern", "falafel", "shawarma"}},
	{"spanish", []string{"spanish", "tapas", "paella"}},
}

var cuisineKeywordRE = map[string]*regexp.Regexp{}

func init() {
	for _, rule := range cuisineRules {
		for _, kw := range rule.keywords {
			cuisineKeywordRE[kw] = regexp.MustCompile(`\b` + regexp.QuoteMeta(kw) + `\b`)
		}
	}
}

// ExtractCuisine detects a cuisine keyword as a whole word in the query.
func ExtractCuisine(q string) string {
	lower := strings.ToLower(q)
	for _, rule := range cuisineRules {
		for _, kw := range rule.keywords {
			if cuisineKeywordRE[kw].MatchString(lower) {
				return rule.name
			}
		}
	}
	return ""
}
