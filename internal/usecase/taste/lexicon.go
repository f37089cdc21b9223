package taste

import domtaste "github.com/gustohq/gusto/internal/domain/taste"

// LexiconEntry maps an ingredient or flavor descriptor to its taste profile.
type LexiconEntry struct {
	Term  string
	Taste domtaste.Vector
}

// DefaultLexicon is the built-in ingredient-flavor corpus. Terms are matched
// as lowercase substrings; the keyword strategy averages all matches.
// The same entries seed the semantic reference index.
var DefaultLexicon = []LexiconEntry{
	// flavor descriptors
	{Term: "sweet", Taste: domtaste.New(0.9, 0, 0, 0, 0, 0)},
	{Term: "salty", Taste: domtaste.New(0, 0.9, 0, 0, 0.1, 0)},
	{Term: "sour", Taste: domtaste.New(0.1, 0, 0.9, 0, 0, 0)},
	{Term: "bitter", Taste: domtaste.New(0, 0, 0, 0.9, 0, 0)},
	{Term: "savory", Taste: domtaste.New(0, 0.4, 0, 0, 0.8, 0)},
	{Term: "umami", Taste: domtaste.New(0, 0.2, 0, 0, 0.9, 0)},
	{Term: "spicy", Taste: domtaste.New(0, 0.1, 0, 0, 0.1, 0.9)},
	{Term: "tangy", Taste: domtaste.New(0.2, 0, 0.8, 0, 0, 0.1)},
	{Term: "hot sauce", Taste: domtaste.New(0, 0.3, 0.3, 0, 0.1, 0.9)},
	{Term: "mild", Taste: domtaste.New(0.2, 0.2, 0, 0, 0.2, 0)},

	// peppers and heat
	{Term: "chili", Taste: domtaste.New(0.1, 0.1, 0, 0, 0.1, 0.9)},
	{Term: "jalapeno", Taste: domtaste.New(0.1, 0, 0.1, 0, 0, 0.8)},
	{Term: "sriracha", Taste: domtaste.New(0.2, 0.3, 0.2, 0, 0.2, 0.8)},
	{Term: "wasabi", Taste: domtaste.New(0, 0, 0, 0.2, 0, 0.9)},
	{Term: "pepper", Taste: domtaste.New(0, 0.1, 0, 0.1, 0, 0.6)},
	{Term: "curry", Taste: domtaste.New(0.2, 0.3, 0.1, 0.1, 0.5, 0.7)},
	{Term: "kimchi", Taste: domtaste.New(0.1, 0.4, 0.6, 0, 0.5, 0.7)},
	{Term: "ginger", Taste: domtaste.New(0.2, 0, 0.1, 0.1, 0, 0.5)},

	// sweets
	{Term: "sugar", Taste: domtaste.New(1, 0, 0, 0, 0, 0)},
	{Term: "honey", Taste: domtaste.New(0.95, 0, 0.05, 0, 0, 0)},
	{Term: "chocolate", Taste: domtaste.New(0.7, 0, 0, 0.4, 0.1, 0)},
	{Term: "caramel", Taste: domtaste.New(0.9, 0.1, 0, 0.1, 0, 0)},
	{Term: "vanilla", Taste: domtaste.New(0.8, 0, 0, 0, 0, 0)},
	{Term: "mango", Taste: domtaste.New(0.8, 0, 0.2, 0, 0, 0)},
	{Term: "banana", Taste: domtaste.New(0.75, 0, 0.05, 0, 0, 0)},
	{Term: "strawberry", Taste: domtaste.New(0.7, 0, 0.3, 0, 0, 0)},
	{Term: "apple", Taste: domtaste.New(0.6, 0, 0.3, 0, 0, 0)},
	{Term: "coconut", Taste: domtaste.New(0.6, 0, 0, 0, 0.1, 0)},
	{Term: "maple", Taste: domtaste.New(0.9, 0, 0, 0.05, 0, 0)},

	// sour and fermented
	{Term: "lemon", Taste: domtaste.New(0.1, 0, 0.9, 0.1, 0, 0)},
	{Term: "lime", Taste: domtaste.New(0.05, 0, 0.9, 0.1, 0, 0)},
	{Term: "vinegar", Taste: domtaste.New(0, 0, 0.95, 0, 0, 0)},
	{Term: "pickle", Taste: domtaste.New(0.1, 0.5, 0.8, 0, 0, 0)},
	{Term: "yogurt", Taste: domtaste.New(0.2, 0, 0.5, 0, 0.1, 0)},
	{Term: "tamarind", Taste: domtaste.New(0.3, 0, 0.8, 0.1, 0, 0)},
	{Term: "grapefruit", Taste: domtaste.New(0.3, 0, 0.6, 0.5, 0, 0)},

	// salty and umami
	{Term: "soy sauce", Taste: domtaste.New(0.1, 0.9, 0, 0, 0.8, 0)},
	{Term: "miso", Taste: domtaste.New(0.1, 0.7, 0, 0, 0.9, 0)},
	{Term: "fish sauce", Taste: domtaste.New(0.1, 0.9, 0.1, 0, 0.9, 0)},
	{Term: "anchovy", Taste: domtaste.New(0, 0.9, 0, 0.1, 0.8, 0)},
	{Term: "parmesan", Taste: domtaste.New(0.1, 0.7, 0.1, 0.1, 0.9, 0)},
	{Term: "cheese", Taste: domtaste.New(0.1, 0.6, 0.1, 0, 0.7, 0)},
	{Term: "bacon", Taste: domtaste.New(0.1, 0.8, 0, 0, 0.7, 0)},
	{Term: "olive", Taste: domtaste.New(0, 0.6, 0.1, 0.3, 0.3, 0)},
	{Term: "seaweed", Taste: domtaste.New(0, 0.5, 0, 0.1, 0.8, 0)},
	{Term: "truffle", Taste: domtaste.New(0, 0.2, 0, 0.1, 0.9, 0)},
	{Term: "mushroom", Taste: domtaste.New(0.1, 0.1, 0, 0.1, 0.8, 0)},
	{Term: "tomato", Taste: domtaste.New(0.3, 0.1, 0.4, 0, 0.6, 0)},
	{Term: "ham", Taste: domtaste.New(0.1, 0.8, 0, 0, 0.6, 0)},

	// proteins
	{Term: "chicken", Taste: domtaste.New(0.05, 0.3, 0, 0, 0.5, 0)},
	{Term: "beef", Taste: domtaste.New(0.05, 0.3, 0, 0, 0.7, 0)},
	{Term: "pork", Taste: domtaste.New(0.15, 0.3, 0, 0, 0.6, 0)},
	{Term: "lamb", Taste: domtaste.New(0.05, 0.3, 0, 0.1, 0.6, 0)},
	{Term: "fish", Taste: domtaste.New(0.05, 0.3, 0, 0, 0.6, 0)},
	{Term: "salmon", Taste: domtaste.New(0.1, 0.3, 0, 0, 0.7, 0)},
	{Term: "shrimp", Taste: domtaste.New(0.2, 0.4, 0, 0, 0.7, 0)},
	{Term: "tofu", Taste: domtaste.New(0.05, 0.05, 0, 0, 0.3, 0)},
	{Term: "egg", Taste: domtaste.New(0.05, 0.2, 0, 0, 0.5, 0)},
	{Term: "paneer", Taste: domtaste.New(0.2, 0.2, 0.1, 0, 0.3, 0)},

	// aromatics and produce
	{Term: "garlic", Taste: domtaste.New(0.1, 0.1, 0, 0.1, 0.5, 0.3)},
	{Term: "onion", Taste: domtaste.New(0.3, 0.1, 0, 0.1, 0.3, 0.2)},
	{Term: "basil", Taste: domtaste.New(0.1, 0, 0, 0.3, 0.1, 0.1)},
	{Term: "mint", Taste: domtaste.New(0.3, 0, 0, 0.2, 0, 0)},
	{Term: "cilantro", Taste: domtaste.New(0.1, 0, 0.2, 0.3, 0, 0)},
	{Term: "spinach", Taste: domtaste.New(0.1, 0.1, 0, 0.4, 0.2, 0)},
	{Term: "kale", Taste: domtaste.New(0.05, 0.05, 0, 0.6, 0.1, 0)},
	{Term: "potato", Taste: domtaste.New(0.2, 0.2, 0, 0, 0.3, 0)},
	{Term: "corn", Taste: domtaste.New(0.6, 0.1, 0, 0, 0.3, 0)},

	// fats and misc
	{Term: "butter", Taste: domtaste.New(0.3, 0.3, 0, 0, 0.4, 0)},
	{Term: "cream", Taste: domtaste.New(0.4, 0.1, 0, 0, 0.3, 0)},
	{Term: "peanut", Taste: domtaste.New(0.3, 0.4, 0, 0.1, 0.5, 0)},
	{Term: "coffee", Taste: domtaste.New(0.1, 0, 0.2, 0.9, 0, 0)},
	{Term: "bbq", Taste: domtaste.New(0.5, 0.5, 0.2, 0.1, 0.6, 0.3)},
	{Term: "teriyaki", Taste: domtaste.New(0.6, 0.6, 0, 0, 0.6, 0)},
}
