package yelp

import (
	"regexp"
	"strings"
)

// categoryWords are menu section headers and cuisine labels that show up in
// scraped menus but are not dishes.
var categoryWords = map[string]struct{}{
	"appetizers": {}, "entrees": {}, "desserts": {}, "beverages": {}, "drinks": {}, "sides": {},
	"starters": {}, "mains": {}, "salads": {}, "soups": {}, "seafood": {}, "vegetarian": {},
	"lunch": {}, "dinner": {}, "breakfast": {}, "brunch": {}, "specials": {}, "menu": {},
	"italian": {}, "chinese": {}, "thai": {}, "indian": {}, "japanese": {}, "mexican": {},
	"american": {}, "french": {}, "korean": {}, "vietnamese": {}, "mediterranean": {},
	"pizza": {}, "pasta": {}, "sushi": {}, "burgers": {}, "sandwiches": {}, "wings": {},
	"noodles": {}, "rice": {}, "curry": {}, "bbq": {}, "grill": {}, "steakhouse": {},
}

var (
	tagRE     = regexp.MustCompile(`(?s)<script.*?</script>|<style.*?</style>|<[^>]+>`)
	priceRE   = regexp.MustCompile(`\$?\d+(\.\d{2})?`)
	lettersRE = regexp.MustCompile(`[a-zA-Z]{2,}`)
)

// ExtractDishLines strips markup from a menu page and keeps the lines that
// look like dish names.
func ExtractDishLines(page string) []string {
	text := tagRE.ReplaceAllString(page, "\n")

	seen := make(map[string]struct{})
	var dishes []string
	for _, line := range strings.Split(text, "\n") {
		name := strings.TrimSpace(priceRE.ReplaceAllString(line, ""))
		if !IsDishLine(name) {
			continue
		}
		key := strings.ToLower(name)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		dishes = append(dishes, name)
	}
	return dishes
}

// IsDishLine reports whether a cleaned menu line is a plausible dish name
// rather than a section header, price, or junk.
func IsDishLine(line string) bool {
	if len(line) < 3 || len(line) > 100 {
		return false
	}
	if _, isCategory := categoryWords[strings.ToLower(line)]; isCategory {
		return false
	}
	return lettersRE.MatchString(line)
}
