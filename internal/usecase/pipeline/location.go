package pipeline

import (
	"regexp"
	"strings"
)

// cityRegions groups nearby cities so "san jose" matches a "palo alto"
// restaurant. Cities without neighbors map to their own region.
var cityRegions = map[string]string{
	"san francisco": "bay_area",
	"san jose":      "bay_area",
	"oakland":       "bay_area",
	"berkeley":      "bay_area",
	"palo alto":     "bay_area",
	"mountain view": "bay_area",
	"sunnyvale":     "bay_area",

	"new york":      "nyc_metro",
	"brooklyn":      "nyc_metro",
	"manhattan":     "nyc_metro",
	"queens":        "nyc_metro",
	"bronx":         "nyc_metro",
	"staten island": "nyc_metro",

	"los angeles": "la",
	"chicago":     "chicago",
	"boston":      "boston",
	"seattle":     "seattle",
	"portland":    "portland",
	"austin":      "austin",
	"miami":       "miami",
	"atlanta":     "atlanta",
}

var usIndicators = []string{", us", "united states", ", ny", ", ca", ", tx", ", fl"}

var nonUSCountries = []string{
	"mexico", "canada", "uk", "france", "italy", "spain", "india", "china", "japan",
}

var stateCodeRE = regexp.MustCompile(`,\s*([A-Z]{2})\b`)

// LocationMatch reports whether a restaurant location satisfies the user's
// requested location, at city level. Inconclusive comparisons accept the
// candidate: availability over precision.
func LocationMatch(userLoc, restLoc string) bool {
	if userLoc == "" || restLoc == "" {
		return false
	}

	uLoc := strings.ToLower(strings.TrimSpace(userLoc))
	rLoc := strings.ToLower(strings.TrimSpace(restLoc))

	// City name appearing as a whole word in the restaurant location.
	uCity := strings.TrimSpace(strings.Split(uLoc, ",")[0])
	if uCity != "" {
		re := regexp.MustCompile(`\b` + regexp.QuoteMeta(uCity) + `\b`)
		if re.MatchString(rLoc) {
			return true
		}
	}

	// Clear US vs non-US mismatch.
	uUS, uForeign := hasAny(uLoc, usIndicators), hasAny(uLoc, nonUSCountries)
	rUS, rForeign := hasAny(rLoc, usIndicators), hasAny(rLoc, nonUSCountries)
	if (uForeign && rUS) || (uUS && rForeign) {
		return false
	}

	// Regional grouping: same region matches, different regions reject.
	// A recognized user city that the restaurant matched neither by name
	// nor by region is also a rejection.
	uRegion, rRegion := regionOf(uLoc), regionOf(rLoc)
	if uRegion != "" {
		return uRegion == rRegion
	}

	// Differing state codes reject.
	uState := stateCodeRE.FindStringSubmatch(userLoc)
	rState := stateCodeRE.FindStringSubmatch(restLoc)
	if uState != nil && rState != nil && uState[1] != rState[1] {
		return false
	}

	return true
}

func regionOf(loc string) string {
	for city, region := range cityRegions {
		if strings.Contains(loc, city) {
			return region
		}
	}
	return ""
}

func hasAny(s string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(s, t) {
			return true
		}
	}
	return false
}
