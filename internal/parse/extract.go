package parse

import "regexp"

// Extractor pairs a compiled pattern with a function that turns its
// submatches into a value. Extractors are applied in priority order;
// the first one that matches wins.
type Extractor struct {
	Pattern *regexp.Regexp
	Extract func(groups []string) string
}

// FirstMatch applies extractors in order against the input and returns
// the first non-empty extraction. The boolean reports whether any
// extractor matched.
func FirstMatch(input string, extractors []Extractor) (string, bool) {
	for _, ex := range extractors {
		groups := ex.Pattern.FindStringSubmatch(input)
		if groups == nil {
			continue
		}
		var out string
		if ex.Extract != nil {
			out = ex.Extract(groups)
		} else if len(groups) > 1 {
			out = groups[1]
		} else {
			out = groups[0]
		}
		if out != "" {
			return out, true
		}
	}
	return "", false
}

// AllMatches applies every extractor and collects each distinct
// extraction, preserving extractor order. Used where multiple patterns
// contribute candidates rather than competing for a single value.
func AllMatches(input string, extractors []Extractor) []string {
	var out []string
	seen := make(map[string]bool)
	for _, ex := range extractors {
		for _, groups := range ex.Pattern.FindAllStringSubmatch(input, -1) {
			var v string
			if ex.Extract != nil {
				v = ex.Extract(groups)
			} else if len(groups) > 1 {
				v = groups[1]
			} else {
				v = groups[0]
			}
			if v != "" && !seen[v] {
				seen[v] = true
				out = append(out, v)
			}
		}
	}
	return out
}
