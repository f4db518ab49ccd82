// Package parse provides shared text-normalization helpers for scraped
// content: human-formatted count strings and ordered regex extraction.
package parse

import (
	"math"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
)

// suffixMultipliers maps human count suffixes to their scale.
var suffixMultipliers = map[byte]float64{
	'K': 1_000,
	'M': 1_000_000,
	'B': 1_000_000_000,
}

// ParseCount converts a human-formatted count string to an integer.
// Accepts plain numbers ("950"), thousands separators ("1,234"), and
// K/M/B suffixes ("12K", "12.3K", "1.5M").
func ParseCount(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, eris.New("parse: empty count string")
	}

	mult := 1.0
	upper := strings.ToUpper(s)
	if m, ok := suffixMultipliers[upper[len(upper)-1]]; ok {
		mult = m
		s = s[:len(s)-1]
	}

	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, eris.New("parse: count string has no digits")
	}

	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, eris.Wrapf(err, "parse: count %q", s)
	}
	if n < 0 {
		return 0, eris.Errorf("parse: negative count %q", s)
	}

	// Rounding, not truncation: 2.01 * 1e6 is 2009999.999… in binary.
	return int64(math.Round(n * mult)), nil
}

// ParseCountDefault is ParseCount with a zero fallback, for probe code
// where a missing count is a parse miss rather than a failure.
func ParseCountDefault(s string) int64 {
	n, err := ParseCount(s)
	if err != nil {
		return 0
	}
	return n
}
