package discovery

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldTransformer strips diacritics so Spanish business names compare
// cleanly against ASCII handles ("Cevichería" → "cevicheria").
var foldTransformer = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// Fold lowercases and strips diacritics for name comparison.
func Fold(s string) string {
	out, _, err := transform.String(foldTransformer, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}

// genericWords carry no identity signal in hospitality names and are
// excluded from overlap scoring.
var genericWords = map[string]bool{
	"hotel": true, "hostal": true, "restaurante": true, "restaurant": true,
	"cafe": true, "bar": true, "spa": true, "tour": true, "tours": true,
	"the": true, "las": true, "los": true, "del": true, "de": true, "la": true, "el": true,
	"y": true, "and": true,
}

// SignificantWords splits a business name into its folded identity
// words: longer than two characters and not a generic hospitality term.
func SignificantWords(name string) []string {
	var out []string
	for _, w := range strings.Fields(Fold(name)) {
		w = strings.Trim(w, ".,;:()\"'")
		if len(w) > 2 && !genericWords[w] {
			out = append(out, w)
		}
	}
	return out
}

// NameOverlap scores how much of the business name's significant words
// appear in a profile name: shared words divided by the business-name
// word count. Returns 0 when the business name has no significant words.
func NameOverlap(businessName, profileName string) float64 {
	words := SignificantWords(businessName)
	if len(words) == 0 {
		return 0
	}

	profile := Fold(profileName)
	shared := 0
	for _, w := range words {
		if strings.Contains(profile, w) {
			shared++
		}
	}
	return float64(shared) / float64(len(words))
}
