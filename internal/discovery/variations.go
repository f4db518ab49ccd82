package discovery

import "strings"

// NameVariations synthesizes plausible handle guesses from a business
// name and city: joined word forms, city-suffixed forms, the local
// "_oficial"/"_co"/"_colombia" conventions, and an initials+city form.
// Returns at most max distinct, filter-passing handles.
func NameVariations(name, city string, max int) []string {
	if max <= 0 {
		return nil
	}
	words := strings.Fields(Fold(name))
	var clean []string
	for _, w := range words {
		w = sanitizeHandleChars(w)
		if w != "" {
			clean = append(clean, w)
		}
	}
	if len(clean) == 0 {
		return nil
	}

	joined := strings.Join(clean, "")
	cityPart := sanitizeHandleChars(Fold(city))

	var initials strings.Builder
	for _, w := range clean {
		initials.WriteByte(w[0])
	}

	guesses := []string{
		joined,
		strings.Join(clean, "_"),
		strings.Join(clean, "."),
		joined + cityPart,
		joined + "_" + cityPart,
		joined + "_oficial",
		joined + "_co",
		joined + "_colombia",
		initials.String() + cityPart,
		clean[0] + cityPart,
	}

	var out []string
	seen := make(map[string]bool)
	for _, g := range guesses {
		g = strings.Trim(g, "_.")
		if seen[g] || !ValidHandle(g) {
			continue
		}
		seen[g] = true
		out = append(out, g)
		if len(out) >= max {
			break
		}
	}
	return out
}

// sanitizeHandleChars strips everything outside [a-z0-9_.].
func sanitizeHandleChars(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_', r == '.':
			b.WriteRune(r)
		}
	}
	return b.String()
}
