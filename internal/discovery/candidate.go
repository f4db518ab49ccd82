// Package discovery resolves a business's Instagram handle from
// website evidence and name heuristics, with a confidence score per
// candidate.
package discovery

import (
	"sort"
	"strings"
)

// Candidate source tags, ordered roughly by evidence strength.
const (
	SourceExisting      = "existing"
	SourceWebsite       = "website"
	SourceWebsiteFooter = "website_footer"
	SourceNameVariation = "name_variation"
)

// Starting confidences per candidate channel.
const (
	confExisting      = 0.5
	confWebsite       = 0.9
	confWebsiteFooter = 0.95
	confNameVariation = 0.4
)

// Candidate is a hypothesized Instagram handle for a business.
// Confidence only grows (additive boosts, capped at 1.0) or is halved
// when the profile turns out to be inaccessible.
type Candidate struct {
	Handle     string  `json:"handle"`
	Source     string  `json:"source"`
	Confidence float64 `json:"confidence"`
	ProfileURL string  `json:"profile_url,omitempty"`
	Notes      string  `json:"notes,omitempty"`

	// Enriched during validation.
	Followers int64  `json:"followers,omitempty"`
	FullName  string `json:"full_name,omitempty"`
	Bio       string `json:"bio,omitempty"`
	Verified  bool   `json:"verified,omitempty"`
	Business  bool   `json:"business_account,omitempty"`
	Validated bool   `json:"validated"`
}

// clamp keeps a candidate's confidence inside [0, 1].
func (c *Candidate) clamp() {
	if c.Confidence > 1 {
		c.Confidence = 1
	}
	if c.Confidence < 0 {
		c.Confidence = 0
	}
}

// boost adds an evidence increment, capped at 1.0.
func (c *Candidate) boost(delta float64, note string) {
	c.Confidence += delta
	c.clamp()
	c.addNote(note)
}

func (c *Candidate) addNote(note string) {
	if note == "" {
		return
	}
	if c.Notes != "" {
		c.Notes += "; "
	}
	c.Notes += note
}

// Dedupe merges candidates sharing a handle: the higher-confidence one
// wins; on an exact tie the source labels are unioned instead of
// dropping information. Input order is preserved for first occurrences,
// so Dedupe is idempotent.
func Dedupe(candidates []Candidate) []Candidate {
	byHandle := make(map[string]int)
	var out []Candidate

	for _, c := range candidates {
		i, seen := byHandle[c.Handle]
		if !seen {
			byHandle[c.Handle] = len(out)
			out = append(out, c)
			continue
		}
		kept := &out[i]
		switch {
		case c.Confidence > kept.Confidence:
			out[i] = c
		case c.Confidence == kept.Confidence:
			mergeSources(kept, c.Source)
		}
	}
	return out
}

// mergeSources unions a source label into a candidate's comma-joined
// source set.
func mergeSources(c *Candidate, source string) {
	for _, s := range strings.Split(c.Source, ",") {
		if s == source {
			return
		}
	}
	c.Source += "," + source
}

// Rank sorts candidates by confidence descending. Ties keep their
// relative order so higher-evidence channels stay ahead.
func Rank(candidates []Candidate) {
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Confidence > candidates[j].Confidence
	})
}
