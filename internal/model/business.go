// Package model holds the value objects shared across the intelligence
// engine. The CRUD layer that persists them lives outside this module.
package model

// PriceTier buckets a business by its price positioning.
type PriceTier string

const (
	PriceTierBudget   PriceTier = "budget"
	PriceTierMidRange PriceTier = "mid_range"
	PriceTierLuxury   PriceTier = "luxury"
)

// Business carries the identifying attributes and stored signals for a
// single hospitality business. Optional identifiers are empty when
// unknown; the gatherer schedules only the probes whose identifiers are
// present.
type Business struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	City     string `json:"city"`
	Country  string `json:"country,omitempty"`

	Website     string `json:"website,omitempty"`
	WebsiteHTML string `json:"website_html,omitempty"` // pre-fetched homepage, when the caller has it
	Phone       string `json:"phone,omitempty"`

	InstagramHandle string `json:"instagram_handle,omitempty"`
	GooglePlaceID   string `json:"google_place_id,omitempty"`

	// Stored review/profile attributes from the CRM record, used by the
	// signal engine without network I/O.
	Rating            float64   `json:"rating,omitempty"`
	ReviewCount       int       `json:"review_count,omitempty"`
	UnansweredReviews int       `json:"unanswered_reviews,omitempty"`
	PriceTier         PriceTier `json:"price_tier,omitempty"`
	HasAutoReply      bool      `json:"has_auto_reply,omitempty"`

	// Handles previously suggested for this business (manual notes,
	// earlier runs). Seed candidates for discovery.
	KnownInstagramCandidates []string `json:"known_instagram_candidates,omitempty"`
}

// HasWebsite reports whether any website evidence is available, either a
// URL to fetch or pre-fetched HTML.
func (b Business) HasWebsite() bool {
	return b.Website != "" || b.WebsiteHTML != ""
}
