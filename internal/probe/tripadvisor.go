package probe

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/caribeleads/intel-cli/internal/parse"
)

const defaultTripAdvisorBaseURL = "https://www.tripadvisor.com"

// TripAdvisorResult holds the outcome of a TripAdvisor search probe.
type TripAdvisorResult struct {
	SearchURL   string  `json:"search_url"`
	Rating      float64 `json:"rating"`
	ReviewCount int     `json:"review_count"`
	Ranking     string  `json:"ranking,omitempty"` // "#3 of 187"
	HasAwards   bool    `json:"has_awards"`

	ReviewVelocity string `json:"review_velocity,omitempty"` // fast / moderate / slow

	ScrapeSuccess bool   `json:"scrape_success"`
	Error         string `json:"error,omitempty"`
}

// TripAdvisorProbe searches TripAdvisor for a business and extracts its
// rating, review count, and ranking from the result page.
type TripAdvisorProbe struct {
	fetcher *Fetcher
	baseURL string
}

// TripAdvisorOption configures the probe.
type TripAdvisorOption func(*TripAdvisorProbe)

// WithTripAdvisorBaseURL overrides the TripAdvisor base URL (for tests).
func WithTripAdvisorBaseURL(url string) TripAdvisorOption {
	return func(p *TripAdvisorProbe) {
		p.baseURL = strings.TrimRight(url, "/")
	}
}

// NewTripAdvisorProbe creates a TripAdvisor search probe.
func NewTripAdvisorProbe(f *Fetcher, opts ...TripAdvisorOption) *TripAdvisorProbe {
	p := &TripAdvisorProbe{
		fetcher: f,
		baseURL: defaultTripAdvisorBaseURL,
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

var (
	taRatingRe  = regexp.MustCompile(`(\d\.\d)\s*(?:of 5|de 5|bubbles|burbujas)`)
	taReviewsRe = regexp.MustCompile(`([\d,.]+)\s*(?:reviews|opiniones)`)
	taRankingRe = regexp.MustCompile(`#([\d,]+)\s+of\s+([\d,]+)`)
)

// awardMarkers flag award mentions, matched case-insensitively.
var awardMarkers = []string{
	"travelers' choice", "travellers' choice", "certificate of excellence", "award",
}

// Scrape searches for the business and parses the result page,
// never returning an error.
func (p *TripAdvisorProbe) Scrape(ctx context.Context, name, city, country string) *TripAdvisorResult {
	query := strings.TrimSpace(strings.Join([]string{name, city, country}, " "))
	searchURL := fmt.Sprintf("%s/Search?q=%s", p.baseURL, url.QueryEscape(query))

	result := &TripAdvisorResult{SearchURL: searchURL}

	res, err := p.fetcher.Get(ctx, searchURL)
	if err != nil {
		result.Error = err.Error()
		return result
	}
	if res.StatusCode >= 400 {
		result.Error = fmt.Sprintf("search returned status %d", res.StatusCode)
		return result
	}

	if m := taRatingRe.FindStringSubmatch(res.Body); m != nil {
		if r, err := strconv.ParseFloat(m[1], 64); err == nil {
			result.Rating = r
		}
	}
	if m := taReviewsRe.FindStringSubmatch(res.Body); m != nil {
		result.ReviewCount = int(parse.ParseCountDefault(m[1]))
	}
	if m := taRankingRe.FindStringSubmatch(res.Body); m != nil {
		result.Ranking = fmt.Sprintf("#%s of %s", m[1], m[2])
	}

	lower := strings.ToLower(res.Body)
	for _, marker := range awardMarkers {
		if strings.Contains(lower, marker) {
			result.HasAwards = true
			break
		}
	}

	switch {
	case result.ReviewCount > 1000:
		result.ReviewVelocity = "fast"
	case result.ReviewCount > 200:
		result.ReviewVelocity = "moderate"
	default:
		result.ReviewVelocity = "slow"
	}

	if result.Rating == 0 && result.ReviewCount == 0 {
		result.Error = "no rating or review count found in search results"
		return result
	}

	result.ScrapeSuccess = true

	zap.L().Debug("tripadvisor probe complete",
		zap.String("query", query),
		zap.Float64("rating", result.Rating),
		zap.Int("reviews", result.ReviewCount),
	)

	return result
}
