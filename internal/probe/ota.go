package probe

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"go.uber.org/zap"
)

const defaultBookingBaseURL = "https://www.booking.com"

// otaKeywords are the OTA widget/link markers scanned for in website HTML.
var otaKeywords = []string{
	"booking.com", "expedia", "airbnb", "vrbo",
	"viator", "getyourguide", "hotels.com",
}

// categoryMonthlyRevenue is the assumed monthly revenue (USD) per vertical,
// used for commission-loss estimates.
var categoryMonthlyRevenue = map[string]float64{
	"hotel":         30000,
	"villa_rental":  20000,
	"tour_operator": 15000,
	"boat_charter":  18000,
}

// categoryCommissionRate is the typical OTA commission rate per vertical.
var categoryCommissionRate = map[string]float64{
	"hotel":         0.18,
	"villa_rental":  0.15,
	"tour_operator": 0.25,
	"boat_charter":  0.20,
}

const (
	defaultMonthlyRevenue = 10000
	defaultCommissionRate = 0.15
)

// OTAResult holds the outcome of an OTA presence scan.
type OTAResult struct {
	DetectedOTAs    []string `json:"detected_otas,omitempty"`
	ListedOnBooking bool     `json:"listed_on_booking"`

	OTADependencyScore       int    `json:"ota_dependency_score"`
	DirectBookingOpportunity string `json:"direct_booking_opportunity,omitempty"` // high / medium / low

	EstimatedMonthlyCommissionLoss float64 `json:"estimated_monthly_commission_loss"`

	ScrapeSuccess bool   `json:"scrape_success"`
	Error         string `json:"error,omitempty"`
}

// OTAProbe detects a business's online-travel-agency footprint from its
// website HTML and a live booking.com search.
type OTAProbe struct {
	fetcher        *Fetcher
	bookingBaseURL string
}

// OTAOption configures the probe.
type OTAOption func(*OTAProbe)

// WithBookingBaseURL overrides the booking.com base URL (for tests).
func WithBookingBaseURL(url string) OTAOption {
	return func(p *OTAProbe) {
		p.bookingBaseURL = strings.TrimRight(url, "/")
	}
}

// NewOTAProbe creates an OTA presence probe.
func NewOTAProbe(f *Fetcher, opts ...OTAOption) *OTAProbe {
	p := &OTAProbe{
		fetcher:        f,
		bookingBaseURL: defaultBookingBaseURL,
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

// Scrape scans websiteHTML (may be empty) for OTA markers and checks
// booking.com search results for the business name, never returning an
// error. categoryKey is the normalized vertical used for the
// commission-loss estimate.
func (p *OTAProbe) Scrape(ctx context.Context, name, categoryKey, websiteHTML string) *OTAResult {
	result := &OTAResult{}
	detected := map[string]bool{}

	if websiteHTML != "" {
		lower := strings.ToLower(websiteHTML)
		for _, kw := range otaKeywords {
			if strings.Contains(lower, kw) {
				detected[kw] = true
			}
		}
	}

	bookingChecked := p.checkBooking(ctx, name, result)
	if result.ListedOnBooking {
		detected["booking.com"] = true
	}

	for _, kw := range otaKeywords {
		if detected[kw] {
			result.DetectedOTAs = append(result.DetectedOTAs, kw)
		}
	}

	switch n := len(result.DetectedOTAs); {
	case n >= 3:
		result.OTADependencyScore = 80
		result.DirectBookingOpportunity = "high"
	case n >= 2:
		result.OTADependencyScore = 60
		result.DirectBookingOpportunity = "high"
	case n >= 1:
		result.OTADependencyScore = 40
		result.DirectBookingOpportunity = "medium"
	default:
		result.OTADependencyScore = 10
		result.DirectBookingOpportunity = "low"
	}

	revenue, ok := categoryMonthlyRevenue[categoryKey]
	if !ok {
		revenue = defaultMonthlyRevenue
	}
	rate, ok := categoryCommissionRate[categoryKey]
	if !ok {
		rate = defaultCommissionRate
	}
	otaShare := 0.4
	if result.OTADependencyScore > 50 {
		otaShare = 0.7
	}
	result.EstimatedMonthlyCommissionLoss = revenue * otaShare * rate

	// The scan succeeded if either input channel produced evidence.
	result.ScrapeSuccess = websiteHTML != "" || bookingChecked

	zap.L().Debug("ota probe complete",
		zap.String("name", name),
		zap.Strings("otas", result.DetectedOTAs),
		zap.Int("dependency", result.OTADependencyScore),
	)

	return result
}

// checkBooking searches booking.com for the business and matches the
// first two name tokens against the response. Reports whether the
// check completed.
func (p *OTAProbe) checkBooking(ctx context.Context, name string, result *OTAResult) bool {
	tokens := strings.Fields(strings.ToLower(name))
	if len(tokens) > 2 {
		tokens = tokens[:2]
	}
	if len(tokens) == 0 {
		return false
	}

	searchURL := fmt.Sprintf("%s/searchresults.html?ss=%s", p.bookingBaseURL, url.QueryEscape(name))
	res, err := p.fetcher.Get(ctx, searchURL)
	if err != nil {
		result.Error = err.Error()
		return false
	}
	if res.StatusCode >= 400 {
		result.Error = fmt.Sprintf("booking search returned status %d", res.StatusCode)
		return false
	}

	lower := strings.ToLower(res.Body)
	listed := true
	for _, tok := range tokens {
		if !strings.Contains(lower, tok) {
			listed = false
			break
		}
	}
	result.ListedOnBooking = listed
	return true
}
