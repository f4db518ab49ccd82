package probe

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/caribeleads/intel-cli/pkg/places"
)

// GoogleReviewsResult holds the outcome of a Google reviews probe.
type GoogleReviewsResult struct {
	PlaceName    string  `json:"place_name,omitempty"`
	Rating       float64 `json:"rating"`
	TotalReviews int     `json:"total_reviews"`

	ResponseRate      float64 `json:"response_rate"`
	AvgReviewLength   int     `json:"avg_review_length"`
	NegativeReviews   int     `json:"negative_reviews"`
	UnansweredReviews int     `json:"unanswered_reviews"`

	CommonComplaints []string `json:"common_complaints,omitempty"`
	CommonPraises    []string `json:"common_praises,omitempty"`

	Sentiment      string `json:"sentiment,omitempty"`       // mostly_positive / concerning / mixed
	ReviewVelocity string `json:"review_velocity,omitempty"` // fast / moderate / slow

	ScrapeSuccess bool   `json:"scrape_success"`
	Error         string `json:"error,omitempty"`
}

// complaintKeywords flag recurring problems in Spanish-language reviews.
var complaintKeywords = []string{
	"demora", "lento", "frío", "sucio", "mal servicio",
	"grosero", "caro", "ruido", "espera", "desorganizado",
}

// praiseKeywords flag recurring highlights in Spanish-language reviews.
var praiseKeywords = []string{
	"delicioso", "excelente", "amable", "recomendado",
	"hermoso", "limpio", "rápido", "atención", "increíble",
}

// GoogleReviewsProbe analyzes a place's Google reviews via the Places
// API. A nil client means no API key was configured; that is reported
// in the result, not panicked on.
type GoogleReviewsProbe struct {
	client places.Client
}

// NewGoogleReviewsProbe creates a Google reviews probe. client may be
// nil when no API key is available.
func NewGoogleReviewsProbe(client places.Client) *GoogleReviewsProbe {
	return &GoogleReviewsProbe{client: client}
}

// Scrape fetches place details and derives review intelligence,
// never returning an error.
func (p *GoogleReviewsProbe) Scrape(ctx context.Context, placeID string) *GoogleReviewsResult {
	result := &GoogleReviewsResult{}

	if p.client == nil {
		result.Error = "google places api key not configured"
		return result
	}
	if placeID == "" {
		result.Error = "no place id"
		return result
	}

	details, err := p.client.Details(ctx, placeID)
	if err != nil {
		result.Error = err.Error()
		return result
	}

	result.PlaceName = details.DisplayName.Text
	result.Rating = details.Rating
	result.TotalReviews = details.UserRatingCount

	answered := 0
	totalLength := 0
	positive := 0
	complaintSeen := map[string]bool{}
	praiseSeen := map[string]bool{}

	for _, r := range details.Reviews {
		text := strings.ToLower(r.Text.Text)
		totalLength += len(r.Text.Text)

		if r.OwnerReply != nil && r.OwnerReply.Text != "" {
			answered++
		} else {
			result.UnansweredReviews++
		}

		if r.Rating <= 2 {
			result.NegativeReviews++
		}
		if r.Rating >= 4 {
			positive++
		}

		for _, kw := range complaintKeywords {
			if !complaintSeen[kw] && strings.Contains(text, kw) {
				complaintSeen[kw] = true
				result.CommonComplaints = append(result.CommonComplaints, kw)
			}
		}
		for _, kw := range praiseKeywords {
			if !praiseSeen[kw] && strings.Contains(text, kw) {
				praiseSeen[kw] = true
				result.CommonPraises = append(result.CommonPraises, kw)
			}
		}
	}

	if n := len(details.Reviews); n > 0 {
		result.ResponseRate = float64(answered) / float64(n)
		result.AvgReviewLength = totalLength / n
	}

	switch {
	case positive > 3*result.NegativeReviews:
		result.Sentiment = "mostly_positive"
	case result.NegativeReviews > positive:
		result.Sentiment = "concerning"
	default:
		result.Sentiment = "mixed"
	}

	switch {
	case result.TotalReviews > 500:
		result.ReviewVelocity = "fast"
	case result.TotalReviews > 100:
		result.ReviewVelocity = "moderate"
	default:
		result.ReviewVelocity = "slow"
	}

	result.ScrapeSuccess = true

	zap.L().Debug("google reviews probe complete",
		zap.String("place_id", placeID),
		zap.Int("total_reviews", result.TotalReviews),
		zap.String("sentiment", result.Sentiment),
	)

	return result
}
