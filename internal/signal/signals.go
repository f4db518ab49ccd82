package signal

import (
	"github.com/caribeleads/intel-cli/internal/model"
)

// Signal names. Each is an independently detected boolean condition.
const (
	SignalNoWebsite       = "no_website"
	SignalNoInstagram     = "no_instagram"
	SignalNoPhone         = "no_phone"
	SignalNoGoogleListing = "no_google_listing"

	SignalNoRating    = "no_rating"
	SignalLowRating   = "low_rating"
	SignalMidRating   = "mid_rating"
	SignalHighRating  = "high_rating"
	SignalNoReviews   = "no_reviews"
	SignalLowReviews  = "low_reviews"
	SignalHighReviews = "high_reviews"

	SignalUnansweredReviews = "unanswered_reviews"
	SignalManyUnanswered    = "many_unanswered_reviews"
	SignalManualResponses   = "manual_responses"
	SignalAutoReplyActive   = "auto_reply_active"

	SignalLuxuryPositioning = "luxury_positioning"
	SignalBudgetPositioning = "budget_positioning"

	SignalOTADependent = "ota_dependent"
	SignalFoodBusiness = "food_business"
	SignalTourBusiness = "tour_business"
	SignalWellness     = "wellness_business"
	SignalNightlife    = "nightlife_business"
)

// Rating and review thresholds for signal detection.
const (
	lowRatingMax    = 3.5
	midRatingMax    = 4.3
	highRatingMin   = 4.6
	lowReviewsMax   = 25
	highReviewsMin  = 300
	manyUnansweredN = 10
)

// DetectSignals evaluates the detection conditions against a business's
// stored attributes. The result order follows the fixed evaluation
// order below; downstream problem selection depends on it.
func DetectSignals(biz model.Business) []string {
	var signals []string
	add := func(cond bool, s string) {
		if cond {
			signals = append(signals, s)
		}
	}

	vertical := CategoryKey(biz.Category)

	// Contact-channel presence.
	add(!biz.HasWebsite(), SignalNoWebsite)
	add(biz.InstagramHandle == "", SignalNoInstagram)
	add(biz.Phone == "", SignalNoPhone)
	add(biz.GooglePlaceID == "", SignalNoGoogleListing)

	// Rating and review volume.
	add(biz.Rating == 0, SignalNoRating)
	add(biz.Rating > 0 && biz.Rating < lowRatingMax, SignalLowRating)
	add(biz.Rating >= lowRatingMax && biz.Rating < midRatingMax, SignalMidRating)
	add(biz.Rating >= highRatingMin, SignalHighRating)
	add(biz.ReviewCount == 0, SignalNoReviews)
	add(biz.ReviewCount > 0 && biz.ReviewCount < lowReviewsMax, SignalLowReviews)
	add(biz.ReviewCount > highReviewsMin, SignalHighReviews)

	// Responsiveness.
	add(biz.UnansweredReviews > 0, SignalUnansweredReviews)
	add(biz.UnansweredReviews > manyUnansweredN, SignalManyUnanswered)
	add(biz.Phone != "" && !biz.HasAutoReply, SignalManualResponses)
	add(biz.HasAutoReply, SignalAutoReplyActive)

	// Positioning.
	add(biz.PriceTier == model.PriceTierLuxury, SignalLuxuryPositioning)
	add(biz.PriceTier == model.PriceTierBudget, SignalBudgetPositioning)

	// Vertical-derived.
	add(otaDependentVerticals[vertical], SignalOTADependent)
	add(vertical == VerticalRestaurant || vertical == VerticalCafe, SignalFoodBusiness)
	add(vertical == VerticalTourOperator || vertical == VerticalBoatCharter, SignalTourBusiness)
	add(vertical == VerticalSpa, SignalWellness)
	add(vertical == VerticalNightclub, SignalNightlife)

	return signals
}

// hasSignal reports membership in a detected signal list.
func hasSignal(signals []string, name string) bool {
	for _, s := range signals {
		if s == name {
			return true
		}
	}
	return false
}
