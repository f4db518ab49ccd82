package intel

import "fmt"

// Follower-tier contributions to the digital presence score.
var tierPoints = map[string]int{
	"mega":   30,
	"large":  25,
	"medium": 20,
	"small":  15,
	"micro":  10,
}

// computeSummaryMetrics fills the cross-source aggregates from the
// probes that succeeded. Absent or failed probes contribute nothing,
// so an empty gather yields presence 0 and opportunity 100.
func computeSummaryMetrics(r *ComprehensiveIntelligence) {
	presence := 0
	opportunity := 100

	if r.Instagram != nil && r.Instagram.ScrapeSuccess {
		r.TotalSocialFollowers = r.Instagram.Followers
		presence += tierPoints[r.Instagram.FollowerTier]
	}

	ratingSum := 0.0
	ratingSources := 0
	if r.Google != nil && r.Google.ScrapeSuccess {
		r.TotalReviewsAllPlatforms += r.Google.TotalReviews
		if r.Google.Rating > 0 {
			ratingSum += r.Google.Rating
			ratingSources++
		}
		if r.Google.ResponseRate > 0.5 {
			opportunity -= 25
		}
	}
	if r.TripAdvisor != nil && r.TripAdvisor.ScrapeSuccess {
		r.TotalReviewsAllPlatforms += r.TripAdvisor.ReviewCount
		if r.TripAdvisor.Rating > 0 {
			ratingSum += r.TripAdvisor.Rating
			ratingSources++
		}
		presence += 15
	}
	if ratingSources > 0 {
		r.AverageRatingAllPlatforms = ratingSum / float64(ratingSources)
	}

	switch {
	case r.TotalReviewsAllPlatforms > 500:
		presence += 25
	case r.TotalReviewsAllPlatforms > 100:
		presence += 20
	case r.TotalReviewsAllPlatforms > 20:
		presence += 15
	case r.TotalReviewsAllPlatforms > 0:
		presence += 10
	}

	if r.WhatsApp != nil && r.WhatsApp.ScrapeSuccess && r.WhatsApp.HasWhatsApp {
		presence += 15
		if r.WhatsApp.AutoReply {
			opportunity -= 30
		}
	}

	if r.OTA != nil && r.OTA.ScrapeSuccess {
		if r.OTA.ListedOnBooking {
			presence += 15
		}
		if r.OTA.OTADependencyScore <= 50 {
			opportunity -= 20
		}
	}

	if presence > 100 {
		presence = 100
	}
	if opportunity < 0 {
		opportunity = 0
	}
	r.DigitalPresenceScore = presence
	r.AutomationOpportunityScore = opportunity
}

// buildOutreachHooks assembles the hook sentences in a fixed order:
// reviews first, then commissions, WhatsApp, engagement.
func buildOutreachHooks(r *ComprehensiveIntelligence) []string {
	hooks := []string{}

	if r.Google != nil && r.Google.ScrapeSuccess && r.Google.UnansweredReviews > 10 {
		hooks = append(hooks, fmt.Sprintf(
			"Tienen %d reseñas en Google sin responder. Cada reseña ignorada le cuesta clientes nuevos.",
			r.Google.UnansweredReviews))
	}

	if r.OTA != nil && r.OTA.ScrapeSuccess && r.OTA.EstimatedMonthlyCommissionLoss > 1000 {
		hooks = append(hooks, fmt.Sprintf(
			"Están perdiendo aproximadamente $%.0f USD al mes en comisiones de OTAs que podrían recuperar con reservas directas.",
			r.OTA.EstimatedMonthlyCommissionLoss))
	}

	if r.WhatsApp != nil && r.WhatsApp.ScrapeSuccess && r.WhatsApp.OutreachHook != "" {
		hooks = append(hooks, r.WhatsApp.OutreachHook)
	}

	if r.Instagram != nil && r.Instagram.ScrapeSuccess &&
		r.Instagram.EngagementEstimate == "low" && r.Instagram.Followers >= 1000 {
		hooks = append(hooks, fmt.Sprintf(
			"Su Instagram tiene %s seguidores pero poca interacción. Con contenido automatizado esa audiencia se convierte en reservas.",
			formatCount(r.Instagram.Followers)))
	}

	return hooks
}

// formatCount renders follower counts the way Instagram displays them.
func formatCount(n int64) string {
	switch {
	case n >= 1_000_000:
		return trimZero(fmt.Sprintf("%.1fM", float64(n)/1_000_000))
	case n >= 1_000:
		return trimZero(fmt.Sprintf("%.1fK", float64(n)/1_000))
	default:
		return fmt.Sprintf("%d", n)
	}
}

func trimZero(s string) string {
	if len(s) >= 3 && s[len(s)-3] == '.' && s[len(s)-2] == '0' {
		return s[:len(s)-3] + s[len(s)-1:]
	}
	return s
}
