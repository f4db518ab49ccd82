package intel

import (
	"fmt"
	"strings"
)

// FormatIntelligenceSummary renders a plain-text report for display or
// logging by the UI layer.
func FormatIntelligenceSummary(r *ComprehensiveIntelligence) string {
	var b strings.Builder

	b.WriteString("=== Business Intelligence ===\n")
	if r == nil {
		b.WriteString("no result\n")
		return b.String()
	}

	fmt.Fprintf(&b, "Business: %s (%s)\n", r.Business.Name, r.Business.Category)
	fmt.Fprintf(&b, "Digital presence:       %d/100\n", r.DigitalPresenceScore)
	fmt.Fprintf(&b, "Automation opportunity: %d/100\n", r.AutomationOpportunityScore)

	if r.TotalSocialFollowers > 0 {
		fmt.Fprintf(&b, "Social followers: %s\n", formatCount(r.TotalSocialFollowers))
	}
	if r.TotalReviewsAllPlatforms > 0 {
		fmt.Fprintf(&b, "Reviews (all platforms): %d, avg rating %.1f\n",
			r.TotalReviewsAllPlatforms, r.AverageRatingAllPlatforms)
	}

	b.WriteString("\nSources:\n")
	writeSource(&b, "Instagram", r.Instagram != nil, func() (bool, string) {
		return r.Instagram.ScrapeSuccess, r.Instagram.Error
	})
	writeSource(&b, "Google Reviews", r.Google != nil, func() (bool, string) {
		return r.Google.ScrapeSuccess, r.Google.Error
	})
	writeSource(&b, "TripAdvisor", r.TripAdvisor != nil, func() (bool, string) {
		return r.TripAdvisor.ScrapeSuccess, r.TripAdvisor.Error
	})
	writeSource(&b, "OTA presence", r.OTA != nil, func() (bool, string) {
		return r.OTA.ScrapeSuccess, r.OTA.Error
	})
	writeSource(&b, "WhatsApp", r.WhatsApp != nil, func() (bool, string) {
		return r.WhatsApp.ScrapeSuccess, r.WhatsApp.Error
	})

	if r.Instagram != nil && r.Instagram.ScrapeSuccess {
		fmt.Fprintf(&b, "\nInstagram: @%s, %s followers, tier %s, posting %s, engagement %s\n",
			r.Instagram.Handle, formatCount(r.Instagram.Followers),
			r.Instagram.FollowerTier, r.Instagram.PostingFrequency,
			r.Instagram.EngagementEstimate)
	}
	if r.Google != nil && r.Google.ScrapeSuccess {
		fmt.Fprintf(&b, "Google: %.1f stars over %d reviews, %d unanswered, sentiment %s\n",
			r.Google.Rating, r.Google.TotalReviews,
			r.Google.UnansweredReviews, r.Google.Sentiment)
	}
	if r.OTA != nil && r.OTA.ScrapeSuccess && r.OTA.EstimatedMonthlyCommissionLoss > 0 {
		fmt.Fprintf(&b, "OTA: dependency %d/100, est. commission loss $%.0f/mo\n",
			r.OTA.OTADependencyScore, r.OTA.EstimatedMonthlyCommissionLoss)
	}

	if len(r.OutreachHooks) > 0 {
		b.WriteString("\nOutreach hooks:\n")
		for _, h := range r.OutreachHooks {
			fmt.Fprintf(&b, "  - %s\n", h)
		}
	}

	return b.String()
}

func writeSource(b *strings.Builder, name string, ran bool, status func() (bool, string)) {
	if !ran {
		fmt.Fprintf(b, "  %-15s not scheduled\n", name)
		return
	}
	ok, errMsg := status()
	if ok {
		fmt.Fprintf(b, "  %-15s ok\n", name)
		return
	}
	fmt.Fprintf(b, "  %-15s failed: %s\n", name, errMsg)
}
