// Package intel orchestrates the per-source probes into a single
// cross-source intelligence result for a business.
package intel

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/caribeleads/intel-cli/internal/discovery"
	"github.com/caribeleads/intel-cli/internal/model"
	"github.com/caribeleads/intel-cli/internal/probe"
	"github.com/caribeleads/intel-cli/internal/signal"
)

// ComprehensiveIntelligence aggregates the probe results that ran plus
// cross-source summary metrics. Probe fields are nil when the probe was
// not scheduled; a scheduled probe always fills its slot, recording
// failure in its ScrapeSuccess/Error fields.
type ComprehensiveIntelligence struct {
	Business model.Business `json:"business"`

	Instagram   *probe.InstagramResult     `json:"instagram,omitempty"`
	Google      *probe.GoogleReviewsResult `json:"google,omitempty"`
	TripAdvisor *probe.TripAdvisorResult   `json:"tripadvisor,omitempty"`
	OTA         *probe.OTAResult           `json:"ota,omitempty"`
	WhatsApp    *probe.WhatsAppResult      `json:"whatsapp,omitempty"`

	Discovery *discovery.Result `json:"discovery,omitempty"`

	TotalSocialFollowers      int64   `json:"total_social_followers"`
	TotalReviewsAllPlatforms  int     `json:"total_reviews_all_platforms"`
	AverageRatingAllPlatforms float64 `json:"average_rating_all_platforms"`

	DigitalPresenceScore       int `json:"digital_presence_score"`
	AutomationOpportunityScore int `json:"automation_opportunity_score"`

	OutreachHooks []string `json:"outreach_hooks"`

	GatheredAt time.Time `json:"gathered_at"`
}

// tripAdvisorVerticals are the verticals worth a TripAdvisor search.
var tripAdvisorVerticals = map[string]bool{
	signal.VerticalRestaurant:   true,
	signal.VerticalHotel:        true,
	signal.VerticalTourOperator: true,
	signal.VerticalSpa:          true,
	signal.VerticalBoatCharter:  true,
}

// otaVerticals are the verticals with meaningful OTA exposure.
var otaVerticals = map[string]bool{
	signal.VerticalHotel:        true,
	signal.VerticalVillaRental:  true,
	signal.VerticalTourOperator: true,
	signal.VerticalBoatCharter:  true,
}

// Gatherer fans out to the applicable probes and reduces their results
// into summary metrics. It holds no state across Gather calls.
type Gatherer struct {
	instagram   *probe.InstagramProbe
	google      *probe.GoogleReviewsProbe
	tripadvisor *probe.TripAdvisorProbe
	ota         *probe.OTAProbe
	whatsapp    *probe.WhatsAppProbe
	discovery   *discovery.Engine
	fetcher     *probe.Fetcher
}

// NewGatherer creates a gatherer over the given probes. discoveryEngine
// may be nil to disable handle discovery.
func NewGatherer(
	instagram *probe.InstagramProbe,
	google *probe.GoogleReviewsProbe,
	tripadvisor *probe.TripAdvisorProbe,
	ota *probe.OTAProbe,
	whatsapp *probe.WhatsAppProbe,
	discoveryEngine *discovery.Engine,
	fetcher *probe.Fetcher,
) *Gatherer {
	return &Gatherer{
		instagram:   instagram,
		google:      google,
		tripadvisor: tripadvisor,
		ota:         ota,
		whatsapp:    whatsapp,
		discovery:   discoveryEngine,
		fetcher:     fetcher,
	}
}

// Gather schedules the probes whose preconditions hold and joins them
// with settle-all semantics: no probe's failure aborts another's, and a
// panicking probe only voids its own slot. Summary metrics are computed
// from the successful subset only.
func (g *Gatherer) Gather(ctx context.Context, biz model.Business) *ComprehensiveIntelligence {
	log := zap.L().With(zap.String("business", biz.Name))
	result := &ComprehensiveIntelligence{
		Business:   biz,
		GatheredAt: time.Now().UTC(),
	}

	vertical := signal.CategoryKey(biz.Category)

	// Each goroutine writes only its own slot, so no locking is needed.
	eg, egCtx := errgroup.WithContext(ctx)

	if biz.InstagramHandle != "" || (g.discovery != nil && biz.HasWebsite()) {
		eg.Go(func() error {
			defer func() {
				if r := recover(); r != nil && result.Instagram == nil {
					result.Instagram = &probe.InstagramResult{Error: panicMsg("instagram", r)}
				}
			}()
			handle := biz.InstagramHandle
			if handle == "" {
				result.Discovery = g.discovery.Discover(egCtx, biz)
				if result.Discovery.BestMatch == nil {
					return nil
				}
				handle = result.Discovery.BestMatch.Handle
			}
			result.Instagram = g.instagram.Scrape(egCtx, handle)
			return nil
		})
	}

	if biz.GooglePlaceID != "" {
		eg.Go(func() error {
			defer func() {
				if r := recover(); r != nil && result.Google == nil {
					result.Google = &probe.GoogleReviewsResult{Error: panicMsg("google", r)}
				}
			}()
			result.Google = g.google.Scrape(egCtx, biz.GooglePlaceID)
			return nil
		})
	}

	if biz.Name != "" && tripAdvisorVerticals[vertical] {
		eg.Go(func() error {
			defer func() {
				if r := recover(); r != nil && result.TripAdvisor == nil {
					result.TripAdvisor = &probe.TripAdvisorResult{Error: panicMsg("tripadvisor", r)}
				}
			}()
			result.TripAdvisor = g.tripadvisor.Scrape(egCtx, biz.Name, biz.City, biz.Country)
			return nil
		})
	}

	if biz.Name != "" && otaVerticals[vertical] {
		eg.Go(func() error {
			defer func() {
				if r := recover(); r != nil && result.OTA == nil {
					result.OTA = &probe.OTAResult{Error: panicMsg("ota", r)}
				}
			}()
			result.OTA = g.ota.Scrape(egCtx, biz.Name, vertical, g.websiteHTML(egCtx, biz))
			return nil
		})
	}

	if biz.Phone != "" {
		eg.Go(func() error {
			defer func() {
				if r := recover(); r != nil && result.WhatsApp == nil {
					result.WhatsApp = &probe.WhatsAppResult{Error: panicMsg("whatsapp", r)}
				}
			}()
			result.WhatsApp = g.whatsapp.Scrape(egCtx, biz.Phone, biz.HasAutoReply)
			return nil
		})
	}

	_ = eg.Wait()

	computeSummaryMetrics(result)
	result.OutreachHooks = buildOutreachHooks(result)

	log.Info("gather complete",
		zap.Int("presence_score", result.DigitalPresenceScore),
		zap.Int("automation_score", result.AutomationOpportunityScore),
		zap.Int("hooks", len(result.OutreachHooks)),
	)

	return result
}

// websiteHTML returns the caller-supplied homepage HTML, fetching the
// website when only a URL is known. Used by the OTA widget scan.
func (g *Gatherer) websiteHTML(ctx context.Context, biz model.Business) string {
	if biz.WebsiteHTML != "" {
		return biz.WebsiteHTML
	}
	if biz.Website == "" || g.fetcher == nil {
		return ""
	}
	res, err := g.fetcher.Get(ctx, biz.Website)
	if err != nil || res.StatusCode >= 400 {
		return ""
	}
	return res.Body
}

// panicMsg logs a recovered probe panic and renders it as the slot's
// failure message so sibling probes keep their results.
func panicMsg(name string, r any) string {
	zap.L().Warn("probe panicked",
		zap.String("probe", name),
		zap.Any("panic", r),
	)
	return fmt.Sprintf("probe panic: %v", r)
}
