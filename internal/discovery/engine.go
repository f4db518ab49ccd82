package discovery

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/caribeleads/intel-cli/internal/model"
	"github.com/caribeleads/intel-cli/internal/probe"
)

// Result is the outcome of a discovery run: the ranked candidate list
// and the best match, if any candidate cleared the decision threshold.
type Result struct {
	BestMatch        *Candidate  `json:"best_match,omitempty"`
	Candidates       []Candidate `json:"candidates"`
	SourcesAttempted []string    `json:"sources_attempted"`
	Success          bool        `json:"success"`
}

// bestMatchThreshold is the minimum confidence for a best-match decision.
const bestMatchThreshold = 0.5

// followerBoostThreshold is the follower count above which a candidate
// earns the popularity boost.
const followerBoostThreshold = 1000

// Engine discovers a business's Instagram handle. Candidate validation
// is deliberately sequential behind the limiter: all fetches hit the
// same third-party host.
type Engine struct {
	probe          *probe.InstagramProbe
	fetcher        *probe.Fetcher
	limiter        *rate.Limiter
	maxValidations int
	maxVariations  int
}

// Option configures the engine.
type Option func(*Engine)

// WithLimiter overrides the profile-fetch rate limiter (tests use an
// unthrottled one).
func WithLimiter(l *rate.Limiter) Option {
	return func(e *Engine) { e.limiter = l }
}

// WithMaxValidations overrides how many top candidates get validated.
func WithMaxValidations(n int) Option {
	return func(e *Engine) { e.maxValidations = n }
}

// WithMaxVariations overrides how many name variations are synthesized.
func WithMaxVariations(n int) Option {
	return func(e *Engine) { e.maxVariations = n }
}

// NewEngine creates a discovery engine. The fetcher is used to download
// the business website when only a URL is known.
func NewEngine(p *probe.InstagramProbe, f *probe.Fetcher, opts ...Option) *Engine {
	e := &Engine{
		probe:          p,
		fetcher:        f,
		limiter:        rate.NewLimiter(rate.Every(300*time.Millisecond), 1),
		maxValidations: 8,
		maxVariations:  10,
	}
	for _, o := range opts {
		o(e)
	}
	return e
}

// Discover generates, filters, deduplicates, validates, and ranks
// handle candidates for a business.
func (e *Engine) Discover(ctx context.Context, biz model.Business) *Result {
	log := zap.L().With(zap.String("business", biz.Name))
	result := &Result{}

	var candidates []Candidate

	// Channel (a): caller-supplied candidates.
	if len(biz.KnownInstagramCandidates) > 0 {
		result.SourcesAttempted = append(result.SourcesAttempted, SourceExisting)
		for _, h := range biz.KnownInstagramCandidates {
			// Callers paste handles as typed ("@CasaLoma"); normalize
			// the same way website extraction does before validating.
			h = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(h), "@"))
			if ValidHandle(h) {
				candidates = append(candidates, Candidate{
					Handle:     h,
					Source:     SourceExisting,
					Confidence: confExisting,
				})
			}
		}
	}

	// Channel (b): website HTML extraction.
	if html := e.websiteHTML(ctx, biz); html != "" {
		result.SourcesAttempted = append(result.SourcesAttempted, SourceWebsite)
		fromSite := CandidatesFromHTML(html)
		candidates = append(candidates, fromSite...)
		log.Debug("website extraction complete", zap.Int("candidates", len(fromSite)))
	}

	// Channel (c): synthesized name variations, checked by live fetch.
	result.SourcesAttempted = append(result.SourcesAttempted, SourceNameVariation)
	candidates = append(candidates, e.checkVariations(ctx, biz)...)

	candidates = Dedupe(candidates)
	Rank(candidates)

	// Validate the strongest candidates.
	limit := e.maxValidations
	if limit > len(candidates) {
		limit = len(candidates)
	}
	for i := 0; i < limit; i++ {
		if ctx.Err() != nil {
			break
		}
		e.validate(ctx, biz, &candidates[i])
	}

	Rank(candidates)
	result.Candidates = candidates

	if len(candidates) > 0 && candidates[0].Confidence >= bestMatchThreshold {
		best := candidates[0]
		result.BestMatch = &best
		result.Success = true
	}

	log.Info("discovery complete",
		zap.Int("candidates", len(candidates)),
		zap.Bool("matched", result.Success),
	)

	return result
}

// websiteHTML returns the supplied homepage HTML, fetching it when only
// a URL is known.
func (e *Engine) websiteHTML(ctx context.Context, biz model.Business) string {
	if biz.WebsiteHTML != "" {
		return biz.WebsiteHTML
	}
	if biz.Website == "" || e.fetcher == nil {
		return ""
	}
	res, err := e.fetcher.Get(ctx, biz.Website)
	if err != nil {
		zap.L().Debug("discovery: website fetch failed",
			zap.String("url", biz.Website),
			zap.Error(err),
		)
		return ""
	}
	if res.StatusCode >= 400 {
		return ""
	}
	return res.Body
}

// checkVariations synthesizes handle guesses and keeps the ones whose
// profile page exists and carries follower markers.
func (e *Engine) checkVariations(ctx context.Context, biz model.Business) []Candidate {
	var out []Candidate
	for _, guess := range NameVariations(biz.Name, biz.City, e.maxVariations) {
		if err := e.limiter.Wait(ctx); err != nil {
			break
		}
		page, err := e.probe.FetchProfile(ctx, guess)
		if err != nil || page.NotFound {
			continue
		}
		if _, ok := probe.ExtractProfileStats(page.HTML); !ok {
			continue
		}
		out = append(out, Candidate{
			Handle:     guess,
			Source:     SourceNameVariation,
			Confidence: confNameVariation,
			Notes:      "name variation exists",
		})
	}
	return out
}

// validate fetches a candidate's profile and adjusts its confidence
// from the evidence found there. Fetch failure halves the confidence;
// every boost is capped at 1.0.
func (e *Engine) validate(ctx context.Context, biz model.Business, c *Candidate) {
	if err := e.limiter.Wait(ctx); err != nil {
		return
	}

	c.ProfileURL = e.probe.ProfileURL(c.Handle)

	page, err := e.probe.FetchProfile(ctx, c.Handle)
	if err != nil || page.NotFound {
		c.Confidence /= 2
		c.clamp()
		c.addNote("profile inaccessible")
		return
	}

	c.Validated = true

	c.FullName = probe.ExtractOGTitle(page.HTML)
	if c.FullName != "" {
		if overlap := NameOverlap(biz.Name, c.FullName); overlap > 0.5 {
			c.boost(0.3*overlap, fmt.Sprintf("name overlap %.2f", overlap))
		}
	}

	desc := probe.ExtractMetaDescription(page.HTML)
	c.Bio = desc
	if stats, ok := probe.ExtractProfileStats(page.HTML); ok {
		c.Followers = stats.Followers
		if stats.Followers > followerBoostThreshold {
			c.boost(0.1, "established audience")
		}
	}

	if biz.City != "" && desc != "" && containsFolded(desc, biz.City) {
		c.boost(0.2, "city match")
	}

	if probe.HasBusinessMarker(page.HTML) {
		c.Business = true
		c.boost(0.1, "business account")
	}
	if probe.HasVerifiedMarker(page.HTML) {
		c.Verified = true
		c.boost(0.1, "verified")
	}
}

// containsFolded is a diacritic-insensitive substring check.
func containsFolded(haystack, needle string) bool {
	return strings.Contains(Fold(haystack), Fold(needle))
}
