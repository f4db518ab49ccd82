package probe

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/caribeleads/intel-cli/internal/parse"
)

const defaultInstagramBaseURL = "https://www.instagram.com"

// InstagramResult holds the outcome of an Instagram profile probe.
type InstagramResult struct {
	Handle     string `json:"handle"`
	ProfileURL string `json:"profile_url"`

	Followers  int64  `json:"followers"`
	Following  int64  `json:"following"`
	PostsCount int64  `json:"posts_count"`
	FullName   string `json:"full_name,omitempty"`
	Bio        string `json:"bio,omitempty"`

	Verified        bool `json:"verified"`
	BusinessAccount bool `json:"business_account"`

	FollowerTier       string `json:"follower_tier,omitempty"`
	PostingFrequency   string `json:"posting_frequency,omitempty"`
	EngagementEstimate string `json:"engagement_estimate,omitempty"`

	ScrapeSuccess bool   `json:"scrape_success"`
	Error         string `json:"error,omitempty"`
}

// InstagramProbe scrapes public Instagram profile pages.
type InstagramProbe struct {
	fetcher *Fetcher
	baseURL string
}

// InstagramOption configures the probe.
type InstagramOption func(*InstagramProbe)

// WithInstagramBaseURL overrides the Instagram base URL (for tests).
func WithInstagramBaseURL(url string) InstagramOption {
	return func(p *InstagramProbe) {
		p.baseURL = strings.TrimRight(url, "/")
	}
}

// NewInstagramProbe creates an Instagram profile probe.
func NewInstagramProbe(f *Fetcher, opts ...InstagramOption) *InstagramProbe {
	p := &InstagramProbe{
		fetcher: f,
		baseURL: defaultInstagramBaseURL,
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

// ProfileURL returns the public profile URL for a handle.
func (p *InstagramProbe) ProfileURL(handle string) string {
	return fmt.Sprintf("%s/%s/", p.baseURL, strings.TrimPrefix(handle, "@"))
}

// ProfilePage is a raw fetched profile, used by the discovery engine to
// validate candidate handles without re-implementing the fetch.
type ProfilePage struct {
	Handle     string
	StatusCode int
	NotFound   bool
	HTML       string
}

// FetchProfile fetches a profile page. A 404 is reported via NotFound,
// not as an error.
func (p *InstagramProbe) FetchProfile(ctx context.Context, handle string) (*ProfilePage, error) {
	handle = strings.TrimPrefix(strings.TrimSpace(handle), "@")
	if handle == "" {
		return nil, eris.New("instagram: empty handle")
	}

	res, err := p.fetcher.Get(ctx, p.ProfileURL(handle))
	if err != nil {
		return nil, err
	}

	page := &ProfilePage{
		Handle:     handle,
		StatusCode: res.StatusCode,
		HTML:       res.Body,
	}
	if res.StatusCode == http.StatusNotFound || isNotFoundPage(res.Body) {
		page.NotFound = true
	}
	return page, nil
}

// Scrape fetches and parses a profile, never returning an error.
func (p *InstagramProbe) Scrape(ctx context.Context, handle string) *InstagramResult {
	handle = strings.TrimPrefix(strings.TrimSpace(handle), "@")
	result := &InstagramResult{
		Handle:     handle,
		ProfileURL: p.ProfileURL(handle),
	}

	page, err := p.FetchProfile(ctx, handle)
	if err != nil {
		result.Error = err.Error()
		return result
	}
	if page.NotFound {
		result.Error = "profile not found"
		return result
	}
	if page.StatusCode >= 400 {
		result.Error = fmt.Sprintf("profile fetch returned status %d", page.StatusCode)
		return result
	}

	stats, ok := ExtractProfileStats(page.HTML)
	if !ok {
		result.Error = "follower count not found in profile HTML"
		return result
	}

	result.Followers = stats.Followers
	result.Following = stats.Following
	result.PostsCount = stats.Posts
	result.FullName = ExtractOGTitle(page.HTML)
	result.Bio = ExtractMetaDescription(page.HTML)
	result.Verified = HasVerifiedMarker(page.HTML)
	result.BusinessAccount = HasBusinessMarker(page.HTML)

	result.FollowerTier = FollowerTier(result.Followers)
	result.PostingFrequency = PostingFrequency(result.PostsCount)
	result.EngagementEstimate = EngagementEstimate(result.Followers, result.Following)
	result.ScrapeSuccess = true

	zap.L().Debug("instagram probe complete",
		zap.String("handle", handle),
		zap.Int64("followers", result.Followers),
		zap.String("tier", result.FollowerTier),
	)

	return result
}

// ProfileStats are the raw counts extracted from a profile page.
type ProfileStats struct {
	Followers int64
	Following int64
	Posts     int64
}

var (
	// og:description / meta description carry counts in the form
	// "1.2K Followers, 340 Following, 89 Posts".
	metaCountsRe = regexp.MustCompile(`content="([\d.,KMBkmb]+)\s+Followers?,\s*([\d.,KMBkmb]+)\s+Following,\s*([\d.,KMBkmb]+)\s+Posts`)

	// Fallback: counts embedded in page JSON.
	jsonFollowersRe = regexp.MustCompile(`"edge_followed_by"\s*:\s*\{\s*"count"\s*:\s*(\d+)`)
	jsonFollowingRe = regexp.MustCompile(`"edge_follow"\s*:\s*\{\s*"count"\s*:\s*(\d+)`)
	jsonPostsRe     = regexp.MustCompile(`"edge_owner_to_timeline_media"\s*:\s*\{\s*"count"\s*:\s*(\d+)`)

	ogTitleRe = regexp.MustCompile(`property="og:title"\s+content="([^"]+)"`)
	descRe    = regexp.MustCompile(`name="description"\s+content="([^"]+)"`)
	ogDescRe  = regexp.MustCompile(`property="og:description"\s+content="([^"]+)"`)
)

// Per-field cascades: the meta-description counts outrank the
// JSON-embedded fallbacks.
var (
	followerExtractors = []parse.Extractor{
		{Pattern: metaCountsRe, Extract: func(g []string) string { return g[1] }},
		{Pattern: jsonFollowersRe},
	}
	followingExtractors = []parse.Extractor{
		{Pattern: metaCountsRe, Extract: func(g []string) string { return g[2] }},
		{Pattern: jsonFollowingRe},
	}
	postExtractors = []parse.Extractor{
		{Pattern: metaCountsRe, Extract: func(g []string) string { return g[3] }},
		{Pattern: jsonPostsRe},
	}
	fullNameExtractors = []parse.Extractor{
		{Pattern: ogTitleRe, Extract: func(g []string) string { return stripOGTitle(g[1]) }},
	}
	descriptionExtractors = []parse.Extractor{
		{Pattern: descRe},
		{Pattern: ogDescRe},
	}
)

// ExtractProfileStats pulls follower/following/post counts from profile
// HTML. A page without a follower count is not a profile.
func ExtractProfileStats(html string) (ProfileStats, bool) {
	followers, ok := parse.FirstMatch(html, followerExtractors)
	if !ok {
		return ProfileStats{}, false
	}
	stats := ProfileStats{Followers: parse.ParseCountDefault(followers)}
	if v, ok := parse.FirstMatch(html, followingExtractors); ok {
		stats.Following = parse.ParseCountDefault(v)
	}
	if v, ok := parse.FirstMatch(html, postExtractors); ok {
		stats.Posts = parse.ParseCountDefault(v)
	}
	return stats, true
}

// stripOGTitle drops the trailing "(@handle) • Instagram" decoration.
func stripOGTitle(title string) string {
	if i := strings.Index(title, "(@"); i > 0 {
		title = title[:i]
	}
	return strings.TrimSpace(title)
}

// ExtractOGTitle returns the og:title content, decoration stripped.
func ExtractOGTitle(html string) string {
	v, _ := parse.FirstMatch(html, fullNameExtractors)
	return v
}

// ExtractMetaDescription returns the meta/og description content.
func ExtractMetaDescription(html string) string {
	v, _ := parse.FirstMatch(html, descriptionExtractors)
	return v
}

// HasVerifiedMarker reports whether the page carries a verified badge.
func HasVerifiedMarker(html string) bool {
	lower := strings.ToLower(html)
	return strings.Contains(lower, `"is_verified":true`) ||
		strings.Contains(lower, "verificada") ||
		strings.Contains(lower, "verified badge")
}

// HasBusinessMarker reports whether the page is a business account.
func HasBusinessMarker(html string) bool {
	lower := strings.ToLower(html)
	return strings.Contains(lower, `"is_business_account":true`) ||
		strings.Contains(lower, `"business_category_name"`) ||
		strings.Contains(lower, "professional_account")
}

// isNotFoundPage detects Instagram's soft-404 body.
func isNotFoundPage(html string) bool {
	return strings.Contains(html, "Page Not Found") ||
		strings.Contains(html, "Sorry, this page isn't available")
}

// FollowerTier buckets a follower count. The tiers partition [0, inf):
// boundaries at 1K / 10K / 100K / 1M.
func FollowerTier(followers int64) string {
	switch {
	case followers >= 1_000_000:
		return "mega"
	case followers >= 100_000:
		return "large"
	case followers >= 10_000:
		return "medium"
	case followers >= 1_000:
		return "small"
	default:
		return "micro"
	}
}

// PostingFrequency buckets a post count.
func PostingFrequency(posts int64) string {
	switch {
	case posts == 0:
		return "inactive"
	case posts < 50:
		return "sporadic"
	case posts < 200:
		return "regular"
	default:
		return "active"
	}
}

// EngagementEstimate buckets the followers/following ratio. Accounts
// that follow far fewer than they attract are organically engaging.
func EngagementEstimate(followers, following int64) string {
	if following == 0 {
		if followers > 0 {
			return "high"
		}
		return "low"
	}
	ratio := float64(followers) / float64(following)
	switch {
	case ratio > 2:
		return "high"
	case ratio > 0.5:
		return "medium"
	default:
		return "low"
	}
}
