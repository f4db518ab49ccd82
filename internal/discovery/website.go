package discovery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"github.com/caribeleads/intel-cli/internal/parse"
)

// handleExtractors pull Instagram handles from website HTML, in
// priority order: profile URLs, short-domain URLs, @ mentions, labeled
// mentions, and JSON-embedded config values.
var handleExtractors = []parse.Extractor{
	{Pattern: regexp.MustCompile(`instagram\.com/([A-Za-z0-9_.]+)`)},
	{Pattern: regexp.MustCompile(`instagr\.am/([A-Za-z0-9_.]+)`)},
	{Pattern: regexp.MustCompile(`@([A-Za-z0-9_.]{2,30})`)},
	{Pattern: regexp.MustCompile(`(?i)Instagram:?\s+@?([A-Za-z0-9_.]+)`)},
	{Pattern: regexp.MustCompile(`(?i)\bIG:?\s+@?([A-Za-z0-9_.]+)`)},
	{Pattern: regexp.MustCompile(`"instagram"\s*:\s*"@?([A-Za-z0-9_.]+)"`)},
}

var footerHandleRe = regexp.MustCompile(`instagram\.com/([A-Za-z0-9_.]+)`)

// CandidatesFromHTML extracts handle candidates from a business
// website's HTML. Links found inside a <footer> element carry the
// strongest evidence (businesses link their own profile there) and are
// tagged website_footer at 0.95; all other hits are website at 0.9.
func CandidatesFromHTML(html string) []Candidate {
	if html == "" {
		return nil
	}

	footerHandles := footerLinks(html)

	var candidates []Candidate
	seen := make(map[string]bool)

	add := func(handle, source string, conf float64) {
		handle = strings.ToLower(strings.Trim(handle, "/"))
		if seen[handle] || !ValidHandle(handle) {
			return
		}
		seen[handle] = true
		candidates = append(candidates, Candidate{
			Handle:     handle,
			Source:     source,
			Confidence: conf,
		})
	}

	for _, h := range footerHandles {
		add(h, SourceWebsiteFooter, confWebsiteFooter)
	}
	for _, h := range parse.AllMatches(html, handleExtractors) {
		add(h, SourceWebsite, confWebsite)
	}

	return candidates
}

// footerLinks parses the HTML and returns handles from instagram links
// inside <footer> elements.
func footerLinks(html string) []string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		zap.L().Debug("discovery: footer parse failed", zap.Error(err))
		return nil
	}

	var handles []string
	doc.Find("footer a[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		if m := footerHandleRe.FindStringSubmatch(href); m != nil {
			handles = append(handles, m[1])
		}
	})
	return handles
}
