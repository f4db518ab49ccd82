package probe

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const profileHTML = `<html><head>
<title>Hotel Cartagena (@hotelcartagena) &bull; Instagram photos</title>
<meta property="og:title" content="Hotel Cartagena (@hotelcartagena) • Instagram photos and videos"/>
<meta property="og:description" content="1.2K Followers, 340 Following, 89 Posts - See Instagram photos and videos from Hotel Cartagena"/>
</head><body>"is_business_account":true</body></html>`

func TestInstagramProbe_Scrape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/hotelcartagena/", r.URL.Path)
		assert.Contains(t, r.Header.Get("User-Agent"), "Mozilla")
		_, _ = w.Write([]byte(profileHTML))
	}))
	defer srv.Close()

	p := NewInstagramProbe(NewFetcher(), WithInstagramBaseURL(srv.URL))
	result := p.Scrape(context.Background(), "hotelcartagena")

	require.True(t, result.ScrapeSuccess, result.Error)
	assert.Empty(t, result.Error)
	assert.Equal(t, int64(1200), result.Followers)
	assert.Equal(t, int64(340), result.Following)
	assert.Equal(t, int64(89), result.PostsCount)
	assert.Equal(t, "small", result.FollowerTier)
	assert.Equal(t, "sporadic", result.PostingFrequency)
	assert.Equal(t, "high", result.EngagementEstimate) // 1200/340 ≈ 3.5
	assert.Equal(t, "Hotel Cartagena", result.FullName)
	assert.True(t, result.BusinessAccount)
	assert.False(t, result.Verified)
}

func TestInstagramProbe_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	p := NewInstagramProbe(NewFetcher(), WithInstagramBaseURL(srv.URL))
	result := p.Scrape(context.Background(), "nope")

	assert.False(t, result.ScrapeSuccess)
	assert.Contains(t, result.Error, "not found")
	assert.Zero(t, result.Followers)
}

func TestInstagramProbe_SoftNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html><body>Sorry, this page isn't available.</body></html>`))
	}))
	defer srv.Close()

	p := NewInstagramProbe(NewFetcher(), WithInstagramBaseURL(srv.URL))
	result := p.Scrape(context.Background(), "nope")

	assert.False(t, result.ScrapeSuccess)
	assert.Contains(t, result.Error, "not found")
}

func TestInstagramProbe_NetworkError(t *testing.T) {
	p := NewInstagramProbe(NewFetcher(), WithInstagramBaseURL("http://127.0.0.1:1"))
	result := p.Scrape(context.Background(), "hotelcartagena")

	assert.False(t, result.ScrapeSuccess)
	assert.NotEmpty(t, result.Error)
}

func TestInstagramProbe_JSONFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html><body><script>
{"edge_followed_by":{"count":52000},"edge_follow":{"count":120},"edge_owner_to_timeline_media":{"count":412}}
</script></body></html>`))
	}))
	defer srv.Close()

	p := NewInstagramProbe(NewFetcher(), WithInstagramBaseURL(srv.URL))
	result := p.Scrape(context.Background(), "bigaccount")

	require.True(t, result.ScrapeSuccess, result.Error)
	assert.Equal(t, int64(52000), result.Followers)
	assert.Equal(t, "medium", result.FollowerTier)
	assert.Equal(t, "active", result.PostingFrequency)
}

func TestExtractProfileStats_MetaOutranksJSON(t *testing.T) {
	// Pages often carry both forms; the meta description is fresher.
	html := `<html><head>
<meta property="og:description" content="1.2K Followers, 340 Following, 89 Posts"/>
</head><body><script>
{"edge_followed_by":{"count":900},"edge_follow":{"count":10},"edge_owner_to_timeline_media":{"count":5}}
</script></body></html>`

	stats, ok := ExtractProfileStats(html)
	require.True(t, ok)
	assert.Equal(t, int64(1200), stats.Followers)
	assert.Equal(t, int64(340), stats.Following)
	assert.Equal(t, int64(89), stats.Posts)
}

func TestInstagramProbe_StripsAtPrefix(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/hotelcartagena/", r.URL.Path)
		_, _ = w.Write([]byte(profileHTML))
	}))
	defer srv.Close()

	p := NewInstagramProbe(NewFetcher(), WithInstagramBaseURL(srv.URL))
	result := p.Scrape(context.Background(), "@hotelcartagena")
	assert.True(t, result.ScrapeSuccess)
	assert.Equal(t, "hotelcartagena", result.Handle)
}

func TestFollowerTier_Partition(t *testing.T) {
	cases := []struct {
		followers int64
		tier      string
	}{
		{0, "micro"},
		{999, "micro"},
		{1000, "small"},
		{9999, "small"},
		{10000, "medium"},
		{99999, "medium"},
		{100000, "large"},
		{999999, "large"},
		{1000000, "mega"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.tier, FollowerTier(tc.followers), fmt.Sprintf("followers=%d", tc.followers))
	}
}

func TestPostingFrequency(t *testing.T) {
	assert.Equal(t, "inactive", PostingFrequency(0))
	assert.Equal(t, "sporadic", PostingFrequency(49))
	assert.Equal(t, "regular", PostingFrequency(50))
	assert.Equal(t, "regular", PostingFrequency(199))
	assert.Equal(t, "active", PostingFrequency(200))
}

func TestEngagementEstimate(t *testing.T) {
	assert.Equal(t, "high", EngagementEstimate(1200, 340))
	assert.Equal(t, "medium", EngagementEstimate(600, 500))
	assert.Equal(t, "low", EngagementEstimate(100, 500))
	assert.Equal(t, "high", EngagementEstimate(100, 0))
	assert.Equal(t, "low", EngagementEstimate(0, 0))
}
