package probe

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bookingServer(t *testing.T, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/searchresults.html", r.URL.Path)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestOTAProbe_WebsiteWidgetsAndBooking(t *testing.T) {
	srv := bookingServer(t, `<html><body>Hotel Casa Loma - Cartagena</body></html>`)

	html := `<html><body>
<script src="https://widget.getyourguide.com/x.js"></script>
<a href="https://www.expedia.com/hotel123">Book on Expedia</a>
</body></html>`

	p := NewOTAProbe(NewFetcher(), WithBookingBaseURL(srv.URL))
	result := p.Scrape(context.Background(), "Hotel Casa Loma", "hotel", html)

	require.True(t, result.ScrapeSuccess)
	assert.True(t, result.ListedOnBooking)
	assert.ElementsMatch(t, []string{"booking.com", "expedia", "getyourguide"}, result.DetectedOTAs)
	assert.Equal(t, 80, result.OTADependencyScore)
	assert.Equal(t, "high", result.DirectBookingOpportunity)
	// hotel: 30000 × 0.7 (dependency > 50) × 0.18
	assert.InDelta(t, 3780, result.EstimatedMonthlyCommissionLoss, 0.001)
}

func TestOTAProbe_NoOTAs(t *testing.T) {
	srv := bookingServer(t, `<html><body>No properties found.</body></html>`)

	p := NewOTAProbe(NewFetcher(), WithBookingBaseURL(srv.URL))
	result := p.Scrape(context.Background(), "Hotel Casa Loma", "hotel", `<html><body>direct booking only</body></html>`)

	require.True(t, result.ScrapeSuccess)
	assert.False(t, result.ListedOnBooking)
	assert.Empty(t, result.DetectedOTAs)
	assert.Equal(t, 10, result.OTADependencyScore)
	assert.Equal(t, "low", result.DirectBookingOpportunity)
	// hotel: 30000 × 0.4 × 0.18
	assert.InDelta(t, 2160, result.EstimatedMonthlyCommissionLoss, 0.001)
}

func TestOTAProbe_SingleOTA(t *testing.T) {
	srv := bookingServer(t, `<html><body>nothing relevant</body></html>`)

	p := NewOTAProbe(NewFetcher(), WithBookingBaseURL(srv.URL))
	result := p.Scrape(context.Background(), "Velero Azul", "boat_charter", `<a href="https://airbnb.com/x">airbnb</a>`)

	require.True(t, result.ScrapeSuccess)
	assert.Equal(t, []string{"airbnb"}, result.DetectedOTAs)
	assert.Equal(t, 40, result.OTADependencyScore)
	assert.Equal(t, "medium", result.DirectBookingOpportunity)
}

func TestOTAProbe_BookingFetchFails(t *testing.T) {
	p := NewOTAProbe(NewFetcher(), WithBookingBaseURL("http://127.0.0.1:1"))
	result := p.Scrape(context.Background(), "Hotel Casa Loma", "hotel", `<a href="https://vrbo.com/1">vrbo</a>`)

	// The HTML scan still counts even when the live check fails.
	assert.True(t, result.ScrapeSuccess)
	assert.NotEmpty(t, result.Error)
	assert.Equal(t, []string{"vrbo"}, result.DetectedOTAs)
}

func TestOTAProbe_NoInputs(t *testing.T) {
	p := NewOTAProbe(NewFetcher(), WithBookingBaseURL("http://127.0.0.1:1"))
	result := p.Scrape(context.Background(), "Hotel Casa Loma", "hotel", "")

	assert.False(t, result.ScrapeSuccess)
	assert.NotEmpty(t, result.Error)
}

func TestOTAProbe_UnknownCategoryUsesDefaults(t *testing.T) {
	srv := bookingServer(t, `nothing`)

	p := NewOTAProbe(NewFetcher(), WithBookingBaseURL(srv.URL))
	result := p.Scrape(context.Background(), "Galería Arte", "gallery", `booking.com widget here`)

	require.True(t, result.ScrapeSuccess)
	// default: 10000 × 0.4 × 0.15 (one OTA → dependency 40)
	assert.InDelta(t, 600, result.EstimatedMonthlyCommissionLoss, 0.001)
}
