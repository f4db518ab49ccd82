// Package probe implements the per-source network probes. Each probe
// performs one or more HTTP fetches with a browser-like User-Agent,
// parses the response with regex heuristics, and returns a fully
// populated result struct. Probes never return an error: failures are
// recorded in the result's Error field with ScrapeSuccess left false.
package probe

import (
	"context"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/rotisserie/eris"
)

const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36"

// maxBodyBytes limits how much of a scraped page is read.
const maxBodyBytes = 512 * 1024

// Fetcher performs browser-like HTTP fetches shared by all probes.
type Fetcher struct {
	client    *http.Client
	noFollow  *http.Client
	userAgent string
}

// FetcherOption configures the fetcher.
type FetcherOption func(*Fetcher)

// WithTimeout overrides the default request timeout.
func WithTimeout(d time.Duration) FetcherOption {
	return func(f *Fetcher) {
		f.client.Timeout = d
		f.noFollow.Timeout = d
	}
}

// WithUserAgent overrides the default User-Agent header.
func WithUserAgent(ua string) FetcherOption {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates a Fetcher with browser-like defaults.
func NewFetcher(opts ...FetcherOption) *Fetcher {
	transport := &http.Transport{
		DialContext: (&net.Dialer{
			Timeout: 10 * time.Second,
		}).DialContext,
		TLSHandshakeTimeout: 10 * time.Second,
	}
	f := &Fetcher{
		client: &http.Client{
			Timeout:   10 * time.Second,
			Transport: transport,
		},
		noFollow: &http.Client{
			Timeout:   10 * time.Second,
			Transport: transport,
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		userAgent: defaultUserAgent,
	}
	for _, o := range opts {
		o(f)
	}
	return f
}

// FetchResult is a fetched page body with its status code.
type FetchResult struct {
	StatusCode int
	Body       string
}

// Get fetches a URL following redirects and returns up to 512 KB of body.
func (f *Fetcher) Get(ctx context.Context, url string) (*FetchResult, error) {
	return f.do(ctx, f.client, http.MethodGet, url)
}

// GetNoRedirect fetches a URL without following redirects, so 301/302
// responses are observable by the caller.
func (f *Fetcher) GetNoRedirect(ctx context.Context, url string) (*FetchResult, error) {
	return f.do(ctx, f.noFollow, http.MethodGet, url)
}

func (f *Fetcher) do(ctx context.Context, client *http.Client, method, url string) (*FetchResult, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return nil, eris.Wrap(err, "probe: create request")
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept-Language", "es-CO,es;q=0.9,en;q=0.8")

	resp, err := client.Do(req)
	if err != nil {
		return nil, eris.Wrap(err, "probe: fetch")
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, eris.Wrap(err, "probe: read body")
	}

	return &FetchResult{
		StatusCode: resp.StatusCode,
		Body:       string(body),
	}, nil
}
