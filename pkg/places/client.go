// Package places wraps the Google Places API for review intelligence.
package places

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/rotisserie/eris"

	"github.com/caribeleads/intel-cli/internal/retry"
)

const defaultBaseURL = "https://places.googleapis.com/v1"

// Client performs Google Places API operations.
type Client interface {
	Details(ctx context.Context, placeID string) (*DetailsResponse, error)
}

// DetailsResponse is the subset of Place Details used for review analysis.
type DetailsResponse struct {
	DisplayName     DisplayName `json:"displayName"`
	Rating          float64     `json:"rating"`
	UserRatingCount int         `json:"userRatingCount"`
	Reviews         []Review    `json:"reviews"`
}

// DisplayName holds the place's display name.
type DisplayName struct {
	Text string `json:"text"`
}

// Review is a single user review, with the owner's reply when present.
type Review struct {
	Rating     float64     `json:"rating"`
	Text       ReviewText  `json:"text"`
	OwnerReply *OwnerReply `json:"ownerReply,omitempty"`
}

// ReviewText holds the review body.
type ReviewText struct {
	Text string `json:"text"`
}

// OwnerReply holds the owner's response to a review.
type OwnerReply struct {
	Text string `json:"text"`
}

// Option configures the client.
type Option func(*httpClient)

// WithBaseURL overrides the default API base URL.
func WithBaseURL(url string) Option {
	return func(c *httpClient) {
		c.baseURL = url
	}
}

// WithHTTPClient overrides the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *httpClient) {
		c.http = hc
	}
}

// WithRetryConfig overrides the transient-failure retry policy.
func WithRetryConfig(cfg retry.Config) Option {
	return func(c *httpClient) {
		c.retryCfg = cfg
	}
}

type httpClient struct {
	apiKey   string
	baseURL  string
	http     *http.Client
	retryCfg retry.Config
}

// NewClient creates a Google Places API client. Transient failures
// (429, 5xx, network timeouts) are retried with backoff.
func NewClient(apiKey string, opts ...Option) Client {
	c := &httpClient{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		http: &http.Client{
			Timeout: 10 * time.Second,
		},
		retryCfg: retry.DefaultConfig(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *httpClient) Details(ctx context.Context, placeID string) (*DetailsResponse, error) {
	var result *DetailsResponse
	err := retry.Do(ctx, c.retryCfg, func(ctx context.Context) error {
		var err error
		result, err = c.details(ctx, placeID)
		return err
	})
	return result, err
}

func (c *httpClient) details(ctx context.Context, placeID string) (*DetailsResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/places/"+placeID, nil)
	if err != nil {
		return nil, eris.Wrap(err, "places: create request")
	}

	req.Header.Set("X-Goog-Api-Key", c.apiKey)
	req.Header.Set("X-Goog-FieldMask", "displayName,rating,userRatingCount,reviews")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, retry.MarkTransient(eris.Wrap(err, "places: send request"), 0)
	}
	defer resp.Body.Close() //nolint:errcheck

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, eris.Wrap(err, "places: read response")
	}

	if resp.StatusCode != http.StatusOK {
		apiErr := eris.Errorf("places: unexpected status %d: %s", resp.StatusCode, string(respBody))
		if retry.RetryableStatus(resp.StatusCode) {
			return nil, retry.MarkTransient(apiErr, resp.StatusCode)
		}
		return nil, apiErr
	}

	var result DetailsResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, eris.Wrap(err, "places: unmarshal response")
	}

	return &result, nil
}
