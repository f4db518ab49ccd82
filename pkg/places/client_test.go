package places

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caribeleads/intel-cli/internal/retry"
)

func TestDetails_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/places/ChIJtest123", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("X-Goog-Api-Key"))
		assert.Contains(t, r.Header.Get("X-Goog-FieldMask"), "reviews")

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(DetailsResponse{
			DisplayName:     DisplayName{Text: "Hotel Casa Loma"},
			Rating:          4.2,
			UserRatingCount: 214,
			Reviews: []Review{
				{Rating: 5, Text: ReviewText{Text: "Excelente servicio"}, OwnerReply: &OwnerReply{Text: "Gracias"}},
				{Rating: 1, Text: ReviewText{Text: "Mal servicio"}},
			},
		})
	}))
	defer srv.Close()

	client := NewClient("test-key", WithBaseURL(srv.URL))
	resp, err := client.Details(context.Background(), "ChIJtest123")

	require.NoError(t, err)
	assert.Equal(t, "Hotel Casa Loma", resp.DisplayName.Text)
	assert.InDelta(t, 4.2, resp.Rating, 0.001)
	assert.Equal(t, 214, resp.UserRatingCount)
	require.Len(t, resp.Reviews, 2)
	assert.NotNil(t, resp.Reviews[0].OwnerReply)
	assert.Nil(t, resp.Reviews[1].OwnerReply)
}

func TestDetails_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error": "invalid API key"}`))
	}))
	defer srv.Close()

	client := NewClient("bad-key", WithBaseURL(srv.URL))
	resp, err := client.Details(context.Background(), "ChIJtest123")

	assert.Error(t, err)
	assert.Nil(t, resp)
	assert.Contains(t, err.Error(), "403")
}

func TestDetails_RetriesRateLimit(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		if calls < 3 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		_ = json.NewEncoder(w).Encode(DetailsResponse{Rating: 4.0})
	}))
	defer srv.Close()

	client := NewClient("test-key", WithBaseURL(srv.URL),
		WithRetryConfig(retry.Config{MaxAttempts: 3, InitialBackoff: time.Millisecond}))
	resp, err := client.Details(context.Background(), "ChIJtest123")

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
	assert.InDelta(t, 4.0, resp.Rating, 0.001)
}

func TestDetails_ContextCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	client := NewClient("test-key", WithBaseURL(srv.URL))
	_, err := client.Details(ctx, "ChIJtest123")
	assert.Error(t, err)
}
