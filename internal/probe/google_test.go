package probe

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caribeleads/intel-cli/pkg/places"
	"github.com/caribeleads/intel-cli/pkg/places/mocks"
)

func TestGoogleReviewsProbe_NoAPIKey(t *testing.T) {
	p := NewGoogleReviewsProbe(nil)
	result := p.Scrape(context.Background(), "ChIJtest")

	assert.False(t, result.ScrapeSuccess)
	assert.Contains(t, result.Error, "api key")
}

func TestGoogleReviewsProbe_NoPlaceID(t *testing.T) {
	p := NewGoogleReviewsProbe(&mocks.MockClient{})
	result := p.Scrape(context.Background(), "")

	assert.False(t, result.ScrapeSuccess)
	assert.Contains(t, result.Error, "place id")
}

func TestGoogleReviewsProbe_Scrape(t *testing.T) {
	client := &mocks.MockClient{}
	client.On("Details", context.Background(), "ChIJtest").Return(&places.DetailsResponse{
		DisplayName:     places.DisplayName{Text: "Restaurante La Cevichería"},
		Rating:          4.4,
		UserRatingCount: 620,
		Reviews: []places.Review{
			{Rating: 5, Text: places.ReviewText{Text: "Excelente, todo delicioso"}, OwnerReply: &places.OwnerReply{Text: "¡Gracias!"}},
			{Rating: 5, Text: places.ReviewText{Text: "Muy amable el personal"}},
			{Rating: 4, Text: places.ReviewText{Text: "Recomendado"}},
			{Rating: 5, Text: places.ReviewText{Text: "Hermoso lugar"}},
			{Rating: 1, Text: places.ReviewText{Text: "Mucha demora y mal servicio"}},
		},
	}, nil)

	p := NewGoogleReviewsProbe(client)
	result := p.Scrape(context.Background(), "ChIJtest")

	require.True(t, result.ScrapeSuccess, result.Error)
	assert.Equal(t, "Restaurante La Cevichería", result.PlaceName)
	assert.Equal(t, 620, result.TotalReviews)
	assert.InDelta(t, 0.2, result.ResponseRate, 0.001) // 1 of 5 answered
	assert.Equal(t, 4, result.UnansweredReviews)
	assert.Equal(t, 1, result.NegativeReviews)
	assert.Contains(t, result.CommonComplaints, "demora")
	assert.Contains(t, result.CommonComplaints, "mal servicio")
	assert.Contains(t, result.CommonPraises, "delicioso")
	assert.Contains(t, result.CommonPraises, "amable")
	assert.Equal(t, "mostly_positive", result.Sentiment) // 4 positive > 3×1 negative
	assert.Equal(t, "fast", result.ReviewVelocity)       // 620 > 500
}

func TestGoogleReviewsProbe_ConcerningSentiment(t *testing.T) {
	client := &mocks.MockClient{}
	client.On("Details", context.Background(), "ChIJbad").Return(&places.DetailsResponse{
		Rating:          2.1,
		UserRatingCount: 48,
		Reviews: []places.Review{
			{Rating: 1, Text: places.ReviewText{Text: "sucio"}},
			{Rating: 2, Text: places.ReviewText{Text: "caro y lento"}},
			{Rating: 4, Text: places.ReviewText{Text: "bien"}},
		},
	}, nil)

	p := NewGoogleReviewsProbe(client)
	result := p.Scrape(context.Background(), "ChIJbad")

	require.True(t, result.ScrapeSuccess)
	assert.Equal(t, "concerning", result.Sentiment) // 2 negative > 1 positive
	assert.Equal(t, "slow", result.ReviewVelocity)
}

func TestGoogleReviewsProbe_APIError(t *testing.T) {
	client := &mocks.MockClient{}
	client.On("Details", context.Background(), "ChIJerr").Return(nil, assert.AnError)

	p := NewGoogleReviewsProbe(client)
	result := p.Scrape(context.Background(), "ChIJerr")

	assert.False(t, result.ScrapeSuccess)
	assert.NotEmpty(t, result.Error)
}
