package main

import (
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/caribeleads/intel-cli/internal/config"
	"github.com/caribeleads/intel-cli/internal/discovery"
	"github.com/caribeleads/intel-cli/internal/intel"
	"github.com/caribeleads/intel-cli/internal/model"
	"github.com/caribeleads/intel-cli/internal/probe"
	"github.com/caribeleads/intel-cli/pkg/places"
)

// buildGatherer wires the probes and the discovery engine from config.
func buildGatherer(cfg *config.Config) *intel.Gatherer {
	f := probe.NewFetcher(
		probe.WithTimeout(time.Duration(cfg.Scrape.TimeoutSecs)*time.Second),
		probe.WithUserAgent(cfg.Scrape.UserAgent),
	)

	var placesClient places.Client
	if cfg.Google.PlacesKey != "" {
		placesClient = places.NewClient(cfg.Google.PlacesKey,
			places.WithBaseURL(cfg.Google.BaseURL))
	} else {
		zap.L().Warn("google places key not set, google reviews probe disabled")
	}

	igProbe := probe.NewInstagramProbe(f)
	engine := discovery.NewEngine(igProbe, f,
		discovery.WithLimiter(rate.NewLimiter(rate.Every(cfg.Discovery.ValidationInterval()), 1)),
		discovery.WithMaxValidations(cfg.Discovery.MaxValidations),
		discovery.WithMaxVariations(cfg.Discovery.MaxNameVariations),
	)

	return intel.NewGatherer(
		igProbe,
		probe.NewGoogleReviewsProbe(placesClient),
		probe.NewTripAdvisorProbe(f),
		probe.NewOTAProbe(f),
		probe.NewWhatsAppProbe(f),
		engine,
		f,
	)
}

// buildDiscoveryEngine wires a standalone discovery engine from config.
func buildDiscoveryEngine(cfg *config.Config) *discovery.Engine {
	f := probe.NewFetcher(
		probe.WithTimeout(time.Duration(cfg.Scrape.TimeoutSecs)*time.Second),
		probe.WithUserAgent(cfg.Scrape.UserAgent),
	)
	igProbe := probe.NewInstagramProbe(f)
	return discovery.NewEngine(igProbe, f,
		discovery.WithLimiter(rate.NewLimiter(rate.Every(cfg.Discovery.ValidationInterval()), 1)),
		discovery.WithMaxValidations(cfg.Discovery.MaxValidations),
		discovery.WithMaxVariations(cfg.Discovery.MaxNameVariations),
	)
}

// businessFlags holds the shared business-identity flags.
type businessFlags struct {
	name      string
	category  string
	city      string
	country   string
	website   string
	phone     string
	instagram string
	placeID   string
}

func (bf *businessFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&bf.name, "name", "", "business name (required)")
	cmd.Flags().StringVar(&bf.category, "category", "", "business category, e.g. \"Boutique Hotel\"")
	cmd.Flags().StringVar(&bf.city, "city", "Cartagena", "business city")
	cmd.Flags().StringVar(&bf.country, "country", "Colombia", "business country")
	cmd.Flags().StringVar(&bf.website, "website", "", "website URL")
	cmd.Flags().StringVar(&bf.phone, "phone", "", "contact phone")
	cmd.Flags().StringVar(&bf.instagram, "instagram", "", "known Instagram handle")
	cmd.Flags().StringVar(&bf.placeID, "place-id", "", "Google place ID")
	_ = cmd.MarkFlagRequired("name")
}

func (bf *businessFlags) business() model.Business {
	return model.Business{
		Name:            bf.name,
		Category:        bf.category,
		City:            bf.city,
		Country:         bf.country,
		Website:         bf.website,
		Phone:           bf.phone,
		InstagramHandle: bf.instagram,
		GooglePlaceID:   bf.placeID,
	}
}
