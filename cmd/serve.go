package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/caribeleads/intel-cli/internal/discovery"
	"github.com/caribeleads/intel-cli/internal/intel"
	"github.com/caribeleads/intel-cli/internal/model"
	sigengine "github.com/caribeleads/intel-cli/internal/signal"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the intelligence webhook server",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		gatherer := buildGatherer(cfg)
		engine := buildDiscoveryEngine(cfg)

		port := servePort
		if port == 0 {
			port = cfg.Server.Port
		}

		srv := &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: newRouter(gatherer, engine),
		}

		go func() {
			<-ctx.Done()
			zap.L().Info("shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()

		zap.L().Info("starting server", zap.Int("port", port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return eris.Wrap(err, "server listen")
		}

		return nil
	},
}

// businessRequest is the JSON body shared by the gather, discover and
// signals endpoints.
type businessRequest struct {
	Name              string  `json:"name"`
	Category          string  `json:"category"`
	City              string  `json:"city"`
	Country           string  `json:"country"`
	Website           string  `json:"website"`
	WebsiteHTML       string  `json:"website_html"`
	Phone             string  `json:"phone"`
	InstagramHandle   string  `json:"instagram_handle"`
	GooglePlaceID     string  `json:"google_place_id"`
	Rating            float64 `json:"rating"`
	ReviewCount       int     `json:"review_count"`
	UnansweredReviews int     `json:"unanswered_reviews"`
	PriceTier         string  `json:"price_tier"`
	HasAutoReply      bool    `json:"has_auto_reply"`
}

func (r businessRequest) business() model.Business {
	return model.Business{
		Name:              r.Name,
		Category:          r.Category,
		City:              r.City,
		Country:           r.Country,
		Website:           r.Website,
		WebsiteHTML:       r.WebsiteHTML,
		Phone:             r.Phone,
		InstagramHandle:   r.InstagramHandle,
		GooglePlaceID:     r.GooglePlaceID,
		Rating:            r.Rating,
		ReviewCount:       r.ReviewCount,
		UnansweredReviews: r.UnansweredReviews,
		PriceTier:         model.PriceTier(r.PriceTier),
		HasAutoReply:      r.HasAutoReply,
	}
}

// newRouter builds the HTTP API over the gatherer and discovery engine.
func newRouter(gatherer *intel.Gatherer, engine *discovery.Engine) http.Handler {
	r := chi.NewRouter()

	r.Use(requestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Post("/api/gather", func(w http.ResponseWriter, req *http.Request) {
		biz, ok := decodeBusiness(w, req)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, gatherer.Gather(req.Context(), biz))
	})

	r.Post("/api/discover", func(w http.ResponseWriter, req *http.Request) {
		biz, ok := decodeBusiness(w, req)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, engine.Discover(req.Context(), biz))
	})

	r.Post("/api/signals", func(w http.ResponseWriter, req *http.Request) {
		biz, ok := decodeBusiness(w, req)
		if !ok {
			return
		}
		analysis := sigengine.Analyze(biz)
		writeJSON(w, http.StatusOK, map[string]any{
			"analysis": analysis,
			"scripts":  sigengine.BuildScripts(biz, analysis),
		})
	})

	return r
}

// requestID tags each request with a UUID for log correlation.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		id := uuid.NewString()
		w.Header().Set("X-Request-Id", id)
		zap.L().Debug("request",
			zap.String("request_id", id),
			zap.String("method", req.Method),
			zap.String("path", req.URL.Path),
		)
		next.ServeHTTP(w, req)
	})
}

func decodeBusiness(w http.ResponseWriter, req *http.Request) (model.Business, bool) {
	var body businessRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return model.Business{}, false
	}
	if body.Name == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "name is required"})
		return model.Business{}, false
	}
	return body.business(), true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "server port (default from config)")
	rootCmd.AddCommand(serveCmd)
}
