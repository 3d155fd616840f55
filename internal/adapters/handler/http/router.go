package http

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/secureballot/secureballot/internal/adapters/repository/memory"
)

type RouterConfig struct {
	JWTSecret string
	// RateLimit is the allowed number of requests per client per minute;
	// zero disables limiting.
	RateLimit int
}

func NewHandler(store *memory.Store, cfg RouterConfig, log *slog.Logger) http.Handler {
	registry := prometheus.NewRegistry()
	m := newMetrics(registry)
	secret := []byte(cfg.JWTSecret)

	authHandler := NewAuthHandler(store, secret)
	electionHandler := NewElectionHandler(store)
	voteHandler := NewVoteHandler(store, m)
	resultsHandler := NewResultsHandler(store)
	profileHandler := NewProfileHandler(store)
	adminHandler := NewAdminHandler(store)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(requestLogger(log))
	r.Use(middleware.Recoverer)
	r.Use(countRequests(m))
	if cfg.RateLimit > 0 {
		r.Use(newRateLimiter(cfg.RateLimit, time.Minute).middleware)
	}

	r.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/login", authHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(requireAuth(secret))

			r.Get("/auth/me", authHandler.Me)
			r.Post("/auth/logout", authHandler.Logout)

			r.Route("/elections", func(r chi.Router) {
				r.Get("/", electionHandler.List)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", electionHandler.Get)
					r.Get("/candidates", electionHandler.Candidates)
					r.Get("/voting-status", electionHandler.VotingStatus)
					r.Get("/statistics", electionHandler.Statistics)
					r.Get("/eligibility", electionHandler.Eligibility)
					r.Post("/vote", voteHandler.Cast)
					r.Get("/results", resultsHandler.Summary)
					r.Get("/results/live", resultsHandler.Live)
					r.Get("/results/regions", resultsHandler.Regional)
					r.Get("/results/history", resultsHandler.History)
				})
			})

			r.Get("/votes/verify/{code}", voteHandler.Verify)

			r.Route("/voter", func(r chi.Router) {
				r.Get("/profile", profileHandler.Get)
				r.Put("/profile", profileHandler.Update)
				r.Get("/polling-unit", profileHandler.PollingUnit)
			})

			r.Route("/admin", func(r chi.Router) {
				r.Post("/elections", adminHandler.CreateElection)
				r.Post("/elections/{id}/candidates", adminHandler.AddCandidates)
				r.Post("/elections/{id}/publish", adminHandler.PublishResults)
			})
		})
	})

	return r
}

func countRequests(m *metrics) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMinor)
			next.ServeHTTP(ww, r)
			m.requests.WithLabelValues(r.Method, strconv.Itoa(ww.Status())).Inc()
		}
		return http.HandlerFunc(fn)
	}
}
