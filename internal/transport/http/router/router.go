package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/rs/cors"

	"github.com/partytracker/party-service/internal/config"
	"github.com/partytracker/party-service/internal/metrics"
	"github.com/partytracker/party-service/internal/transport/http/handlers"
	authmw "github.com/partytracker/party-service/internal/transport/http/middleware"
	"github.com/partytracker/party-service/internal/transport/http/response"
)

type Handlers struct {
	Events *handlers.EventsHandler
	Clubs  *handlers.ClubsHandler
	Home   *handlers.HomeHandler
	Health *handlers.HealthHandler
}

func New(h Handlers, auth *authmw.AuthMiddleware, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(cors.New(cors.Options{
			AllowedOrigins: cfg.CORSAllowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders: []string{"Content-Type", "Authorization", authmw.HeaderXRequestID},
			ExposedHeaders: []string{authmw.HeaderXRequestID},
			MaxAge:         600,
		}).Handler)
	}
	r.Use(authmw.RequestID)
	r.Use(authmw.SecurityHeaders)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(authmw.AccessLog)
	r.Use(authmw.Metrics)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		response.Fail(w, http.StatusNotFound, "not_found", "route not found", nil, response.RequestIDFromRequest(r))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		response.Fail(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed", nil, response.RequestIDFromRequest(r))
	})

	r.Get("/healthz", h.Health.Healthz)
	r.Get("/readyz", h.Health.Readyz)
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		if cfg.RLEnabled {
			r.Use(httprate.LimitByIP(cfg.RLLimit, cfg.RLWindow))
		}

		r.Get("/home", h.Home.Home)

		r.Get("/events", h.Events.List)
		r.Get("/events/{event_id}", h.Events.Get)

		r.Get("/clubs", h.Clubs.List)
		r.Get("/clubs/{club_id}", h.Clubs.Get)

		r.Group(func(r chi.Router) {
			r.Use(auth.Require)
			r.Post("/events", h.Events.Create)
		})
	})

	return r
}
