package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
)

// NewRouter wires the handlers. Cross-origin requests are only accepted from
// allowedOrigins; with none given no CORS headers are sent.
func NewRouter(handlers *Handlers, allowedOrigins ...string) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	if len(allowedOrigins) > 0 {
		r.Use(cors.New(cors.Options{
			AllowedOrigins: allowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodOptions},
			AllowedHeaders: []string{"*"},
		}).Handler)
	}

	r.Get("/", handlers.HandleRoot)

	// Only achievement_hunter_* metrics, no Go runtime metrics
	r.Get("/metrics", handlers.HandleMetrics)

	r.Get("/games", handlers.HandleGames)
	r.Get("/games/{app_id}/achievements", handlers.HandleAchievements)

	return r
}
