package api

import (
	"context"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"

	"github.com/video-stream/transcript/internal/api/handlers"
	"github.com/video-stream/transcript/internal/api/middleware"
	"github.com/video-stream/transcript/internal/auth"
	"github.com/video-stream/transcript/internal/config"
	"github.com/video-stream/transcript/internal/validation"
)

// NewRouter wires the HTTP API. ctx bounds background work started by
// middleware such as the rate limiter's sweeper.
func NewRouter(ctx context.Context, cfg *config.Config, log zerolog.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimw.Recoverer)
	r.Use(chimw.RealIP)
	r.Use(hlog.NewHandler(log))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(cors.Handler(middleware.CORSHandler(cfg.CORSOrigins)))

	var limiter *middleware.RateLimiter
	if cfg.RateLimit > 0 {
		limiter = middleware.NewRateLimiter(ctx, cfg.RateLimit, cfg.RateWindow)
	}

	var jwtService *auth.JWTService
	if cfg.AuthEnabled() {
		jwtService = auth.NewJWTService(cfg.JWTSecret)
	}

	convertHandler := handlers.NewConvertHandler(validation.New())

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handlers.Health)

		r.Group(func(r chi.Router) {
			if limiter != nil {
				r.Use(limiter.Handler)
			}
			if jwtService != nil {
				r.Use(middleware.AuthMiddleware(jwtService))
			}
			r.Use(middleware.MaxBodySize(cfg.MaxBodyBytes))

			r.Post("/convert", convertHandler.Convert)
		})

		// Admin routes need an identity, so they only exist with auth on
		if jwtService != nil && limiter != nil {
			rateLimitHandler := handlers.NewRateLimitHandler(limiter)
			r.Group(func(r chi.Router) {
				r.Use(middleware.AuthMiddleware(jwtService))
				r.Use(middleware.RequireRole(auth.RoleAdmin))

				r.Get("/admin/ratelimit", rateLimitHandler.Status)
				r.Delete("/admin/ratelimit", rateLimitHandler.Clear)
			})
		}
	})

	return r
}
