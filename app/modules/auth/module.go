package auth

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	authservice "github.com/padelcoach/coach-api/app/modules/auth/application"
	authhandlers "github.com/padelcoach/coach-api/app/modules/auth/infrastructure/handlers"
	authjwt "github.com/padelcoach/coach-api/app/modules/auth/infrastructure/jwt"
	authdb "github.com/padelcoach/coach-api/app/modules/auth/infrastructure/repositories"
	"github.com/padelcoach/coach-api/app/shared/httpx"
	"github.com/padelcoach/coach-api/app/shared/metrics"
	"github.com/padelcoach/coach-api/config"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"
)

// Module represents the auth module.
type Module struct {
	service  authservice.Service
	handlers authhandlers.Handlers
	logger   *slog.Logger
}

// NewModule creates a new auth module and mounts /api/auth on httpRouter.
func NewModule(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
	m metrics.ServiceMetrics,
	tracer trace.Tracer,
	httpRouter chi.Router,
	db *bun.DB,
) (*Module, error) {
	logger.InfoContext(ctx, "Initializing auth module")

	repo := authdb.NewRepository(db)
	jwtProvider := authjwt.NewProvider(cfg.JWT.Secret)

	service := authservice.NewService(
		repo,
		jwtProvider,
		authservice.Config{TokenTTL: cfg.JWT.DefaultTTL},
		logger,
		m,
		tracer,
		db,
	)

	handlers := authhandlers.NewAuthHandlers(service, logger, tracer)

	if httpRouter != nil {
		limiter := httpx.NewIPRateLimiter(rate.Limit(cfg.RateLimit.RequestsPerSecond), cfg.RateLimit.Burst)
		httpRouter.Route("/api/auth", func(r chi.Router) {
			// Public routes
			r.Group(func(r chi.Router) {
				r.Use(httpx.RateLimitMiddleware(limiter))
				r.Post("/register", handlers.HandleRegister)
				r.Post("/login", handlers.HandleLogin)
			})

			// Protected routes
			r.Group(func(r chi.Router) {
				r.Use(handlers.RequireTrainer)
				r.Get("/me", handlers.HandleMe)
			})
		})
	}

	return &Module{
		service:  service,
		handlers: handlers,
		logger:   logger,
	}, nil
}

// RequireTrainer is the bearer gate other modules mount in front of their routes.
func (m *Module) RequireTrainer(next http.Handler) http.Handler {
	return m.handlers.RequireTrainer(next)
}

// GetService returns the auth service for use by other modules.
func (m *Module) GetService() authservice.Service {
	return m.service
}
