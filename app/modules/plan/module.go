package plan

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	exercisedb "github.com/padelcoach/coach-api/app/modules/exercise/infrastructure/repositories"
	planservice "github.com/padelcoach/coach-api/app/modules/plan/application"
	planhandlers "github.com/padelcoach/coach-api/app/modules/plan/infrastructure/handlers"
	plandb "github.com/padelcoach/coach-api/app/modules/plan/infrastructure/repositories"
	"github.com/padelcoach/coach-api/app/shared/metrics"
	"github.com/padelcoach/coach-api/app/shared/timeutil"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace"
)

// Module represents the practice plan module.
type Module struct {
	PlanService planservice.Service
}

// NewPlanModule wires the plan module and mounts /api/plans. Exercise
// ownership is checked through the exercise module's repository.
func NewPlanModule(
	ctx context.Context,
	logger *slog.Logger,
	m metrics.ServiceMetrics,
	tracer trace.Tracer,
	httpRouter chi.Router,
	requireTrainer func(http.Handler) http.Handler,
	exercises exercisedb.Repository,
	db *bun.DB,
) (*Module, error) {
	logger.InfoContext(ctx, "plan.NewPlanModule initializing")

	repo := plandb.NewRepository(db)
	service := planservice.NewPlanService(repo, exercises, timeutil.RealClock{}, logger, m, tracer, db)
	handlers := planhandlers.NewPlanHandlers(service, logger)

	if httpRouter != nil {
		httpRouter.Route("/api/plans", func(r chi.Router) {
			r.Use(requireTrainer)
			r.Get("/", handlers.HandleList)
			r.Post("/", handlers.HandleCreate)
			r.Get("/{id}", handlers.HandleGet)
			r.Put("/{id}", handlers.HandleUpdate)
			r.Delete("/{id}", handlers.HandleDelete)
		})
	}

	return &Module{PlanService: service}, nil
}
