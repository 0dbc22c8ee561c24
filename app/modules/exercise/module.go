package exercise

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	exerciseservice "github.com/padelcoach/coach-api/app/modules/exercise/application"
	exercisehandlers "github.com/padelcoach/coach-api/app/modules/exercise/infrastructure/handlers"
	exercisedb "github.com/padelcoach/coach-api/app/modules/exercise/infrastructure/repositories"
	"github.com/padelcoach/coach-api/app/shared/metrics"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace"
)

// Module represents the exercise library module.
type Module struct {
	ExerciseService exerciseservice.Service
	Repository      exercisedb.Repository
}

// NewExerciseModule wires the exercise module and mounts /api/exercises.
func NewExerciseModule(
	ctx context.Context,
	logger *slog.Logger,
	m metrics.ServiceMetrics,
	tracer trace.Tracer,
	httpRouter chi.Router,
	requireTrainer func(http.Handler) http.Handler,
	db *bun.DB,
) (*Module, error) {
	logger.InfoContext(ctx, "exercise.NewExerciseModule initializing")

	repo := exercisedb.NewRepository(db)
	service := exerciseservice.NewExerciseService(repo, logger, m, tracer, db)
	handlers := exercisehandlers.NewExerciseHandlers(service, logger)

	if httpRouter != nil {
		httpRouter.Route("/api/exercises", func(r chi.Router) {
			r.Use(requireTrainer)
			r.Get("/", handlers.HandleList)
			r.Post("/", handlers.HandleCreate)
			r.Get("/{id}", handlers.HandleGet)
			r.Put("/{id}", handlers.HandleUpdate)
			r.Delete("/{id}", handlers.HandleDelete)
		})
	}

	return &Module{ExerciseService: service, Repository: repo}, nil
}
