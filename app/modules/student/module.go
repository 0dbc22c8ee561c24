package student

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	studentservice "github.com/padelcoach/coach-api/app/modules/student/application"
	studenthandlers "github.com/padelcoach/coach-api/app/modules/student/infrastructure/handlers"
	studentdb "github.com/padelcoach/coach-api/app/modules/student/infrastructure/repositories"
	"github.com/padelcoach/coach-api/app/shared/metrics"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace"
)

// Module represents the student module.
type Module struct {
	StudentService studentservice.Service
	Repository     studentdb.Repository
}

// NewStudentModule wires the student module and mounts /api/students behind requireTrainer.
func NewStudentModule(
	ctx context.Context,
	logger *slog.Logger,
	m metrics.ServiceMetrics,
	tracer trace.Tracer,
	httpRouter chi.Router,
	requireTrainer func(http.Handler) http.Handler,
	db *bun.DB,
) (*Module, error) {
	logger.InfoContext(ctx, "student.NewStudentModule initializing")

	repo := studentdb.NewRepository(db)
	service := studentservice.NewStudentService(repo, logger, m, tracer, db)
	handlers := studenthandlers.NewStudentHandlers(service, logger)

	if httpRouter != nil {
		httpRouter.Route("/api/students", func(r chi.Router) {
			r.Use(requireTrainer)
			r.Get("/", handlers.HandleList)
			r.Post("/", handlers.HandleCreate)
			r.Get("/{id}", handlers.HandleGet)
			r.Put("/{id}", handlers.HandleUpdate)
			r.Delete("/{id}", handlers.HandleDelete)
		})
	}

	return &Module{StudentService: service, Repository: repo}, nil
}
