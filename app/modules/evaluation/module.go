package evaluation

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	evaluationservice "github.com/padelcoach/coach-api/app/modules/evaluation/application"
	evaluationhandlers "github.com/padelcoach/coach-api/app/modules/evaluation/infrastructure/handlers"
	evaluationdb "github.com/padelcoach/coach-api/app/modules/evaluation/infrastructure/repositories"
	evaluationsubscribers "github.com/padelcoach/coach-api/app/modules/evaluation/infrastructure/subscribers"
	studentdb "github.com/padelcoach/coach-api/app/modules/student/infrastructure/repositories"
	"github.com/padelcoach/coach-api/app/shared/eventbus"
	"github.com/padelcoach/coach-api/app/shared/metrics"
	"github.com/padelcoach/coach-api/app/shared/timeutil"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace"
)

// Module represents the game evaluation module.
type Module struct {
	EvaluationService evaluationservice.Service
}

// NewEvaluationModule wires the evaluation module, registers its event
// subscribers on bus and mounts /api/sessions. bus must not be running yet.
func NewEvaluationModule(
	ctx context.Context,
	logger *slog.Logger,
	m metrics.EvaluationMetrics,
	tracer trace.Tracer,
	httpRouter chi.Router,
	requireTrainer func(http.Handler) http.Handler,
	bus eventbus.EventBus,
	students studentdb.Repository,
	db *bun.DB,
) (*Module, error) {
	logger.InfoContext(ctx, "evaluation.NewEvaluationModule initializing")

	repo := evaluationdb.NewRepository(db)
	service := evaluationservice.NewEvaluationService(repo, students, bus, timeutil.RealClock{}, logger, m, tracer, db)
	handlers := evaluationhandlers.NewEvaluationHandlers(service, logger)

	evaluationsubscribers.NewMetricsSubscriber(m, logger).Register(bus)

	if httpRouter != nil {
		httpRouter.Route("/api/sessions", func(r chi.Router) {
			r.Use(requireTrainer)
			r.Get("/", handlers.HandleList)
			r.Post("/", handlers.HandleCreate)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", handlers.HandleGet)
				r.Delete("/", handlers.HandleDelete)
				r.Put("/teams", handlers.HandleSetTeams)
				r.Put("/golden-point", handlers.HandleSetGoldenPoint)
				r.Get("/score", handlers.HandleScore)
				r.Post("/stats", handlers.HandleRecordStat)
				r.Delete("/stats/last", handlers.HandleUndoLastStat)
				r.Post("/points", handlers.HandleManualPoint)
				r.Get("/summary", handlers.HandleSummary)
				r.Get("/chart.png", handlers.HandleChart)
				r.Get("/export.xlsx", handlers.HandleExport)
			})
		})
	}

	return &Module{EvaluationService: service}, nil
}
