package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/padelcoach/coach-api/app/modules/auth"
	"github.com/padelcoach/coach-api/app/modules/evaluation"
	"github.com/padelcoach/coach-api/app/modules/exercise"
	"github.com/padelcoach/coach-api/app/modules/plan"
	"github.com/padelcoach/coach-api/app/modules/student"
	"github.com/padelcoach/coach-api/app/shared/eventbus"
	"github.com/padelcoach/coach-api/app/shared/metrics"
	"github.com/padelcoach/coach-api/config"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// App holds the wired application: database, event bus, modules and the
// HTTP router that exposes them.
type App struct {
	Config  *config.Config
	Logger  *slog.Logger
	DB      *bun.DB
	Metrics *metrics.Registry
	Tracer  trace.Tracer
	Bus     eventbus.EventBus
	Router  chi.Router

	AuthModule       *auth.Module
	StudentModule    *student.Module
	ExerciseModule   *exercise.Module
	PlanModule       *plan.Module
	EvaluationModule *evaluation.Module
}

// NewApp connects to Postgres, optionally runs migrations and wires every module.
func NewApp(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(cfg.Postgres.DSN)))
	db := bun.NewDB(sqldb, pgdialect.New())
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if cfg.Postgres.AutoMigrate {
		if err := MigrateAll(ctx, db, logger); err != nil {
			db.Close()
			return nil, err
		}
	}

	app, err := newApp(ctx, cfg, logger, db)
	if err != nil {
		db.Close()
		return nil, err
	}
	return app, nil
}

func newApp(ctx context.Context, cfg *config.Config, logger *slog.Logger, db *bun.DB) (*App, error) {
	app := &App{
		Config:  cfg,
		Logger:  logger,
		DB:      db,
		Metrics: metrics.NewRegistry(),
		Tracer:  otel.Tracer("github.com/padelcoach/coach-api"),
	}

	bus, err := eventbus.New(logger)
	if err != nil {
		return nil, err
	}
	app.Bus = bus
	app.Router = app.newRouter()

	if err := app.initializeModules(ctx); err != nil {
		bus.Close()
		return nil, err
	}
	return app, nil
}

func (app *App) initializeModules(ctx context.Context) error {
	var err error

	app.AuthModule, err = auth.NewModule(ctx, app.Config, app.Logger, app.Metrics, app.Tracer, app.Router, app.DB)
	if err != nil {
		return fmt.Errorf("failed to initialize auth module: %w", err)
	}
	requireTrainer := app.AuthModule.RequireTrainer

	app.StudentModule, err = student.NewStudentModule(ctx, app.Logger, app.Metrics, app.Tracer, app.Router, requireTrainer, app.DB)
	if err != nil {
		return fmt.Errorf("failed to initialize student module: %w", err)
	}

	app.ExerciseModule, err = exercise.NewExerciseModule(ctx, app.Logger, app.Metrics, app.Tracer, app.Router, requireTrainer, app.DB)
	if err != nil {
		return fmt.Errorf("failed to initialize exercise module: %w", err)
	}

	app.PlanModule, err = plan.NewPlanModule(ctx, app.Logger, app.Metrics, app.Tracer, app.Router, requireTrainer, app.ExerciseModule.Repository, app.DB)
	if err != nil {
		return fmt.Errorf("failed to initialize plan module: %w", err)
	}

	app.EvaluationModule, err = evaluation.NewEvaluationModule(ctx, app.Logger, app.Metrics, app.Tracer, app.Router, requireTrainer, app.Bus, app.StudentModule.Repository, app.DB)
	if err != nil {
		return fmt.Errorf("failed to initialize evaluation module: %w", err)
	}

	app.Logger.InfoContext(ctx, "All modules initialized")
	return nil
}

// Handler returns the root HTTP handler.
func (app *App) Handler() http.Handler {
	return app.Router
}

// Close releases the event bus and the database pool.
func (app *App) Close() error {
	var firstErr error
	if app.Bus != nil {
		if err := app.Bus.Close(); err != nil {
			firstErr = err
		}
	}
	if app.DB != nil {
		if err := app.DB.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
