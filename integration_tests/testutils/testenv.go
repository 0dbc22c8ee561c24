package testutils

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/padelcoach/coach-api/app"
	"github.com/padelcoach/coach-api/integration_tests/containers"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
)

// TestEnvironment is one migrated Postgres database shared by a test package.
type TestEnvironment struct {
	PgContainer *postgres.PostgresContainer
	DB          *bun.DB
	Logger      *slog.Logger
}

var (
	sharedEnv     *TestEnvironment
	sharedEnvOnce sync.Once
	sharedEnvErr  error
)

// GetTestEnv starts the container on first use and migrates every module.
// The container lives until the test binary exits.
func GetTestEnv(t *testing.T) *TestEnvironment {
	t.Helper()
	sharedEnvOnce.Do(func() {
		sharedEnv, sharedEnvErr = newTestEnvironment(context.Background())
	})
	if sharedEnvErr != nil {
		t.Fatalf("test environment initialization failed: %v", sharedEnvErr)
	}
	return sharedEnv
}

func newTestEnvironment(ctx context.Context) (*TestEnvironment, error) {
	pgContainer, connStr, err := containers.SetupPostgresContainer(ctx)
	if err != nil {
		return nil, err
	}

	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(connStr)))
	db := bun.NewDB(sqldb, pgdialect.New())
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	if err := app.MigrateAll(ctx, db, logger); err != nil {
		db.Close()
		_ = pgContainer.Terminate(ctx)
		return nil, fmt.Errorf("failed to migrate: %w", err)
	}
	return &TestEnvironment{PgContainer: pgContainer, DB: db, Logger: logger}, nil
}

// Reset empties every application table.
func (env *TestEnvironment) Reset(ctx context.Context) error {
	_, err := env.DB.ExecContext(ctx, `
		TRUNCATE TABLE stats, game_session_students, game_sessions,
			practice_plan_exercises, practice_plans, exercises, students, trainers
		RESTART IDENTITY CASCADE`)
	if err != nil {
		return fmt.Errorf("failed to truncate tables: %w", err)
	}
	return nil
}

// Teardown closes the pool and stops the container.
func (env *TestEnvironment) Teardown(ctx context.Context) {
	if env == nil {
		return
	}
	env.DB.Close()
	if env.PgContainer != nil {
		_ = env.PgContainer.Terminate(ctx)
	}
}

// Shutdown stops the shared environment if it was started. Call it from TestMain.
func Shutdown(ctx context.Context) {
	sharedEnv.Teardown(ctx)
}
