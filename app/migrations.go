package app

import (
	"context"
	"fmt"
	"log/slog"

	authmigrations "github.com/padelcoach/coach-api/app/modules/auth/infrastructure/repositories/migrations"
	evaluationmigrations "github.com/padelcoach/coach-api/app/modules/evaluation/infrastructure/repositories/migrations"
	exercisemigrations "github.com/padelcoach/coach-api/app/modules/exercise/infrastructure/repositories/migrations"
	planmigrations "github.com/padelcoach/coach-api/app/modules/plan/infrastructure/repositories/migrations"
	studentmigrations "github.com/padelcoach/coach-api/app/modules/student/infrastructure/repositories/migrations"
	"github.com/padelcoach/coach-api/app/shared/attr"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/migrate"
)

// ModuleMigrator is one module's migrator. Each module keeps its own
// migration and lock tables so groups never interleave across modules.
type ModuleMigrator struct {
	Module string
	*migrate.Migrator
}

// Migrators returns the module migrators in dependency order: later modules
// reference tables created by earlier ones.
func Migrators(db *bun.DB) []ModuleMigrator {
	modules := []struct {
		name       string
		migrations *migrate.Migrations
	}{
		{"auth", authmigrations.Migrations},
		{"student", studentmigrations.Migrations},
		{"exercise", exercisemigrations.Migrations},
		{"plan", planmigrations.Migrations},
		{"evaluation", evaluationmigrations.Migrations},
	}

	out := make([]ModuleMigrator, 0, len(modules))
	for _, m := range modules {
		out = append(out, ModuleMigrator{
			Module: m.name,
			Migrator: migrate.NewMigrator(db, m.migrations,
				migrate.WithTableName(m.name+"_bun_migrations"),
				migrate.WithLocksTableName(m.name+"_bun_migration_locks"),
			),
		})
	}
	return out
}

// MigrateAll creates the migration tables if needed and applies every
// pending migration, module by module.
func MigrateAll(ctx context.Context, db *bun.DB, logger *slog.Logger) error {
	for _, m := range Migrators(db) {
		if err := m.Init(ctx); err != nil {
			return fmt.Errorf("failed to init migrations for %s: %w", m.Module, err)
		}
		if err := m.Lock(ctx); err != nil {
			return fmt.Errorf("failed to lock migrations for %s: %w", m.Module, err)
		}
		group, err := m.Migrate(ctx)
		if unlockErr := m.Unlock(ctx); unlockErr != nil && err == nil {
			err = unlockErr
		}
		if err != nil {
			return fmt.Errorf("failed to migrate %s: %w", m.Module, err)
		}
		if group.IsZero() {
			logger.DebugContext(ctx, "No new migrations", attr.String("module", m.Module))
			continue
		}
		logger.InfoContext(ctx, "Migrated module", attr.String("module", m.Module), attr.String("group", group.String()))
	}
	return nil
}
