package planmigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating practice plan tables...")

		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			if _, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS practice_plans (
					id UUID PRIMARY KEY,
					trainer_id UUID NOT NULL REFERENCES trainers(id) ON DELETE CASCADE,
					title VARCHAR(255) NOT NULL,
					date TIMESTAMPTZ NOT NULL,
					notes TEXT,
					duration_minutes INTEGER,
					created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
					updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
				);
				CREATE INDEX IF NOT EXISTS idx_practice_plans_trainer_date ON practice_plans(trainer_id, date DESC);
			`); err != nil {
				return fmt.Errorf("failed to create practice_plans table: %w", err)
			}

			// Exercises in use cannot be deleted out from under a plan.
			if _, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS practice_plan_exercises (
					id UUID PRIMARY KEY,
					plan_id UUID NOT NULL REFERENCES practice_plans(id) ON DELETE CASCADE,
					exercise_id UUID NOT NULL REFERENCES exercises(id) ON DELETE RESTRICT,
					sort_order INTEGER NOT NULL,
					sets INTEGER,
					reps INTEGER,
					rest_seconds INTEGER
				);
				CREATE INDEX IF NOT EXISTS idx_practice_plan_exercises_plan ON practice_plan_exercises(plan_id, sort_order);
				CREATE INDEX IF NOT EXISTS idx_practice_plan_exercises_exercise ON practice_plan_exercises(exercise_id);
			`); err != nil {
				return fmt.Errorf("failed to create practice_plan_exercises table: %w", err)
			}
			return nil
		})
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping practice plan tables...")

		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			if _, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS practice_plan_exercises CASCADE;`); err != nil {
				return fmt.Errorf("failed to drop practice_plan_exercises table: %w", err)
			}
			if _, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS practice_plans CASCADE;`); err != nil {
				return fmt.Errorf("failed to drop practice_plans table: %w", err)
			}
			return nil
		})
	})
}
