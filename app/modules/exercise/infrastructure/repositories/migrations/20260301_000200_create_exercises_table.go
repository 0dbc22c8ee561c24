package exercisemigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating exercises table...")

		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			if _, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS exercises (
					id UUID PRIMARY KEY,
					trainer_id UUID NOT NULL REFERENCES trainers(id) ON DELETE CASCADE,
					name VARCHAR(255) NOT NULL,
					description TEXT,
					type VARCHAR(20) NOT NULL CHECK (type IN ('TECNICO','TATICO','FISICO','AQUECIMENTO','VOLTA_A_CALMA')),
					duration_minutes INTEGER CHECK (duration_minutes IS NULL OR duration_minutes >= 0),
					material TEXT,
					tactical_board_data JSONB,
					created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
					updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
				);
				CREATE INDEX IF NOT EXISTS idx_exercises_trainer_name ON exercises(trainer_id, name);
			`); err != nil {
				return fmt.Errorf("failed to create exercises table: %w", err)
			}
			return nil
		})
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping exercises table...")

		if _, err := db.ExecContext(ctx, `DROP TABLE IF EXISTS exercises CASCADE;`); err != nil {
			return fmt.Errorf("failed to drop exercises table: %w", err)
		}
		return nil
	})
}
