package studentmigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating students table...")

		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			if _, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS students (
					id UUID PRIMARY KEY,
					trainer_id UUID NOT NULL REFERENCES trainers(id) ON DELETE CASCADE,
					name VARCHAR(255) NOT NULL,
					contact_info TEXT,
					skill_level VARCHAR(100),
					notes TEXT,
					created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
					updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
				);
				CREATE INDEX IF NOT EXISTS idx_students_trainer_name ON students(trainer_id, name);
			`); err != nil {
				return fmt.Errorf("failed to create students table: %w", err)
			}
			return nil
		})
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping students table...")

		if _, err := db.ExecContext(ctx, `DROP TABLE IF EXISTS students CASCADE;`); err != nil {
			return fmt.Errorf("failed to drop students table: %w", err)
		}
		return nil
	})
}
