package authmigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating trainers table...")

		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			if _, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS trainers (
					id UUID PRIMARY KEY,
					email VARCHAR(255) NOT NULL UNIQUE,
					name VARCHAR(255) NOT NULL,
					password_hash TEXT NOT NULL,
					created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
					updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
				);
			`); err != nil {
				return fmt.Errorf("failed to create trainers table: %w", err)
			}
			return nil
		})
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping trainers table...")

		if _, err := db.ExecContext(ctx, `DROP TABLE IF EXISTS trainers CASCADE;`); err != nil {
			return fmt.Errorf("failed to drop trainers table: %w", err)
		}
		return nil
	})
}
