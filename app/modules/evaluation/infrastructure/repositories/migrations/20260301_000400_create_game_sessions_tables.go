package evaluationmigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating game session tables...")

		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			if _, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS game_sessions (
					id UUID PRIMARY KEY,
					trainer_id UUID NOT NULL REFERENCES trainers(id) ON DELETE CASCADE,
					date TIMESTAMPTZ NOT NULL,
					notes TEXT,
					golden_point BOOLEAN NOT NULL DEFAULT TRUE,
					created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
					updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
				);
				CREATE INDEX IF NOT EXISTS idx_game_sessions_trainer_date ON game_sessions(trainer_id, date DESC);
			`); err != nil {
				return fmt.Errorf("failed to create game_sessions table: %w", err)
			}

			if _, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS game_session_students (
					session_id UUID NOT NULL REFERENCES game_sessions(id) ON DELETE CASCADE,
					student_id UUID NOT NULL REFERENCES students(id) ON DELETE CASCADE,
					position INTEGER NOT NULL DEFAULT 0,
					team SMALLINT CHECK (team IS NULL OR team IN (1, 2)),
					PRIMARY KEY (session_id, student_id)
				);
			`); err != nil {
				return fmt.Errorf("failed to create game_session_students table: %w", err)
			}

			// seq orders the log; deleting a student keeps their stats for the session totals.
			if _, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS stats (
					id UUID PRIMARY KEY,
					seq BIGSERIAL UNIQUE,
					session_id UUID NOT NULL REFERENCES game_sessions(id) ON DELETE CASCADE,
					student_id UUID REFERENCES students(id) ON DELETE SET NULL,
					stat_type VARCHAR(20) NOT NULL,
					stroke_type VARCHAR(20) NOT NULL,
					point_outcome VARCHAR(10) NOT NULL,
					point_winner_team SMALLINT CHECK (point_winner_team IS NULL OR point_winner_team IN (1, 2)),
					golden_point BOOLEAN NOT NULL,
					timestamp TIMESTAMPTZ NOT NULL DEFAULT NOW()
				);
				CREATE INDEX IF NOT EXISTS idx_stats_session_seq ON stats(session_id, seq);
			`); err != nil {
				return fmt.Errorf("failed to create stats table: %w", err)
			}
			return nil
		})
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping game session tables...")

		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			for _, table := range []string{"stats", "game_session_students", "game_sessions"} {
				if _, err := tx.ExecContext(ctx, "DROP TABLE IF EXISTS "+table+" CASCADE;"); err != nil {
					return fmt.Errorf("failed to drop %s table: %w", table, err)
				}
			}
			return nil
		})
	})
}
