package plandb

import (
	"context"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Repository defines the contract for practice plan persistence, scoped per trainer.
type Repository interface {
	// List returns the trainer's plans, newest date first, with ExerciseCount set.
	List(ctx context.Context, db bun.IDB, trainerID uuid.UUID) ([]PracticePlan, error)
	// Get loads a plan with its items ordered and each item's exercise attached.
	Get(ctx context.Context, db bun.IDB, trainerID, id uuid.UUID) (*PracticePlan, error)
	// Create inserts the plan and its items. Callers run it inside a transaction.
	Create(ctx context.Context, db bun.IDB, plan *PracticePlan) error
	Update(ctx context.Context, db bun.IDB, plan *PracticePlan) error
	Delete(ctx context.Context, db bun.IDB, trainerID, id uuid.UUID) error
}
