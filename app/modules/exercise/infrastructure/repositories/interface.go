package exercisedb

import (
	"context"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Repository defines the contract for exercise persistence, scoped per trainer.
type Repository interface {
	List(ctx context.Context, db bun.IDB, trainerID uuid.UUID) ([]Exercise, error)
	Get(ctx context.Context, db bun.IDB, trainerID, id uuid.UUID) (*Exercise, error)
	// GetMany returns the trainer's exercises among ids.
	GetMany(ctx context.Context, db bun.IDB, trainerID uuid.UUID, ids []uuid.UUID) ([]Exercise, error)
	Create(ctx context.Context, db bun.IDB, exercise *Exercise) error
	Update(ctx context.Context, db bun.IDB, exercise *Exercise) error
	// Delete returns ErrInUse when a practice plan still references the exercise.
	Delete(ctx context.Context, db bun.IDB, trainerID, id uuid.UUID) error
}
