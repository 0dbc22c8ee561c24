package studentdb

import (
	"context"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Repository defines the contract for student persistence. Every read and
// write is scoped to the owning trainer.
type Repository interface {
	List(ctx context.Context, db bun.IDB, trainerID uuid.UUID) ([]Student, error)
	Get(ctx context.Context, db bun.IDB, trainerID, id uuid.UUID) (*Student, error)
	// GetMany returns the trainer's students among ids, in no particular order.
	GetMany(ctx context.Context, db bun.IDB, trainerID uuid.UUID, ids []uuid.UUID) ([]Student, error)
	Create(ctx context.Context, db bun.IDB, student *Student) error
	Update(ctx context.Context, db bun.IDB, student *Student) error
	Delete(ctx context.Context, db bun.IDB, trainerID, id uuid.UUID) error
}
