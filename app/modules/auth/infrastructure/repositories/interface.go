package authdb

import (
	"context"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Repository defines the contract for trainer persistence.
type Repository interface {
	// Create inserts a trainer. Returns ErrEmailTaken when the email is already registered.
	Create(ctx context.Context, db bun.IDB, trainer *Trainer) error

	// GetByEmail retrieves a trainer by email (case-insensitive).
	GetByEmail(ctx context.Context, db bun.IDB, email string) (*Trainer, error)

	// GetByID retrieves a trainer by id.
	GetByID(ctx context.Context, db bun.IDB, id uuid.UUID) (*Trainer, error)
}
