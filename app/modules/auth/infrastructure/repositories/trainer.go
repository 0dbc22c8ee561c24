package authdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/padelcoach/coach-api/app/shared/pgerr"
	"github.com/uptrace/bun"
)

var (
	// ErrNotFound is returned when a trainer is not found.
	ErrNotFound = errors.New("trainer not found")
	// ErrEmailTaken is returned when registering an email that already exists.
	ErrEmailTaken = errors.New("email already registered")
)

// Impl implements the Repository interface using Bun ORM.
type Impl struct {
	db bun.IDB
}

// NewRepository creates a new trainer repository.
func NewRepository(db bun.IDB) Repository {
	return &Impl{db: db}
}

// resolveDB returns the provided db handle, falling back to the repository's
// default connection if db is nil.
func (r *Impl) resolveDB(db bun.IDB) bun.IDB {
	if db == nil {
		return r.db
	}
	return db
}

// Create inserts a new trainer.
func (r *Impl) Create(ctx context.Context, db bun.IDB, trainer *Trainer) error {
	db = r.resolveDB(db)
	if trainer.ID == uuid.Nil {
		trainer.ID = uuid.New()
	}
	trainer.Email = normalizeEmail(trainer.Email)
	now := time.Now().UTC()
	trainer.CreatedAt, trainer.UpdatedAt = now, now

	if _, err := db.NewInsert().Model(trainer).Exec(ctx); err != nil {
		if pgerr.IsUniqueViolation(err) {
			return ErrEmailTaken
		}
		return fmt.Errorf("failed to create trainer: %w", err)
	}
	return nil
}

// GetByEmail retrieves a trainer by email.
func (r *Impl) GetByEmail(ctx context.Context, db bun.IDB, email string) (*Trainer, error) {
	db = r.resolveDB(db)
	trainer := new(Trainer)
	err := db.NewSelect().
		Model(trainer).
		Where("email = ?", normalizeEmail(email)).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get trainer by email: %w", err)
	}
	return trainer, nil
}

// GetByID retrieves a trainer by id.
func (r *Impl) GetByID(ctx context.Context, db bun.IDB, id uuid.UUID) (*Trainer, error) {
	db = r.resolveDB(db)
	trainer := new(Trainer)
	err := db.NewSelect().
		Model(trainer).
		Where("id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get trainer by id: %w", err)
	}
	return trainer, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
