package exercisedb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/padelcoach/coach-api/app/shared/pgerr"
	"github.com/uptrace/bun"
)

var (
	// ErrNotFound is returned when an exercise does not exist or belongs to another trainer.
	ErrNotFound = errors.New("exercise not found")
	// ErrInUse is returned when deleting an exercise referenced by a practice plan.
	ErrInUse = errors.New("exercise is used by a practice plan")
)

// Impl implements the Repository interface using Bun ORM.
type Impl struct {
	db bun.IDB
}

// NewRepository creates a new exercise repository.
func NewRepository(db bun.IDB) Repository {
	return &Impl{db: db}
}

func (r *Impl) resolveDB(db bun.IDB) bun.IDB {
	if db == nil {
		return r.db
	}
	return db
}

func (r *Impl) List(ctx context.Context, db bun.IDB, trainerID uuid.UUID) ([]Exercise, error) {
	db = r.resolveDB(db)
	var exercises []Exercise
	err := db.NewSelect().
		Model(&exercises).
		Where("trainer_id = ?", trainerID).
		OrderExpr("name ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list exercises: %w", err)
	}
	return exercises, nil
}

func (r *Impl) Get(ctx context.Context, db bun.IDB, trainerID, id uuid.UUID) (*Exercise, error) {
	db = r.resolveDB(db)
	exercise := new(Exercise)
	err := db.NewSelect().
		Model(exercise).
		Where("id = ?", id).
		Where("trainer_id = ?", trainerID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get exercise: %w", err)
	}
	return exercise, nil
}

func (r *Impl) GetMany(ctx context.Context, db bun.IDB, trainerID uuid.UUID, ids []uuid.UUID) ([]Exercise, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	db = r.resolveDB(db)
	var exercises []Exercise
	err := db.NewSelect().
		Model(&exercises).
		Where("trainer_id = ?", trainerID).
		Where("id IN (?)", bun.In(ids)).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get exercises: %w", err)
	}
	return exercises, nil
}

func (r *Impl) Create(ctx context.Context, db bun.IDB, exercise *Exercise) error {
	db = r.resolveDB(db)
	if exercise.ID == uuid.Nil {
		exercise.ID = uuid.New()
	}
	now := time.Now().UTC()
	exercise.CreatedAt, exercise.UpdatedAt = now, now
	if _, err := db.NewInsert().Model(exercise).Exec(ctx); err != nil {
		return fmt.Errorf("failed to create exercise: %w", err)
	}
	return nil
}

func (r *Impl) Update(ctx context.Context, db bun.IDB, exercise *Exercise) error {
	db = r.resolveDB(db)
	exercise.UpdatedAt = time.Now().UTC()
	result, err := db.NewUpdate().
		Model(exercise).
		Column("name", "description", "type", "duration_minutes", "material", "tactical_board_data", "updated_at").
		Where("id = ?", exercise.ID).
		Where("trainer_id = ?", exercise.TrainerID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update exercise: %w", err)
	}
	return checkAffected(result)
}

func (r *Impl) Delete(ctx context.Context, db bun.IDB, trainerID, id uuid.UUID) error {
	db = r.resolveDB(db)
	result, err := db.NewDelete().
		Model((*Exercise)(nil)).
		Where("id = ?", id).
		Where("trainer_id = ?", trainerID).
		Exec(ctx)
	if err != nil {
		if pgerr.IsForeignKeyViolation(err) {
			return ErrInUse
		}
		return fmt.Errorf("failed to delete exercise: %w", err)
	}
	return checkAffected(result)
}

func checkAffected(result sql.Result) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}
