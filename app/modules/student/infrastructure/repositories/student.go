package studentdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// ErrNotFound is returned when a student does not exist or belongs to another trainer.
var ErrNotFound = errors.New("student not found")

// Impl implements the Repository interface using Bun ORM.
type Impl struct {
	db bun.IDB
}

// NewRepository creates a new student repository.
func NewRepository(db bun.IDB) Repository {
	return &Impl{db: db}
}

func (r *Impl) resolveDB(db bun.IDB) bun.IDB {
	if db == nil {
		return r.db
	}
	return db
}

// List returns all of a trainer's students ordered by name.
func (r *Impl) List(ctx context.Context, db bun.IDB, trainerID uuid.UUID) ([]Student, error) {
	db = r.resolveDB(db)
	var students []Student
	err := db.NewSelect().
		Model(&students).
		Where("trainer_id = ?", trainerID).
		OrderExpr("name ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list students: %w", err)
	}
	return students, nil
}

func (r *Impl) Get(ctx context.Context, db bun.IDB, trainerID, id uuid.UUID) (*Student, error) {
	db = r.resolveDB(db)
	student := new(Student)
	err := db.NewSelect().
		Model(student).
		Where("id = ?", id).
		Where("trainer_id = ?", trainerID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get student: %w", err)
	}
	return student, nil
}

func (r *Impl) GetMany(ctx context.Context, db bun.IDB, trainerID uuid.UUID, ids []uuid.UUID) ([]Student, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	db = r.resolveDB(db)
	var students []Student
	err := db.NewSelect().
		Model(&students).
		Where("trainer_id = ?", trainerID).
		Where("id IN (?)", bun.In(ids)).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get students: %w", err)
	}
	return students, nil
}

func (r *Impl) Create(ctx context.Context, db bun.IDB, student *Student) error {
	db = r.resolveDB(db)
	if student.ID == uuid.Nil {
		student.ID = uuid.New()
	}
	now := time.Now().UTC()
	student.CreatedAt, student.UpdatedAt = now, now
	if _, err := db.NewInsert().Model(student).Exec(ctx); err != nil {
		return fmt.Errorf("failed to create student: %w", err)
	}
	return nil
}

// Update writes the editable columns of a student owned by student.TrainerID.
func (r *Impl) Update(ctx context.Context, db bun.IDB, student *Student) error {
	db = r.resolveDB(db)
	student.UpdatedAt = time.Now().UTC()
	result, err := db.NewUpdate().
		Model(student).
		Column("name", "contact_info", "skill_level", "notes", "updated_at").
		Where("id = ?", student.ID).
		Where("trainer_id = ?", student.TrainerID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update student: %w", err)
	}
	return checkAffected(result)
}

func (r *Impl) Delete(ctx context.Context, db bun.IDB, trainerID, id uuid.UUID) error {
	db = r.resolveDB(db)
	result, err := db.NewDelete().
		Model((*Student)(nil)).
		Where("id = ?", id).
		Where("trainer_id = ?", trainerID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete student: %w", err)
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
