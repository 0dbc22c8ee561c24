package plandb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// ErrNotFound is returned when a plan does not exist or belongs to another trainer.
var ErrNotFound = errors.New("practice plan not found")

// Impl implements the Repository interface using Bun ORM.
type Impl struct {
	db bun.IDB
}

// NewRepository creates a new practice plan repository.
func NewRepository(db bun.IDB) Repository {
	return &Impl{db: db}
}

func (r *Impl) resolveDB(db bun.IDB) bun.IDB {
	if db == nil {
		return r.db
	}
	return db
}

func (r *Impl) List(ctx context.Context, db bun.IDB, trainerID uuid.UUID) ([]PracticePlan, error) {
	db = r.resolveDB(db)
	var plans []PracticePlan
	err := db.NewSelect().
		Model(&plans).
		ColumnExpr("pp.*").
		ColumnExpr("(SELECT COUNT(*) FROM practice_plan_exercises AS ppe WHERE ppe.plan_id = pp.id) AS exercise_count").
		Where("pp.trainer_id = ?", trainerID).
		OrderExpr("pp.date DESC, pp.created_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list practice plans: %w", err)
	}
	return plans, nil
}

func (r *Impl) Get(ctx context.Context, db bun.IDB, trainerID, id uuid.UUID) (*PracticePlan, error) {
	db = r.resolveDB(db)
	plan := new(PracticePlan)
	err := db.NewSelect().
		Model(plan).
		Relation("Items", func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.OrderExpr("ppe.sort_order ASC")
		}).
		Relation("Items.Exercise").
		Where("pp.id = ?", id).
		Where("pp.trainer_id = ?", trainerID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get practice plan: %w", err)
	}
	plan.ExerciseCount = len(plan.Items)
	return plan, nil
}

func (r *Impl) Create(ctx context.Context, db bun.IDB, plan *PracticePlan) error {
	db = r.resolveDB(db)
	if plan.ID == uuid.Nil {
		plan.ID = uuid.New()
	}
	now := time.Now().UTC()
	plan.CreatedAt, plan.UpdatedAt = now, now
	if _, err := db.NewInsert().Model(plan).Exec(ctx); err != nil {
		return fmt.Errorf("failed to create practice plan: %w", err)
	}

	if len(plan.Items) == 0 {
		return nil
	}
	for i := range plan.Items {
		if plan.Items[i].ID == uuid.Nil {
			plan.Items[i].ID = uuid.New()
		}
		plan.Items[i].PlanID = plan.ID
	}
	if _, err := db.NewInsert().Model(&plan.Items).Exec(ctx); err != nil {
		return fmt.Errorf("failed to create practice plan exercises: %w", err)
	}
	plan.ExerciseCount = len(plan.Items)
	return nil
}

func (r *Impl) Update(ctx context.Context, db bun.IDB, plan *PracticePlan) error {
	db = r.resolveDB(db)
	plan.UpdatedAt = time.Now().UTC()
	result, err := db.NewUpdate().
		Model(plan).
		Column("title", "date", "notes", "duration_minutes", "updated_at").
		Where("id = ?", plan.ID).
		Where("trainer_id = ?", plan.TrainerID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update practice plan: %w", err)
	}
	return checkAffected(result)
}

func (r *Impl) Delete(ctx context.Context, db bun.IDB, trainerID, id uuid.UUID) error {
	db = r.resolveDB(db)
	// Items go first so the delete does not depend on the cascade alone.
	if _, err := db.NewDelete().
		Model((*PlanExercise)(nil)).
		Where("plan_id IN (SELECT id FROM practice_plans WHERE id = ? AND trainer_id = ?)", id, trainerID).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete practice plan exercises: %w", err)
	}
	result, err := db.NewDelete().
		Model((*PracticePlan)(nil)).
		Where("id = ?", id).
		Where("trainer_id = ?", trainerID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete practice plan: %w", err)
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
