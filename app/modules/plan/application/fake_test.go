package planservice

import (
	"context"

	"github.com/google/uuid"
	exercisedb "github.com/padelcoach/coach-api/app/modules/exercise/infrastructure/repositories"
	plandb "github.com/padelcoach/coach-api/app/modules/plan/infrastructure/repositories"
	"github.com/uptrace/bun"
)

// ------------------------
// Fake Plan Repo
// ------------------------

type FakePlanRepo struct {
	trace []string

	ListFunc   func(ctx context.Context, db bun.IDB, trainerID uuid.UUID) ([]plandb.PracticePlan, error)
	GetFunc    func(ctx context.Context, db bun.IDB, trainerID, id uuid.UUID) (*plandb.PracticePlan, error)
	CreateFunc func(ctx context.Context, db bun.IDB, plan *plandb.PracticePlan) error
	UpdateFunc func(ctx context.Context, db bun.IDB, plan *plandb.PracticePlan) error
	DeleteFunc func(ctx context.Context, db bun.IDB, trainerID, id uuid.UUID) error
}

func NewFakePlanRepo() *FakePlanRepo {
	return &FakePlanRepo{trace: []string{}}
}

func (f *FakePlanRepo) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakePlanRepo) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

func (f *FakePlanRepo) List(ctx context.Context, db bun.IDB, trainerID uuid.UUID) ([]plandb.PracticePlan, error) {
	f.record("List")
	if f.ListFunc != nil {
		return f.ListFunc(ctx, db, trainerID)
	}
	return nil, nil
}

func (f *FakePlanRepo) Get(ctx context.Context, db bun.IDB, trainerID, id uuid.UUID) (*plandb.PracticePlan, error) {
	f.record("Get")
	if f.GetFunc != nil {
		return f.GetFunc(ctx, db, trainerID, id)
	}
	return nil, plandb.ErrNotFound
}

func (f *FakePlanRepo) Create(ctx context.Context, db bun.IDB, plan *plandb.PracticePlan) error {
	f.record("Create")
	if f.CreateFunc != nil {
		return f.CreateFunc(ctx, db, plan)
	}
	plan.ID = uuid.New()
	return nil
}

func (f *FakePlanRepo) Update(ctx context.Context, db bun.IDB, plan *plandb.PracticePlan) error {
	f.record("Update")
	if f.UpdateFunc != nil {
		return f.UpdateFunc(ctx, db, plan)
	}
	return nil
}

func (f *FakePlanRepo) Delete(ctx context.Context, db bun.IDB, trainerID, id uuid.UUID) error {
	f.record("Delete")
	if f.DeleteFunc != nil {
		return f.DeleteFunc(ctx, db, trainerID, id)
	}
	return nil
}

// ------------------------
// Fake Exercise Repo
// ------------------------

// FakeExerciseRepo only answers GetMany; the plan service never calls anything else.
type FakeExerciseRepo struct {
	exercisedb.Repository
	owned map[uuid.UUID]bool
}

func (f *FakeExerciseRepo) GetMany(ctx context.Context, db bun.IDB, trainerID uuid.UUID, ids []uuid.UUID) ([]exercisedb.Exercise, error) {
	var out []exercisedb.Exercise
	for _, id := range ids {
		if f.owned[id] {
			out = append(out, exercisedb.Exercise{ID: id, TrainerID: trainerID, Name: "drill " + id.String()[:4]})
		}
	}
	return out, nil
}
