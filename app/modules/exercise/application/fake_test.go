package exerciseservice

import (
	"context"

	"github.com/google/uuid"
	exercisedb "github.com/padelcoach/coach-api/app/modules/exercise/infrastructure/repositories"
	"github.com/uptrace/bun"
)

// ------------------------
// Fake Exercise Repo
// ------------------------

type FakeExerciseRepo struct {
	trace []string

	ListFunc    func(ctx context.Context, db bun.IDB, trainerID uuid.UUID) ([]exercisedb.Exercise, error)
	GetFunc     func(ctx context.Context, db bun.IDB, trainerID, id uuid.UUID) (*exercisedb.Exercise, error)
	GetManyFunc func(ctx context.Context, db bun.IDB, trainerID uuid.UUID, ids []uuid.UUID) ([]exercisedb.Exercise, error)
	CreateFunc  func(ctx context.Context, db bun.IDB, exercise *exercisedb.Exercise) error
	UpdateFunc  func(ctx context.Context, db bun.IDB, exercise *exercisedb.Exercise) error
	DeleteFunc  func(ctx context.Context, db bun.IDB, trainerID, id uuid.UUID) error
}

func NewFakeExerciseRepo() *FakeExerciseRepo {
	return &FakeExerciseRepo{trace: []string{}}
}

func (f *FakeExerciseRepo) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeExerciseRepo) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

func (f *FakeExerciseRepo) List(ctx context.Context, db bun.IDB, trainerID uuid.UUID) ([]exercisedb.Exercise, error) {
	f.record("List")
	if f.ListFunc != nil {
		return f.ListFunc(ctx, db, trainerID)
	}
	return nil, nil
}

func (f *FakeExerciseRepo) Get(ctx context.Context, db bun.IDB, trainerID, id uuid.UUID) (*exercisedb.Exercise, error) {
	f.record("Get")
	if f.GetFunc != nil {
		return f.GetFunc(ctx, db, trainerID, id)
	}
	return nil, exercisedb.ErrNotFound
}

func (f *FakeExerciseRepo) GetMany(ctx context.Context, db bun.IDB, trainerID uuid.UUID, ids []uuid.UUID) ([]exercisedb.Exercise, error) {
	f.record("GetMany")
	if f.GetManyFunc != nil {
		return f.GetManyFunc(ctx, db, trainerID, ids)
	}
	return nil, nil
}

func (f *FakeExerciseRepo) Create(ctx context.Context, db bun.IDB, exercise *exercisedb.Exercise) error {
	f.record("Create")
	if f.CreateFunc != nil {
		return f.CreateFunc(ctx, db, exercise)
	}
	exercise.ID = uuid.New()
	return nil
}

func (f *FakeExerciseRepo) Update(ctx context.Context, db bun.IDB, exercise *exercisedb.Exercise) error {
	f.record("Update")
	if f.UpdateFunc != nil {
		return f.UpdateFunc(ctx, db, exercise)
	}
	return nil
}

func (f *FakeExerciseRepo) Delete(ctx context.Context, db bun.IDB, trainerID, id uuid.UUID) error {
	f.record("Delete")
	if f.DeleteFunc != nil {
		return f.DeleteFunc(ctx, db, trainerID, id)
	}
	return nil
}
