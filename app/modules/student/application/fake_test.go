package studentservice

import (
	"context"

	"github.com/google/uuid"
	studentdb "github.com/padelcoach/coach-api/app/modules/student/infrastructure/repositories"
	"github.com/uptrace/bun"
)

// ------------------------
// Fake Student Repo
// ------------------------

type FakeStudentRepo struct {
	trace []string

	ListFunc    func(ctx context.Context, db bun.IDB, trainerID uuid.UUID) ([]studentdb.Student, error)
	GetFunc     func(ctx context.Context, db bun.IDB, trainerID, id uuid.UUID) (*studentdb.Student, error)
	GetManyFunc func(ctx context.Context, db bun.IDB, trainerID uuid.UUID, ids []uuid.UUID) ([]studentdb.Student, error)
	CreateFunc  func(ctx context.Context, db bun.IDB, student *studentdb.Student) error
	UpdateFunc  func(ctx context.Context, db bun.IDB, student *studentdb.Student) error
	DeleteFunc  func(ctx context.Context, db bun.IDB, trainerID, id uuid.UUID) error
}

func NewFakeStudentRepo() *FakeStudentRepo {
	return &FakeStudentRepo{trace: []string{}}
}

func (f *FakeStudentRepo) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeStudentRepo) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

func (f *FakeStudentRepo) List(ctx context.Context, db bun.IDB, trainerID uuid.UUID) ([]studentdb.Student, error) {
	f.record("List")
	if f.ListFunc != nil {
		return f.ListFunc(ctx, db, trainerID)
	}
	return nil, nil
}

func (f *FakeStudentRepo) Get(ctx context.Context, db bun.IDB, trainerID, id uuid.UUID) (*studentdb.Student, error) {
	f.record("Get")
	if f.GetFunc != nil {
		return f.GetFunc(ctx, db, trainerID, id)
	}
	return nil, studentdb.ErrNotFound
}

func (f *FakeStudentRepo) GetMany(ctx context.Context, db bun.IDB, trainerID uuid.UUID, ids []uuid.UUID) ([]studentdb.Student, error) {
	f.record("GetMany")
	if f.GetManyFunc != nil {
		return f.GetManyFunc(ctx, db, trainerID, ids)
	}
	return nil, nil
}

func (f *FakeStudentRepo) Create(ctx context.Context, db bun.IDB, student *studentdb.Student) error {
	f.record("Create")
	if f.CreateFunc != nil {
		return f.CreateFunc(ctx, db, student)
	}
	student.ID = uuid.New()
	return nil
}

func (f *FakeStudentRepo) Update(ctx context.Context, db bun.IDB, student *studentdb.Student) error {
	f.record("Update")
	if f.UpdateFunc != nil {
		return f.UpdateFunc(ctx, db, student)
	}
	return nil
}

func (f *FakeStudentRepo) Delete(ctx context.Context, db bun.IDB, trainerID, id uuid.UUID) error {
	f.record("Delete")
	if f.DeleteFunc != nil {
		return f.DeleteFunc(ctx, db, trainerID, id)
	}
	return nil
}
