package studenthandlers

import (
	"context"

	"github.com/google/uuid"
	studentservice "github.com/padelcoach/coach-api/app/modules/student/application"
	studentdb "github.com/padelcoach/coach-api/app/modules/student/infrastructure/repositories"
)

type FakeService struct {
	ListStudentsFunc  func(ctx context.Context, trainerID uuid.UUID) ([]studentdb.Student, error)
	GetStudentFunc    func(ctx context.Context, trainerID, id uuid.UUID) (*studentdb.Student, error)
	CreateStudentFunc func(ctx context.Context, trainerID uuid.UUID, in studentservice.StudentInput) (*studentdb.Student, error)
	UpdateStudentFunc func(ctx context.Context, trainerID, id uuid.UUID, in studentservice.StudentInput) (*studentdb.Student, error)
	DeleteStudentFunc func(ctx context.Context, trainerID, id uuid.UUID) error
}

func (f *FakeService) ListStudents(ctx context.Context, trainerID uuid.UUID) ([]studentdb.Student, error) {
	if f.ListStudentsFunc != nil {
		return f.ListStudentsFunc(ctx, trainerID)
	}
	return []studentdb.Student{}, nil
}

func (f *FakeService) GetStudent(ctx context.Context, trainerID, id uuid.UUID) (*studentdb.Student, error) {
	if f.GetStudentFunc != nil {
		return f.GetStudentFunc(ctx, trainerID, id)
	}
	return nil, studentservice.ErrStudentNotFound
}

func (f *FakeService) CreateStudent(ctx context.Context, trainerID uuid.UUID, in studentservice.StudentInput) (*studentdb.Student, error) {
	if f.CreateStudentFunc != nil {
		return f.CreateStudentFunc(ctx, trainerID, in)
	}
	return &studentdb.Student{ID: uuid.New(), TrainerID: trainerID, Name: in.Name}, nil
}

func (f *FakeService) UpdateStudent(ctx context.Context, trainerID, id uuid.UUID, in studentservice.StudentInput) (*studentdb.Student, error) {
	if f.UpdateStudentFunc != nil {
		return f.UpdateStudentFunc(ctx, trainerID, id, in)
	}
	return &studentdb.Student{ID: id, TrainerID: trainerID, Name: in.Name}, nil
}

func (f *FakeService) DeleteStudent(ctx context.Context, trainerID, id uuid.UUID) error {
	if f.DeleteStudentFunc != nil {
		return f.DeleteStudentFunc(ctx, trainerID, id)
	}
	return nil
}
