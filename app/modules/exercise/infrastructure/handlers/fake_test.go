package exercisehandlers

import (
	"context"

	"github.com/google/uuid"
	exerciseservice "github.com/padelcoach/coach-api/app/modules/exercise/application"
	exercisedb "github.com/padelcoach/coach-api/app/modules/exercise/infrastructure/repositories"
)

type FakeService struct {
	ListExercisesFunc  func(ctx context.Context, trainerID uuid.UUID) ([]exercisedb.Exercise, error)
	GetExerciseFunc    func(ctx context.Context, trainerID, id uuid.UUID) (*exercisedb.Exercise, error)
	CreateExerciseFunc func(ctx context.Context, trainerID uuid.UUID, in exerciseservice.ExerciseInput) (*exercisedb.Exercise, error)
	UpdateExerciseFunc func(ctx context.Context, trainerID, id uuid.UUID, in exerciseservice.ExerciseInput) (*exercisedb.Exercise, error)
	DeleteExerciseFunc func(ctx context.Context, trainerID, id uuid.UUID) error
}

func (f *FakeService) ListExercises(ctx context.Context, trainerID uuid.UUID) ([]exercisedb.Exercise, error) {
	if f.ListExercisesFunc != nil {
		return f.ListExercisesFunc(ctx, trainerID)
	}
	return []exercisedb.Exercise{}, nil
}

func (f *FakeService) GetExercise(ctx context.Context, trainerID, id uuid.UUID) (*exercisedb.Exercise, error) {
	if f.GetExerciseFunc != nil {
		return f.GetExerciseFunc(ctx, trainerID, id)
	}
	return nil, exerciseservice.ErrExerciseNotFound
}

func (f *FakeService) CreateExercise(ctx context.Context, trainerID uuid.UUID, in exerciseservice.ExerciseInput) (*exercisedb.Exercise, error) {
	if f.CreateExerciseFunc != nil {
		return f.CreateExerciseFunc(ctx, trainerID, in)
	}
	return &exercisedb.Exercise{ID: uuid.New(), TrainerID: trainerID, Name: in.Name}, nil
}

func (f *FakeService) UpdateExercise(ctx context.Context, trainerID, id uuid.UUID, in exerciseservice.ExerciseInput) (*exercisedb.Exercise, error) {
	if f.UpdateExerciseFunc != nil {
		return f.UpdateExerciseFunc(ctx, trainerID, id, in)
	}
	return &exercisedb.Exercise{ID: id, TrainerID: trainerID, Name: in.Name}, nil
}

func (f *FakeService) DeleteExercise(ctx context.Context, trainerID, id uuid.UUID) error {
	if f.DeleteExerciseFunc != nil {
		return f.DeleteExerciseFunc(ctx, trainerID, id)
	}
	return nil
}
