package exerciseservice

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	exercisedomain "github.com/padelcoach/coach-api/app/modules/exercise/domain"
	exercisedb "github.com/padelcoach/coach-api/app/modules/exercise/infrastructure/repositories"
	"github.com/padelcoach/coach-api/app/shared/httpx"
	"github.com/padelcoach/coach-api/app/shared/metrics"
	"github.com/padelcoach/coach-api/app/shared/operation"
	"github.com/padelcoach/coach-api/app/shared/results"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace"
)

// ExerciseService implements the Service interface.
type ExerciseService struct {
	repo   exercisedb.Repository
	runner *operation.Runner
}

// NewExerciseService creates a new ExerciseService.
func NewExerciseService(
	repo exercisedb.Repository,
	logger *slog.Logger,
	m metrics.ServiceMetrics,
	tracer trace.Tracer,
	db *bun.DB,
) *ExerciseService {
	return &ExerciseService{
		repo:   repo,
		runner: operation.NewRunner("ExerciseService", logger, m, tracer, db),
	}
}

type exerciseResult = results.OperationResult[*exercisedb.Exercise, error]

func (s *ExerciseService) ListExercises(ctx context.Context, trainerID uuid.UUID) ([]exercisedb.Exercise, error) {
	return operation.Execute(s.runner, ctx, "ListExercises", trainerID.String(), func(ctx context.Context, db bun.IDB) (results.OperationResult[[]exercisedb.Exercise, error], error) {
		exercises, err := s.repo.List(ctx, db, trainerID)
		if err != nil {
			return results.OperationResult[[]exercisedb.Exercise, error]{}, err
		}
		if exercises == nil {
			exercises = []exercisedb.Exercise{}
		}
		return results.SuccessResult[[]exercisedb.Exercise, error](exercises), nil
	})
}

func (s *ExerciseService) GetExercise(ctx context.Context, trainerID, id uuid.UUID) (*exercisedb.Exercise, error) {
	return operation.Execute(s.runner, ctx, "GetExercise", id.String(), func(ctx context.Context, db bun.IDB) (exerciseResult, error) {
		return s.getLogic(ctx, db, trainerID, id)
	})
}

func (s *ExerciseService) getLogic(ctx context.Context, db bun.IDB, trainerID, id uuid.UUID) (exerciseResult, error) {
	exercise, err := s.repo.Get(ctx, db, trainerID, id)
	if err != nil {
		if errors.Is(err, exercisedb.ErrNotFound) {
			return results.FailureResult[*exercisedb.Exercise, error](ErrExerciseNotFound), nil
		}
		return exerciseResult{}, err
	}
	return results.SuccessResult[*exercisedb.Exercise, error](exercise), nil
}

func (s *ExerciseService) CreateExercise(ctx context.Context, trainerID uuid.UUID, in ExerciseInput) (*exercisedb.Exercise, error) {
	return operation.Execute(s.runner, ctx, "CreateExercise", trainerID.String(), func(ctx context.Context, db bun.IDB) (exerciseResult, error) {
		exercise := &exercisedb.Exercise{TrainerID: trainerID}
		if err := apply(exercise, in); err != nil {
			return results.FailureResult[*exercisedb.Exercise, error](err), nil
		}
		if err := s.repo.Create(ctx, db, exercise); err != nil {
			return exerciseResult{}, err
		}
		return results.SuccessResult[*exercisedb.Exercise, error](exercise), nil
	})
}

func (s *ExerciseService) UpdateExercise(ctx context.Context, trainerID, id uuid.UUID, in ExerciseInput) (*exercisedb.Exercise, error) {
	return operation.Execute(s.runner, ctx, "UpdateExercise", id.String(), func(ctx context.Context, db bun.IDB) (exerciseResult, error) {
		res, err := s.getLogic(ctx, db, trainerID, id)
		if err != nil || res.IsFailure() {
			return res, err
		}
		exercise := *res.Success
		if err := apply(exercise, in); err != nil {
			return results.FailureResult[*exercisedb.Exercise, error](err), nil
		}
		if err := s.repo.Update(ctx, db, exercise); err != nil {
			if errors.Is(err, exercisedb.ErrNotFound) {
				return results.FailureResult[*exercisedb.Exercise, error](ErrExerciseNotFound), nil
			}
			return exerciseResult{}, err
		}
		return results.SuccessResult[*exercisedb.Exercise, error](exercise), nil
	})
}

func (s *ExerciseService) DeleteExercise(ctx context.Context, trainerID, id uuid.UUID) error {
	_, err := operation.Execute(s.runner, ctx, "DeleteExercise", id.String(), func(ctx context.Context, db bun.IDB) (results.OperationResult[struct{}, error], error) {
		if err := s.repo.Delete(ctx, db, trainerID, id); err != nil {
			switch {
			case errors.Is(err, exercisedb.ErrNotFound):
				return results.FailureResult[struct{}, error](ErrExerciseNotFound), nil
			case errors.Is(err, exercisedb.ErrInUse):
				return results.FailureResult[struct{}, error](ErrExerciseInUse), nil
			}
			return results.OperationResult[struct{}, error]{}, err
		}
		return results.SuccessResult[struct{}, error](struct{}{}), nil
	})
	return err
}

func apply(exercise *exercisedb.Exercise, in ExerciseInput) error {
	t, err := exercisedomain.ParseType(in.Type)
	if err != nil {
		return httpx.NewValidationError("type must be one of %v", exercisedomain.Types)
	}
	exercise.Name = strings.TrimSpace(in.Name)
	exercise.Description = in.Description
	exercise.Type = t
	exercise.DurationMinutes = in.DurationMinutes
	exercise.Material = in.Material
	exercise.TacticalBoardData = in.TacticalBoardData
	return nil
}
