package studentservice

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	studentdb "github.com/padelcoach/coach-api/app/modules/student/infrastructure/repositories"
	"github.com/padelcoach/coach-api/app/shared/metrics"
	"github.com/padelcoach/coach-api/app/shared/operation"
	"github.com/padelcoach/coach-api/app/shared/results"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace"
)

// StudentService implements the Service interface.
type StudentService struct {
	repo   studentdb.Repository
	runner *operation.Runner
}

// NewStudentService creates a new StudentService.
func NewStudentService(
	repo studentdb.Repository,
	logger *slog.Logger,
	m metrics.ServiceMetrics,
	tracer trace.Tracer,
	db *bun.DB,
) *StudentService {
	return &StudentService{
		repo:   repo,
		runner: operation.NewRunner("StudentService", logger, m, tracer, db),
	}
}

type studentResult = results.OperationResult[*studentdb.Student, error]

func (s *StudentService) ListStudents(ctx context.Context, trainerID uuid.UUID) ([]studentdb.Student, error) {
	return operation.Execute(s.runner, ctx, "ListStudents", trainerID.String(), func(ctx context.Context, db bun.IDB) (results.OperationResult[[]studentdb.Student, error], error) {
		students, err := s.repo.List(ctx, db, trainerID)
		if err != nil {
			return results.OperationResult[[]studentdb.Student, error]{}, err
		}
		if students == nil {
			students = []studentdb.Student{}
		}
		return results.SuccessResult[[]studentdb.Student, error](students), nil
	})
}

func (s *StudentService) GetStudent(ctx context.Context, trainerID, id uuid.UUID) (*studentdb.Student, error) {
	return operation.Execute(s.runner, ctx, "GetStudent", id.String(), func(ctx context.Context, db bun.IDB) (studentResult, error) {
		return s.getLogic(ctx, db, trainerID, id)
	})
}

func (s *StudentService) getLogic(ctx context.Context, db bun.IDB, trainerID, id uuid.UUID) (studentResult, error) {
	student, err := s.repo.Get(ctx, db, trainerID, id)
	if err != nil {
		if errors.Is(err, studentdb.ErrNotFound) {
			return results.FailureResult[*studentdb.Student, error](ErrStudentNotFound), nil
		}
		return studentResult{}, err
	}
	return results.SuccessResult[*studentdb.Student, error](student), nil
}

func (s *StudentService) CreateStudent(ctx context.Context, trainerID uuid.UUID, in StudentInput) (*studentdb.Student, error) {
	return operation.Execute(s.runner, ctx, "CreateStudent", trainerID.String(), func(ctx context.Context, db bun.IDB) (studentResult, error) {
		student := &studentdb.Student{TrainerID: trainerID}
		apply(student, in)
		if err := s.repo.Create(ctx, db, student); err != nil {
			return studentResult{}, err
		}
		return results.SuccessResult[*studentdb.Student, error](student), nil
	})
}

func (s *StudentService) UpdateStudent(ctx context.Context, trainerID, id uuid.UUID, in StudentInput) (*studentdb.Student, error) {
	return operation.Execute(s.runner, ctx, "UpdateStudent", id.String(), func(ctx context.Context, db bun.IDB) (studentResult, error) {
		res, err := s.getLogic(ctx, db, trainerID, id)
		if err != nil || res.IsFailure() {
			return res, err
		}
		student := *res.Success
		apply(student, in)
		if err := s.repo.Update(ctx, db, student); err != nil {
			if errors.Is(err, studentdb.ErrNotFound) {
				return results.FailureResult[*studentdb.Student, error](ErrStudentNotFound), nil
			}
			return studentResult{}, err
		}
		return results.SuccessResult[*studentdb.Student, error](student), nil
	})
}

func (s *StudentService) DeleteStudent(ctx context.Context, trainerID, id uuid.UUID) error {
	_, err := operation.Execute(s.runner, ctx, "DeleteStudent", id.String(), func(ctx context.Context, db bun.IDB) (results.OperationResult[struct{}, error], error) {
		if err := s.repo.Delete(ctx, db, trainerID, id); err != nil {
			if errors.Is(err, studentdb.ErrNotFound) {
				return results.FailureResult[struct{}, error](ErrStudentNotFound), nil
			}
			return results.OperationResult[struct{}, error]{}, err
		}
		return results.SuccessResult[struct{}, error](struct{}{}), nil
	})
	return err
}

func apply(student *studentdb.Student, in StudentInput) {
	student.Name = strings.TrimSpace(in.Name)
	student.ContactInfo = in.ContactInfo
	student.SkillLevel = in.SkillLevel
	student.Notes = in.Notes
}
