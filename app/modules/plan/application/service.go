package planservice

import (
	"cmp"
	"context"
	"errors"
	"log/slog"
	"slices"
	"strings"

	"github.com/google/uuid"
	exercisedb "github.com/padelcoach/coach-api/app/modules/exercise/infrastructure/repositories"
	plandb "github.com/padelcoach/coach-api/app/modules/plan/infrastructure/repositories"
	"github.com/padelcoach/coach-api/app/shared/httpx"
	"github.com/padelcoach/coach-api/app/shared/metrics"
	"github.com/padelcoach/coach-api/app/shared/operation"
	"github.com/padelcoach/coach-api/app/shared/results"
	"github.com/padelcoach/coach-api/app/shared/timeutil"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace"
)

// PlanService implements the Service interface.
type PlanService struct {
	repo      plandb.Repository
	exercises exercisedb.Repository
	dates     *timeutil.DateParser
	runner    *operation.Runner
}

// NewPlanService creates a new PlanService.
func NewPlanService(
	repo plandb.Repository,
	exercises exercisedb.Repository,
	clock timeutil.Clock,
	logger *slog.Logger,
	m metrics.ServiceMetrics,
	tracer trace.Tracer,
	db *bun.DB,
) *PlanService {
	return &PlanService{
		repo:      repo,
		exercises: exercises,
		dates:     timeutil.NewDateParser(clock),
		runner:    operation.NewRunner("PlanService", logger, m, tracer, db),
	}
}

type planResult = results.OperationResult[*plandb.PracticePlan, error]

func (s *PlanService) ListPlans(ctx context.Context, trainerID uuid.UUID) ([]plandb.PracticePlan, error) {
	return operation.Execute(s.runner, ctx, "ListPlans", trainerID.String(), func(ctx context.Context, db bun.IDB) (results.OperationResult[[]plandb.PracticePlan, error], error) {
		plans, err := s.repo.List(ctx, db, trainerID)
		if err != nil {
			return results.OperationResult[[]plandb.PracticePlan, error]{}, err
		}
		if plans == nil {
			plans = []plandb.PracticePlan{}
		}
		return results.SuccessResult[[]plandb.PracticePlan, error](plans), nil
	})
}

func (s *PlanService) GetPlan(ctx context.Context, trainerID, id uuid.UUID) (*plandb.PracticePlan, error) {
	return operation.Execute(s.runner, ctx, "GetPlan", id.String(), func(ctx context.Context, db bun.IDB) (planResult, error) {
		return s.getLogic(ctx, db, trainerID, id)
	})
}

func (s *PlanService) getLogic(ctx context.Context, db bun.IDB, trainerID, id uuid.UUID) (planResult, error) {
	plan, err := s.repo.Get(ctx, db, trainerID, id)
	if err != nil {
		if errors.Is(err, plandb.ErrNotFound) {
			return results.FailureResult[*plandb.PracticePlan, error](ErrPlanNotFound), nil
		}
		return planResult{}, err
	}
	return results.SuccessResult[*plandb.PracticePlan, error](plan), nil
}

func (s *PlanService) CreatePlan(ctx context.Context, trainerID uuid.UUID, in CreatePlanInput) (*plandb.PracticePlan, error) {
	return operation.Execute(s.runner, ctx, "CreatePlan", trainerID.String(), func(ctx context.Context, db bun.IDB) (planResult, error) {
		date, err := s.dates.Parse(in.Date)
		if err != nil {
			return results.FailureResult[*plandb.PracticePlan, error](httpx.NewValidationError("date: %v", err)), nil
		}

		ids := make([]uuid.UUID, 0, len(in.Exercises))
		seen := make(map[uuid.UUID]struct{}, len(in.Exercises))
		for _, item := range in.Exercises {
			if _, ok := seen[item.ExerciseID]; ok {
				continue
			}
			seen[item.ExerciseID] = struct{}{}
			ids = append(ids, item.ExerciseID)
		}
		owned, err := s.exercises.GetMany(ctx, db, trainerID, ids)
		if err != nil {
			return planResult{}, err
		}
		if len(owned) != len(ids) {
			return results.FailureResult[*plandb.PracticePlan, error](ErrUnknownExercise), nil
		}
		byID := make(map[uuid.UUID]*exercisedb.Exercise, len(owned))
		for i := range owned {
			byID[owned[i].ID] = &owned[i]
		}

		plan := &plandb.PracticePlan{
			TrainerID:       trainerID,
			Title:           strings.TrimSpace(in.Title),
			Date:            date,
			Notes:           in.Notes,
			DurationMinutes: in.DurationMinutes,
			Items:           make([]plandb.PlanExercise, 0, len(in.Exercises)),
		}
		for i, item := range in.Exercises {
			order := item.Order
			if order == 0 {
				order = i + 1
			}
			plan.Items = append(plan.Items, plandb.PlanExercise{
				ExerciseID:  item.ExerciseID,
				Order:       order,
				Sets:        item.Sets,
				Reps:        item.Reps,
				RestSeconds: item.RestSeconds,
			})
		}

		if err := s.repo.Create(ctx, db, plan); err != nil {
			return planResult{}, err
		}
		for i := range plan.Items {
			plan.Items[i].Exercise = byID[plan.Items[i].ExerciseID]
		}
		sortItems(plan.Items)
		return results.SuccessResult[*plandb.PracticePlan, error](plan), nil
	})
}

func (s *PlanService) UpdatePlan(ctx context.Context, trainerID, id uuid.UUID, in UpdatePlanInput) (*plandb.PracticePlan, error) {
	return operation.Execute(s.runner, ctx, "UpdatePlan", id.String(), func(ctx context.Context, db bun.IDB) (planResult, error) {
		res, err := s.getLogic(ctx, db, trainerID, id)
		if err != nil || res.IsFailure() {
			return res, err
		}
		plan := *res.Success

		if in.Title != nil {
			plan.Title = strings.TrimSpace(*in.Title)
		}
		if in.Date != nil {
			date, err := s.dates.Parse(*in.Date)
			if err != nil {
				return results.FailureResult[*plandb.PracticePlan, error](httpx.NewValidationError("date: %v", err)), nil
			}
			plan.Date = date
		}
		if in.Notes != nil {
			plan.Notes = in.Notes
		}
		if in.DurationMinutes != nil {
			plan.DurationMinutes = in.DurationMinutes
		}

		if err := s.repo.Update(ctx, db, plan); err != nil {
			if errors.Is(err, plandb.ErrNotFound) {
				return results.FailureResult[*plandb.PracticePlan, error](ErrPlanNotFound), nil
			}
			return planResult{}, err
		}
		return results.SuccessResult[*plandb.PracticePlan, error](plan), nil
	})
}

func (s *PlanService) DeletePlan(ctx context.Context, trainerID, id uuid.UUID) error {
	_, err := operation.Execute(s.runner, ctx, "DeletePlan", id.String(), func(ctx context.Context, db bun.IDB) (results.OperationResult[struct{}, error], error) {
		if err := s.repo.Delete(ctx, db, trainerID, id); err != nil {
			if errors.Is(err, plandb.ErrNotFound) {
				return results.FailureResult[struct{}, error](ErrPlanNotFound), nil
			}
			return results.OperationResult[struct{}, error]{}, err
		}
		return results.SuccessResult[struct{}, error](struct{}{}), nil
	})
	return err
}

func sortItems(items []plandb.PlanExercise) {
	slices.SortStableFunc(items, func(a, b plandb.PlanExercise) int {
		return cmp.Compare(a.Order, b.Order)
	})
}
