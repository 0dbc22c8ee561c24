package planhandlers

import (
	"context"

	"github.com/google/uuid"
	planservice "github.com/padelcoach/coach-api/app/modules/plan/application"
	plandb "github.com/padelcoach/coach-api/app/modules/plan/infrastructure/repositories"
)

type FakeService struct {
	ListPlansFunc  func(ctx context.Context, trainerID uuid.UUID) ([]plandb.PracticePlan, error)
	GetPlanFunc    func(ctx context.Context, trainerID, id uuid.UUID) (*plandb.PracticePlan, error)
	CreatePlanFunc func(ctx context.Context, trainerID uuid.UUID, in planservice.CreatePlanInput) (*plandb.PracticePlan, error)
	UpdatePlanFunc func(ctx context.Context, trainerID, id uuid.UUID, in planservice.UpdatePlanInput) (*plandb.PracticePlan, error)
	DeletePlanFunc func(ctx context.Context, trainerID, id uuid.UUID) error
}

func (f *FakeService) ListPlans(ctx context.Context, trainerID uuid.UUID) ([]plandb.PracticePlan, error) {
	if f.ListPlansFunc != nil {
		return f.ListPlansFunc(ctx, trainerID)
	}
	return []plandb.PracticePlan{}, nil
}

func (f *FakeService) GetPlan(ctx context.Context, trainerID, id uuid.UUID) (*plandb.PracticePlan, error) {
	if f.GetPlanFunc != nil {
		return f.GetPlanFunc(ctx, trainerID, id)
	}
	return nil, planservice.ErrPlanNotFound
}

func (f *FakeService) CreatePlan(ctx context.Context, trainerID uuid.UUID, in planservice.CreatePlanInput) (*plandb.PracticePlan, error) {
	if f.CreatePlanFunc != nil {
		return f.CreatePlanFunc(ctx, trainerID, in)
	}
	return &plandb.PracticePlan{ID: uuid.New(), TrainerID: trainerID, Title: in.Title}, nil
}

func (f *FakeService) UpdatePlan(ctx context.Context, trainerID, id uuid.UUID, in planservice.UpdatePlanInput) (*plandb.PracticePlan, error) {
	if f.UpdatePlanFunc != nil {
		return f.UpdatePlanFunc(ctx, trainerID, id, in)
	}
	return &plandb.PracticePlan{ID: id, TrainerID: trainerID}, nil
}

func (f *FakeService) DeletePlan(ctx context.Context, trainerID, id uuid.UUID) error {
	if f.DeletePlanFunc != nil {
		return f.DeletePlanFunc(ctx, trainerID, id)
	}
	return nil
}
