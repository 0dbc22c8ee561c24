package planservice

import (
	"context"

	"github.com/google/uuid"
	plandb "github.com/padelcoach/coach-api/app/modules/plan/infrastructure/repositories"
)

// Service manages a trainer's practice plans.
type Service interface {
	ListPlans(ctx context.Context, trainerID uuid.UUID) ([]plandb.PracticePlan, error)
	GetPlan(ctx context.Context, trainerID, id uuid.UUID) (*plandb.PracticePlan, error)
	CreatePlan(ctx context.Context, trainerID uuid.UUID, in CreatePlanInput) (*plandb.PracticePlan, error)
	UpdatePlan(ctx context.Context, trainerID, id uuid.UUID, in UpdatePlanInput) (*plandb.PracticePlan, error)
	DeletePlan(ctx context.Context, trainerID, id uuid.UUID) error
}

// CreatePlanInput is the body of a plan creation. Date accepts RFC3339,
// YYYY-MM-DD or a natural-language expression.
type CreatePlanInput struct {
	Title           string          `json:"title" validate:"required,max=255"`
	Date            string          `json:"date" validate:"required"`
	Notes           *string         `json:"notes"`
	DurationMinutes *int            `json:"duration_minutes" validate:"omitempty,min=0"`
	Exercises       []PlanItemInput `json:"exercises" validate:"required,min=1,dive"`
}

// PlanItemInput prescribes one exercise. A zero Order falls back to the
// item's position in the request.
type PlanItemInput struct {
	ExerciseID  uuid.UUID `json:"exercise_id" validate:"required"`
	Order       int       `json:"order" validate:"min=0"`
	Sets        *int      `json:"sets" validate:"omitempty,min=0"`
	Reps        *int      `json:"reps" validate:"omitempty,min=0"`
	RestSeconds *int      `json:"rest_seconds" validate:"omitempty,min=0"`
}

// UpdatePlanInput changes plan metadata only; nil fields are left as they are.
type UpdatePlanInput struct {
	Title           *string `json:"title" validate:"omitempty,min=1,max=255"`
	Date            *string `json:"date" validate:"omitempty,min=1"`
	Notes           *string `json:"notes"`
	DurationMinutes *int    `json:"duration_minutes" validate:"omitempty,min=0"`
}
