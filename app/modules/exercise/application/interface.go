package exerciseservice

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	exercisedb "github.com/padelcoach/coach-api/app/modules/exercise/infrastructure/repositories"
)

// Service manages a trainer's exercise library.
type Service interface {
	ListExercises(ctx context.Context, trainerID uuid.UUID) ([]exercisedb.Exercise, error)
	GetExercise(ctx context.Context, trainerID, id uuid.UUID) (*exercisedb.Exercise, error)
	CreateExercise(ctx context.Context, trainerID uuid.UUID, in ExerciseInput) (*exercisedb.Exercise, error)
	UpdateExercise(ctx context.Context, trainerID, id uuid.UUID, in ExerciseInput) (*exercisedb.Exercise, error)
	DeleteExercise(ctx context.Context, trainerID, id uuid.UUID) error
}

// ExerciseInput is the writable part of an exercise. Type is matched
// case-insensitively; TacticalBoardData is stored as given.
type ExerciseInput struct {
	Name              string          `json:"name" validate:"required,max=255"`
	Description       *string         `json:"description"`
	Type              string          `json:"type" validate:"required"`
	DurationMinutes   *int            `json:"duration_minutes" validate:"omitempty,min=0,max=600"`
	Material          *string         `json:"material" validate:"omitempty,max=1000"`
	TacticalBoardData json.RawMessage `json:"tactical_board_data"`
}
