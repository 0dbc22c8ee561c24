package plandb

import (
	"time"

	"github.com/google/uuid"
	exercisedb "github.com/padelcoach/coach-api/app/modules/exercise/infrastructure/repositories"
	"github.com/uptrace/bun"
)

// PracticePlan is a dated training plan made of ordered exercises.
type PracticePlan struct {
	bun.BaseModel   `bun:"table:practice_plans,alias:pp"`
	ID              uuid.UUID      `bun:"id,pk,type:uuid" json:"id"`
	TrainerID       uuid.UUID      `bun:"trainer_id,type:uuid,notnull" json:"-"`
	Title           string         `bun:"title,notnull" json:"title"`
	Date            time.Time      `bun:"date,notnull" json:"date"`
	Notes           *string        `bun:"notes" json:"notes"`
	DurationMinutes *int           `bun:"duration_minutes" json:"duration_minutes"`
	CreatedAt       time.Time      `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"created_at"`
	UpdatedAt       time.Time      `bun:"updated_at,nullzero,notnull,default:current_timestamp" json:"updated_at"`
	ExerciseCount   int            `bun:"exercise_count,scanonly" json:"exercise_count"`
	Items           []PlanExercise `bun:"rel:has-many,join:id=plan_id" json:"exercises,omitempty"`
}

// PlanExercise places an exercise in a plan with its prescription.
type PlanExercise struct {
	bun.BaseModel `bun:"table:practice_plan_exercises,alias:ppe"`
	ID            uuid.UUID            `bun:"id,pk,type:uuid" json:"id"`
	PlanID        uuid.UUID            `bun:"plan_id,type:uuid,notnull" json:"-"`
	ExerciseID    uuid.UUID            `bun:"exercise_id,type:uuid,notnull" json:"exercise_id"`
	Order         int                  `bun:"sort_order,notnull" json:"order"`
	Sets          *int                 `bun:"sets" json:"sets"`
	Reps          *int                 `bun:"reps" json:"reps"`
	RestSeconds   *int                 `bun:"rest_seconds" json:"rest_seconds"`
	Exercise      *exercisedb.Exercise `bun:"rel:belongs-to,join:exercise_id=id" json:"exercise,omitempty"`
}
