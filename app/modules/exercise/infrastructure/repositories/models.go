package exercisedb

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	exercisedomain "github.com/padelcoach/coach-api/app/modules/exercise/domain"
	"github.com/uptrace/bun"
)

// Exercise is a reusable drill in a trainer's library.
type Exercise struct {
	bun.BaseModel     `bun:"table:exercises,alias:e"`
	ID                uuid.UUID           `bun:"id,pk,type:uuid" json:"id"`
	TrainerID         uuid.UUID           `bun:"trainer_id,type:uuid,notnull" json:"-"`
	Name              string              `bun:"name,notnull" json:"name"`
	Description       *string             `bun:"description" json:"description"`
	Type              exercisedomain.Type `bun:"type,notnull" json:"type"`
	DurationMinutes   *int                `bun:"duration_minutes" json:"duration_minutes"`
	Material          *string             `bun:"material" json:"material"`
	TacticalBoardData json.RawMessage     `bun:"tactical_board_data,type:jsonb,nullzero" json:"tactical_board_data,omitempty"`
	CreatedAt         time.Time           `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"created_at"`
	UpdatedAt         time.Time           `bun:"updated_at,nullzero,notnull,default:current_timestamp" json:"updated_at"`
}
