package studentdb

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Student is a player coached by a trainer.
type Student struct {
	bun.BaseModel `bun:"table:students,alias:s"`
	ID            uuid.UUID `bun:"id,pk,type:uuid" json:"id"`
	TrainerID     uuid.UUID `bun:"trainer_id,type:uuid,notnull" json:"-"`
	Name          string    `bun:"name,notnull" json:"name"`
	ContactInfo   *string   `bun:"contact_info" json:"contact_info"`
	SkillLevel    *string   `bun:"skill_level" json:"skill_level"`
	Notes         *string   `bun:"notes" json:"notes"`
	CreatedAt     time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"created_at"`
	UpdatedAt     time.Time `bun:"updated_at,nullzero,notnull,default:current_timestamp" json:"updated_at"`
}
