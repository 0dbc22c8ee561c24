package authdb

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Trainer is the persisted account row.
type Trainer struct {
	bun.BaseModel `bun:"table:trainers,alias:tr"`
	ID            uuid.UUID `bun:"id,pk,type:uuid"`
	Email         string    `bun:"email,notnull,unique"`
	Name          string    `bun:"name,notnull"`
	PasswordHash  string    `bun:"password_hash,notnull"`
	CreatedAt     time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
	UpdatedAt     time.Time `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}
