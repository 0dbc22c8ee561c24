package evaluationdb

import (
	"context"

	"github.com/google/uuid"
	evaluationdomain "github.com/padelcoach/coach-api/app/modules/evaluation/domain"
	"github.com/uptrace/bun"
)

// Repository defines the contract for game sessions and their stat logs.
// Session queries are scoped to the trainer; stat queries take a session id
// the caller has already resolved through a scoped session query.
type Repository interface {
	ListSessions(ctx context.Context, db bun.IDB, trainerID uuid.UUID) ([]GameSession, error)
	GetSession(ctx context.Context, db bun.IDB, trainerID, id uuid.UUID) (*GameSession, error)
	// LockSession loads the bare session row FOR UPDATE so that writes to
	// one session's stat log are serialized.
	LockSession(ctx context.Context, db bun.IDB, trainerID, id uuid.UUID) (*GameSession, error)
	CreateSession(ctx context.Context, db bun.IDB, session *GameSession) error
	DeleteSession(ctx context.Context, db bun.IDB, trainerID, id uuid.UUID) error
	UpdateGoldenPoint(ctx context.Context, db bun.IDB, trainerID, id uuid.UUID, enabled bool) error

	ListParticipants(ctx context.Context, db bun.IDB, sessionID uuid.UUID) ([]SessionStudent, error)
	SetTeams(ctx context.Context, db bun.IDB, sessionID uuid.UUID, teams evaluationdomain.TeamAssignment) error

	// ListStats returns the log in recording order.
	ListStats(ctx context.Context, db bun.IDB, sessionID uuid.UUID) ([]Stat, error)
	InsertStat(ctx context.Context, db bun.IDB, stat *Stat) error
	// LastStat returns ErrNoStats on an empty log.
	LastStat(ctx context.Context, db bun.IDB, sessionID uuid.UUID) (*Stat, error)
	DeleteStat(ctx context.Context, db bun.IDB, sessionID, id uuid.UUID) error
}
