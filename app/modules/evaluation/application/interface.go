package evaluationservice

import (
	"context"

	"github.com/google/uuid"
	evaluationdomain "github.com/padelcoach/coach-api/app/modules/evaluation/domain"
	evaluationdb "github.com/padelcoach/coach-api/app/modules/evaluation/infrastructure/repositories"
)

// Service runs game evaluation sessions: participants, teams, the stat log
// and the score derived from it.
type Service interface {
	ListSessions(ctx context.Context, trainerID uuid.UUID) ([]evaluationdb.GameSession, error)
	GetSession(ctx context.Context, trainerID, id uuid.UUID) (*SessionDetail, error)
	CreateSession(ctx context.Context, trainerID uuid.UUID, in CreateSessionInput) (*SessionDetail, error)
	DeleteSession(ctx context.Context, trainerID, id uuid.UUID) error

	SetTeams(ctx context.Context, trainerID, id uuid.UUID, teams evaluationdomain.TeamAssignment) (evaluationdomain.TeamAssignment, error)
	SetGoldenPoint(ctx context.Context, trainerID, id uuid.UUID, enabled bool) (evaluationdomain.ScoreView, error)
	GetScore(ctx context.Context, trainerID, id uuid.UUID) (evaluationdomain.ScoreView, error)

	RecordStat(ctx context.Context, trainerID, id uuid.UUID, in RecordStatInput) (*StatResult, error)
	ManualPoint(ctx context.Context, trainerID, id uuid.UUID, in ManualPointInput) (*StatResult, error)
	UndoLastStat(ctx context.Context, trainerID, id uuid.UUID) (*UndoResult, error)

	GetSummary(ctx context.Context, trainerID, id uuid.UUID) (*SessionSummary, error)
	RenderChart(ctx context.Context, trainerID, id uuid.UUID) ([]byte, error)
	ExportWorkbook(ctx context.Context, trainerID, id uuid.UUID) ([]byte, error)
}

// CreateSessionInput opens a session. Date defaults to now and GoldenPoint to true.
type CreateSessionInput struct {
	StudentIDs  []uuid.UUID `json:"student_ids" validate:"required,min=1,dive,required"`
	Date        *string     `json:"date"`
	Notes       *string     `json:"notes"`
	GoldenPoint *bool       `json:"golden_point"`
}

type RecordStatInput struct {
	StudentID  uuid.UUID `json:"student_id" validate:"required"`
	StatType   string    `json:"stat_type" validate:"required"`
	StrokeType string    `json:"stroke_type" validate:"required"`
}

type ManualPointInput struct {
	Team int `json:"team" validate:"required,oneof=1 2"`
}

type GoldenPointInput struct {
	Enabled *bool `json:"enabled" validate:"required"`
}

// SessionDetail is a session with its teams, full stat log and current score.
type SessionDetail struct {
	*evaluationdb.GameSession
	Teams evaluationdomain.TeamAssignment `json:"teams"`
	Stats []evaluationdb.Stat             `json:"stats"`
	Score evaluationdomain.ScoreView      `json:"score"`
}

// StatResult is returned after appending to the stat log. Warning is set
// when the stat was kept but could not move the score.
type StatResult struct {
	Stat    *evaluationdb.Stat         `json:"stat"`
	Score   evaluationdomain.ScoreView `json:"score"`
	Warning string                     `json:"warning,omitempty"`
}

type UndoResult struct {
	DeletedStatID uuid.UUID                  `json:"deleted_stat_id"`
	Score         evaluationdomain.ScoreView `json:"score"`
}
