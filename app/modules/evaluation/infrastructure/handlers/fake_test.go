package evaluationhandlers

import (
	"context"

	"github.com/google/uuid"
	evaluationservice "github.com/padelcoach/coach-api/app/modules/evaluation/application"
	evaluationdomain "github.com/padelcoach/coach-api/app/modules/evaluation/domain"
	evaluationdb "github.com/padelcoach/coach-api/app/modules/evaluation/infrastructure/repositories"
)

// FakeService returns a plausible success for every method unless the
// matching XxxFunc is set.
type FakeService struct {
	ListSessionsFunc   func(ctx context.Context, trainerID uuid.UUID) ([]evaluationdb.GameSession, error)
	GetSessionFunc     func(ctx context.Context, trainerID, id uuid.UUID) (*evaluationservice.SessionDetail, error)
	CreateSessionFunc  func(ctx context.Context, trainerID uuid.UUID, in evaluationservice.CreateSessionInput) (*evaluationservice.SessionDetail, error)
	DeleteSessionFunc  func(ctx context.Context, trainerID, id uuid.UUID) error
	SetTeamsFunc       func(ctx context.Context, trainerID, id uuid.UUID, teams evaluationdomain.TeamAssignment) (evaluationdomain.TeamAssignment, error)
	SetGoldenPointFunc func(ctx context.Context, trainerID, id uuid.UUID, enabled bool) (evaluationdomain.ScoreView, error)
	GetScoreFunc       func(ctx context.Context, trainerID, id uuid.UUID) (evaluationdomain.ScoreView, error)
	RecordStatFunc     func(ctx context.Context, trainerID, id uuid.UUID, in evaluationservice.RecordStatInput) (*evaluationservice.StatResult, error)
	ManualPointFunc    func(ctx context.Context, trainerID, id uuid.UUID, in evaluationservice.ManualPointInput) (*evaluationservice.StatResult, error)
	UndoLastStatFunc   func(ctx context.Context, trainerID, id uuid.UUID) (*evaluationservice.UndoResult, error)
	GetSummaryFunc     func(ctx context.Context, trainerID, id uuid.UUID) (*evaluationservice.SessionSummary, error)
	RenderChartFunc    func(ctx context.Context, trainerID, id uuid.UUID) ([]byte, error)
	ExportWorkbookFunc func(ctx context.Context, trainerID, id uuid.UUID) ([]byte, error)
}

var zeroScore = evaluationdomain.NewScoreState().Display()

func (f *FakeService) ListSessions(ctx context.Context, trainerID uuid.UUID) ([]evaluationdb.GameSession, error) {
	if f.ListSessionsFunc != nil {
		return f.ListSessionsFunc(ctx, trainerID)
	}
	return []evaluationdb.GameSession{}, nil
}

func (f *FakeService) GetSession(ctx context.Context, trainerID, id uuid.UUID) (*evaluationservice.SessionDetail, error) {
	if f.GetSessionFunc != nil {
		return f.GetSessionFunc(ctx, trainerID, id)
	}
	return nil, evaluationservice.ErrSessionNotFound
}

func (f *FakeService) CreateSession(ctx context.Context, trainerID uuid.UUID, in evaluationservice.CreateSessionInput) (*evaluationservice.SessionDetail, error) {
	if f.CreateSessionFunc != nil {
		return f.CreateSessionFunc(ctx, trainerID, in)
	}
	return &evaluationservice.SessionDetail{
		GameSession: &evaluationdb.GameSession{ID: uuid.New(), TrainerID: trainerID, GoldenPoint: true},
		Score:       zeroScore,
	}, nil
}

func (f *FakeService) DeleteSession(ctx context.Context, trainerID, id uuid.UUID) error {
	if f.DeleteSessionFunc != nil {
		return f.DeleteSessionFunc(ctx, trainerID, id)
	}
	return nil
}

func (f *FakeService) SetTeams(ctx context.Context, trainerID, id uuid.UUID, teams evaluationdomain.TeamAssignment) (evaluationdomain.TeamAssignment, error) {
	if f.SetTeamsFunc != nil {
		return f.SetTeamsFunc(ctx, trainerID, id, teams)
	}
	return teams, nil
}

func (f *FakeService) SetGoldenPoint(ctx context.Context, trainerID, id uuid.UUID, enabled bool) (evaluationdomain.ScoreView, error) {
	if f.SetGoldenPointFunc != nil {
		return f.SetGoldenPointFunc(ctx, trainerID, id, enabled)
	}
	view := zeroScore
	view.GoldenPoint = enabled
	return view, nil
}

func (f *FakeService) GetScore(ctx context.Context, trainerID, id uuid.UUID) (evaluationdomain.ScoreView, error) {
	if f.GetScoreFunc != nil {
		return f.GetScoreFunc(ctx, trainerID, id)
	}
	return zeroScore, nil
}

func (f *FakeService) RecordStat(ctx context.Context, trainerID, id uuid.UUID, in evaluationservice.RecordStatInput) (*evaluationservice.StatResult, error) {
	if f.RecordStatFunc != nil {
		return f.RecordStatFunc(ctx, trainerID, id, in)
	}
	return &evaluationservice.StatResult{Stat: &evaluationdb.Stat{ID: uuid.New(), SessionID: id}, Score: zeroScore}, nil
}

func (f *FakeService) ManualPoint(ctx context.Context, trainerID, id uuid.UUID, in evaluationservice.ManualPointInput) (*evaluationservice.StatResult, error) {
	if f.ManualPointFunc != nil {
		return f.ManualPointFunc(ctx, trainerID, id, in)
	}
	return &evaluationservice.StatResult{Stat: &evaluationdb.Stat{ID: uuid.New(), SessionID: id}, Score: zeroScore}, nil
}

func (f *FakeService) UndoLastStat(ctx context.Context, trainerID, id uuid.UUID) (*evaluationservice.UndoResult, error) {
	if f.UndoLastStatFunc != nil {
		return f.UndoLastStatFunc(ctx, trainerID, id)
	}
	return nil, evaluationservice.ErrNothingToUndo
}

func (f *FakeService) GetSummary(ctx context.Context, trainerID, id uuid.UUID) (*evaluationservice.SessionSummary, error) {
	if f.GetSummaryFunc != nil {
		return f.GetSummaryFunc(ctx, trainerID, id)
	}
	return &evaluationservice.SessionSummary{SessionID: id, Players: []evaluationservice.PlayerSummary{}, Score: zeroScore}, nil
}

func (f *FakeService) RenderChart(ctx context.Context, trainerID, id uuid.UUID) ([]byte, error) {
	if f.RenderChartFunc != nil {
		return f.RenderChartFunc(ctx, trainerID, id)
	}
	return nil, evaluationservice.ErrNothingToChart
}

func (f *FakeService) ExportWorkbook(ctx context.Context, trainerID, id uuid.UUID) ([]byte, error) {
	if f.ExportWorkbookFunc != nil {
		return f.ExportWorkbookFunc(ctx, trainerID, id)
	}
	return []byte("PK"), nil
}
