package evaluationservice

import (
	"context"
	"errors"

	"github.com/google/uuid"
	evaluationdomain "github.com/padelcoach/coach-api/app/modules/evaluation/domain"
	evaluationdb "github.com/padelcoach/coach-api/app/modules/evaluation/infrastructure/repositories"
	"github.com/padelcoach/coach-api/app/shared/operation"
	"github.com/padelcoach/coach-api/app/shared/results"
	"github.com/uptrace/bun"
)

// ActionCounts tallies a player's actions by stat type.
type ActionCounts struct {
	Winners        int `json:"winners"`
	ForcedErrors   int `json:"forced_errors"`
	UnforcedErrors int `json:"unforced_errors"`
}

func (c *ActionCounts) add(t evaluationdomain.StatType) {
	switch t {
	case evaluationdomain.StatWinner:
		c.Winners++
	case evaluationdomain.StatForcedError:
		c.ForcedErrors++
	case evaluationdomain.StatUnforcedError:
		c.UnforcedErrors++
	}
}

func (c ActionCounts) Total() int { return c.Winners + c.ForcedErrors + c.UnforcedErrors }

type PlayerSummary struct {
	StudentID uuid.UUID               `json:"student_id"`
	Name      string                  `json:"name"`
	Team      evaluationdomain.TeamID `json:"team,omitempty"`
	ActionCounts
	// Strokes only lists strokes the player actually used.
	Strokes map[evaluationdomain.StrokeType]*ActionCounts `json:"strokes"`
}

// SessionSummary aggregates a session's stat log.
type SessionSummary struct {
	SessionID     uuid.UUID                  `json:"session_id"`
	Players       []PlayerSummary            `json:"players"`
	Team1Points   int                        `json:"team1_points"`
	Team2Points   int                        `json:"team2_points"`
	ManualPoints  int                        `json:"manual_points"`
	UnscoredStats int                        `json:"unscored_stats"`
	TotalStats    int                        `json:"total_stats"`
	Score         evaluationdomain.ScoreView `json:"score"`
}

// Summarize builds per-player totals in participant order. Stats of students
// that are no longer participants count toward the session totals only.
func Summarize(sessionID uuid.UUID, participants []evaluationdb.SessionStudent, stats []evaluationdb.Stat, score evaluationdomain.ScoreState) *SessionSummary {
	summary := &SessionSummary{
		SessionID:  sessionID,
		Players:    make([]PlayerSummary, len(participants)),
		TotalStats: len(stats),
		Score:      score.Display(),
	}
	index := make(map[uuid.UUID]int, len(participants))
	for i, p := range participants {
		name := ""
		if p.Student != nil {
			name = p.Student.Name
		}
		summary.Players[i] = PlayerSummary{
			StudentID: p.StudentID,
			Name:      name,
			Team:      p.Team,
			Strokes:   map[evaluationdomain.StrokeType]*ActionCounts{},
		}
		index[p.StudentID] = i
	}

	for _, st := range stats {
		switch {
		case st.PointWinnerTeam == nil:
			summary.UnscoredStats++
		case *st.PointWinnerTeam == evaluationdomain.Team1:
			summary.Team1Points++
		case *st.PointWinnerTeam == evaluationdomain.Team2:
			summary.Team2Points++
		}
		if st.StatType == evaluationdomain.StatManualPoint {
			summary.ManualPoints++
			continue
		}
		if st.StudentID == nil {
			continue
		}
		i, ok := index[*st.StudentID]
		if !ok {
			continue
		}
		player := &summary.Players[i]
		player.add(st.StatType)
		stroke, ok := player.Strokes[st.StrokeType]
		if !ok {
			stroke = &ActionCounts{}
			player.Strokes[st.StrokeType] = stroke
		}
		stroke.add(st.StatType)
	}
	return summary
}

func (s *EvaluationService) GetSummary(ctx context.Context, trainerID, id uuid.UUID) (*SessionSummary, error) {
	return operation.Execute(s.runner, ctx, "GetSummary", id.String(), func(ctx context.Context, db bun.IDB) (results.OperationResult[*SessionSummary, error], error) {
		return s.summaryLogic(ctx, db, trainerID, id)
	})
}

func (s *EvaluationService) summaryLogic(ctx context.Context, db bun.IDB, trainerID, id uuid.UUID) (results.OperationResult[*SessionSummary, error], error) {
	res, err := s.detailLogic(ctx, db, trainerID, id)
	if err != nil || res.IsFailure() {
		if err == nil {
			return results.FailureResult[*SessionSummary, error](*res.Failure), nil
		}
		return results.OperationResult[*SessionSummary, error]{}, err
	}
	detail := *res.Success
	state, err := replay(detail.Stats, detail.GoldenPoint)
	if err != nil {
		return results.OperationResult[*SessionSummary, error]{}, err
	}
	return results.SuccessResult[*SessionSummary, error](Summarize(detail.ID, detail.Participants, detail.Stats, state)), nil
}

func (s *EvaluationService) RenderChart(ctx context.Context, trainerID, id uuid.UUID) ([]byte, error) {
	return operation.Execute(s.runner, ctx, "RenderChart", id.String(), func(ctx context.Context, db bun.IDB) (results.OperationResult[[]byte, error], error) {
		res, err := s.summaryLogic(ctx, db, trainerID, id)
		if err != nil || res.IsFailure() {
			if err == nil {
				return results.FailureResult[[]byte, error](*res.Failure), nil
			}
			return results.OperationResult[[]byte, error]{}, err
		}
		png, err := GenerateActionChart(*res.Success)
		if err != nil {
			if errors.Is(err, ErrNothingToChart) {
				return results.FailureResult[[]byte, error](err), nil
			}
			return results.OperationResult[[]byte, error]{}, err
		}
		return results.SuccessResult[[]byte, error](png), nil
	})
}

func (s *EvaluationService) ExportWorkbook(ctx context.Context, trainerID, id uuid.UUID) ([]byte, error) {
	return operation.Execute(s.runner, ctx, "ExportWorkbook", id.String(), func(ctx context.Context, db bun.IDB) (results.OperationResult[[]byte, error], error) {
		res, err := s.detailLogic(ctx, db, trainerID, id)
		if err != nil || res.IsFailure() {
			if err == nil {
				return results.FailureResult[[]byte, error](*res.Failure), nil
			}
			return results.OperationResult[[]byte, error]{}, err
		}
		detail := *res.Success
		state, err := replay(detail.Stats, detail.GoldenPoint)
		if err != nil {
			return results.OperationResult[[]byte, error]{}, err
		}
		summary := Summarize(detail.ID, detail.Participants, detail.Stats, state)
		data, err := BuildWorkbook(detail, summary)
		if err != nil {
			return results.OperationResult[[]byte, error]{}, err
		}
		return results.SuccessResult[[]byte, error](data), nil
	})
}
