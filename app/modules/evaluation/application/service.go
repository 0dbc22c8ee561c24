package evaluationservice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	evaluationdomain "github.com/padelcoach/coach-api/app/modules/evaluation/domain"
	evaluationdb "github.com/padelcoach/coach-api/app/modules/evaluation/infrastructure/repositories"
	studentdb "github.com/padelcoach/coach-api/app/modules/student/infrastructure/repositories"
	"github.com/padelcoach/coach-api/app/shared/attr"
	"github.com/padelcoach/coach-api/app/shared/eventbus"
	"github.com/padelcoach/coach-api/app/shared/httpx"
	"github.com/padelcoach/coach-api/app/shared/metrics"
	"github.com/padelcoach/coach-api/app/shared/operation"
	"github.com/padelcoach/coach-api/app/shared/results"
	"github.com/padelcoach/coach-api/app/shared/timeutil"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace"
)

// EvaluationService implements the Service interface.
type EvaluationService struct {
	repo     evaluationdb.Repository
	students studentdb.Repository
	bus      eventbus.EventBus
	clock    timeutil.Clock
	dates    *timeutil.DateParser
	logger   *slog.Logger
	runner   *operation.Runner
}

// NewEvaluationService creates a new EvaluationService.
func NewEvaluationService(
	repo evaluationdb.Repository,
	students studentdb.Repository,
	bus eventbus.EventBus,
	clock timeutil.Clock,
	logger *slog.Logger,
	m metrics.ServiceMetrics,
	tracer trace.Tracer,
	db *bun.DB,
) *EvaluationService {
	if clock == nil {
		clock = timeutil.RealClock{}
	}
	return &EvaluationService{
		repo:     repo,
		students: students,
		bus:      bus,
		clock:    clock,
		dates:    timeutil.NewDateParser(clock),
		logger:   logger,
		runner:   operation.NewRunner("EvaluationService", logger, m, tracer, db),
	}
}

type detailResult = results.OperationResult[*SessionDetail, error]
type scoreResult = results.OperationResult[evaluationdomain.ScoreView, error]

func (s *EvaluationService) ListSessions(ctx context.Context, trainerID uuid.UUID) ([]evaluationdb.GameSession, error) {
	return operation.Execute(s.runner, ctx, "ListSessions", trainerID.String(), func(ctx context.Context, db bun.IDB) (results.OperationResult[[]evaluationdb.GameSession, error], error) {
		sessions, err := s.repo.ListSessions(ctx, db, trainerID)
		if err != nil {
			return results.OperationResult[[]evaluationdb.GameSession, error]{}, err
		}
		if sessions == nil {
			sessions = []evaluationdb.GameSession{}
		}
		return results.SuccessResult[[]evaluationdb.GameSession, error](sessions), nil
	})
}

func (s *EvaluationService) GetSession(ctx context.Context, trainerID, id uuid.UUID) (*SessionDetail, error) {
	return operation.Execute(s.runner, ctx, "GetSession", id.String(), func(ctx context.Context, db bun.IDB) (detailResult, error) {
		return s.detailLogic(ctx, db, trainerID, id)
	})
}

func (s *EvaluationService) detailLogic(ctx context.Context, db bun.IDB, trainerID, id uuid.UUID) (detailResult, error) {
	session, err := s.repo.GetSession(ctx, db, trainerID, id)
	if err != nil {
		if errors.Is(err, evaluationdb.ErrNotFound) {
			return results.FailureResult[*SessionDetail, error](ErrSessionNotFound), nil
		}
		return detailResult{}, err
	}
	stats, err := s.repo.ListStats(ctx, db, session.ID)
	if err != nil {
		return detailResult{}, err
	}
	if stats == nil {
		stats = []evaluationdb.Stat{}
	}
	if session.Participants == nil {
		session.Participants = []evaluationdb.SessionStudent{}
	}
	score, err := replay(stats, session.GoldenPoint)
	if err != nil {
		return detailResult{}, err
	}
	session.StatCount = len(stats)
	return results.SuccessResult[*SessionDetail, error](&SessionDetail{
		GameSession: session,
		Teams:       evaluationdb.Assignment(session.Participants),
		Stats:       stats,
		Score:       score.Display(),
	}), nil
}

func (s *EvaluationService) CreateSession(ctx context.Context, trainerID uuid.UUID, in CreateSessionInput) (*SessionDetail, error) {
	return operation.Execute(s.runner, ctx, "CreateSession", trainerID.String(), func(ctx context.Context, db bun.IDB) (detailResult, error) {
		date := s.clock.Now()
		if in.Date != nil && *in.Date != "" {
			parsed, err := s.dates.Parse(*in.Date)
			if err != nil {
				return results.FailureResult[*SessionDetail, error](httpx.NewValidationError("date: %v", err)), nil
			}
			date = parsed
		}

		ids := dedupe(in.StudentIDs)
		owned, err := s.students.GetMany(ctx, db, trainerID, ids)
		if err != nil {
			return detailResult{}, err
		}
		if len(owned) != len(ids) {
			return results.FailureResult[*SessionDetail, error](ErrUnknownStudent), nil
		}

		goldenPoint := true
		if in.GoldenPoint != nil {
			goldenPoint = *in.GoldenPoint
		}
		teams := evaluationdomain.DefaultAssignment(ids)
		session := &evaluationdb.GameSession{
			TrainerID:    trainerID,
			Date:         date,
			Notes:        in.Notes,
			GoldenPoint:  goldenPoint,
			Participants: make([]evaluationdb.SessionStudent, 0, len(ids)),
		}
		for _, id := range ids {
			session.Participants = append(session.Participants, evaluationdb.SessionStudent{
				StudentID: id,
				Team:      teams.TeamOf(id),
			})
		}
		if err := s.repo.CreateSession(ctx, db, session); err != nil {
			return detailResult{}, err
		}

		s.logger.InfoContext(ctx, "Game session created",
			attr.UUID("session_id", session.ID),
			attr.Int("participants", len(ids)),
		)
		return s.detailLogic(ctx, db, trainerID, session.ID)
	})
}

func (s *EvaluationService) DeleteSession(ctx context.Context, trainerID, id uuid.UUID) error {
	_, err := operation.Execute(s.runner, ctx, "DeleteSession", id.String(), func(ctx context.Context, db bun.IDB) (results.OperationResult[struct{}, error], error) {
		if err := s.repo.DeleteSession(ctx, db, trainerID, id); err != nil {
			if errors.Is(err, evaluationdb.ErrNotFound) {
				return results.FailureResult[struct{}, error](ErrSessionNotFound), nil
			}
			return results.OperationResult[struct{}, error]{}, err
		}
		return results.SuccessResult[struct{}, error](struct{}{}), nil
	})
	return err
}

// SetTeams replaces the team split. Stats already recorded keep the team
// they awarded, so the score is unaffected.
func (s *EvaluationService) SetTeams(ctx context.Context, trainerID, id uuid.UUID, teams evaluationdomain.TeamAssignment) (evaluationdomain.TeamAssignment, error) {
	return operation.Execute(s.runner, ctx, "SetTeams", id.String(), func(ctx context.Context, db bun.IDB) (results.OperationResult[evaluationdomain.TeamAssignment, error], error) {
		session, err := s.repo.LockSession(ctx, db, trainerID, id)
		if err != nil {
			if errors.Is(err, evaluationdb.ErrNotFound) {
				return results.FailureResult[evaluationdomain.TeamAssignment, error](ErrSessionNotFound), nil
			}
			return results.OperationResult[evaluationdomain.TeamAssignment, error]{}, err
		}
		participants, err := s.repo.ListParticipants(ctx, db, session.ID)
		if err != nil {
			return results.OperationResult[evaluationdomain.TeamAssignment, error]{}, err
		}
		ids := make([]uuid.UUID, len(participants))
		for i, p := range participants {
			ids[i] = p.StudentID
		}
		if err := teams.Validate(ids); err != nil {
			return results.FailureResult[evaluationdomain.TeamAssignment, error](err), nil
		}
		if err := s.repo.SetTeams(ctx, db, session.ID, teams); err != nil {
			return results.OperationResult[evaluationdomain.TeamAssignment, error]{}, err
		}
		if teams.Team1 == nil {
			teams.Team1 = []uuid.UUID{}
		}
		if teams.Team2 == nil {
			teams.Team2 = []uuid.UUID{}
		}
		return results.SuccessResult[evaluationdomain.TeamAssignment, error](teams), nil
	})
}

// SetGoldenPoint changes the rule for points recorded from now on.
func (s *EvaluationService) SetGoldenPoint(ctx context.Context, trainerID, id uuid.UUID, enabled bool) (evaluationdomain.ScoreView, error) {
	return operation.Execute(s.runner, ctx, "SetGoldenPoint", id.String(), func(ctx context.Context, db bun.IDB) (scoreResult, error) {
		session, err := s.repo.LockSession(ctx, db, trainerID, id)
		if err != nil {
			if errors.Is(err, evaluationdb.ErrNotFound) {
				return results.FailureResult[evaluationdomain.ScoreView, error](ErrSessionNotFound), nil
			}
			return scoreResult{}, err
		}
		if err := s.repo.UpdateGoldenPoint(ctx, db, trainerID, session.ID, enabled); err != nil {
			return scoreResult{}, err
		}
		state, _, err := s.currentScore(ctx, db, session.ID, enabled)
		if err != nil {
			return scoreResult{}, err
		}
		return results.SuccessResult[evaluationdomain.ScoreView, error](state.Display()), nil
	})
}

func (s *EvaluationService) GetScore(ctx context.Context, trainerID, id uuid.UUID) (evaluationdomain.ScoreView, error) {
	return operation.Execute(s.runner, ctx, "GetScore", id.String(), func(ctx context.Context, db bun.IDB) (scoreResult, error) {
		session, err := s.repo.GetSession(ctx, db, trainerID, id)
		if err != nil {
			if errors.Is(err, evaluationdb.ErrNotFound) {
				return results.FailureResult[evaluationdomain.ScoreView, error](ErrSessionNotFound), nil
			}
			return scoreResult{}, err
		}
		state, _, err := s.currentScore(ctx, db, session.ID, session.GoldenPoint)
		if err != nil {
			return scoreResult{}, err
		}
		return results.SuccessResult[evaluationdomain.ScoreView, error](state.Display()), nil
	})
}

// currentScore replays the session's log. The log is returned for callers
// that need it as well.
func (s *EvaluationService) currentScore(ctx context.Context, db bun.IDB, sessionID uuid.UUID, goldenPoint bool) (evaluationdomain.ScoreState, []evaluationdb.Stat, error) {
	stats, err := s.repo.ListStats(ctx, db, sessionID)
	if err != nil {
		return evaluationdomain.ScoreState{}, nil, err
	}
	state, err := replay(stats, goldenPoint)
	if err != nil {
		return evaluationdomain.ScoreState{}, nil, err
	}
	return state, stats, nil
}

func replay(stats []evaluationdb.Stat, goldenPoint bool) (evaluationdomain.ScoreState, error) {
	state, err := evaluationdomain.Replay(evaluationdb.Awards(stats), goldenPoint)
	if err != nil {
		return evaluationdomain.ScoreState{}, fmt.Errorf("failed to replay stat log: %w", err)
	}
	return state, nil
}

func dedupe(ids []uuid.UUID) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(ids))
	seen := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
