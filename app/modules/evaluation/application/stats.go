package evaluationservice

import (
	"context"
	"errors"

	"github.com/google/uuid"
	evaluationdomain "github.com/padelcoach/coach-api/app/modules/evaluation/domain"
	evaluationdb "github.com/padelcoach/coach-api/app/modules/evaluation/infrastructure/repositories"
	"github.com/padelcoach/coach-api/app/shared/attr"
	"github.com/padelcoach/coach-api/app/shared/operation"
	"github.com/padelcoach/coach-api/app/shared/results"
	"github.com/uptrace/bun"
)

type statResult = results.OperationResult[*recorded, error]

// recorded carries what a stat write produced, including the event to
// publish once the transaction has committed.
type recorded struct {
	result *StatResult
	event  evaluationdomain.StatRecordedPayload
}

// RecordStat appends a player action to the log and, when the player is on
// a team, awards the rally point. The stat and the award commit together.
func (s *EvaluationService) RecordStat(ctx context.Context, trainerID, id uuid.UUID, in RecordStatInput) (*StatResult, error) {
	rec, err := operation.Execute(s.runner, ctx, "RecordStat", id.String(), func(ctx context.Context, db bun.IDB) (statResult, error) {
		statType, err := evaluationdomain.ParseStatType(in.StatType)
		if err != nil {
			return results.FailureResult[*recorded, error](err), nil
		}
		strokeType, err := evaluationdomain.ParseStrokeType(in.StrokeType)
		if err != nil {
			return results.FailureResult[*recorded, error](err), nil
		}

		session, err := s.repo.LockSession(ctx, db, trainerID, id)
		if err != nil {
			if errors.Is(err, evaluationdb.ErrNotFound) {
				return results.FailureResult[*recorded, error](ErrSessionNotFound), nil
			}
			return statResult{}, err
		}
		participants, err := s.repo.ListParticipants(ctx, db, session.ID)
		if err != nil {
			return statResult{}, err
		}
		var player *evaluationdb.SessionStudent
		for i := range participants {
			if participants[i].StudentID == in.StudentID {
				player = &participants[i]
				break
			}
		}
		if player == nil {
			return results.FailureResult[*recorded, error](ErrStudentNotInSession), nil
		}

		studentID := player.StudentID
		stat := &evaluationdb.Stat{
			SessionID:    session.ID,
			StudentID:    &studentID,
			StatType:     statType,
			StrokeType:   strokeType,
			PointOutcome: statType.Outcome(),
			GoldenPoint:  session.GoldenPoint,
			Student:      player.Student,
		}

		var warning string
		winner, err := evaluationdomain.PointWinner(player.Team, statType)
		if err != nil {
			if !errors.Is(err, evaluationdomain.ErrPlayerUnassigned) {
				return statResult{}, err
			}
			warning = err.Error()
			winner = evaluationdomain.NoTeam
		}
		return s.appendStat(ctx, db, session, stat, winner, warning)
	})
	if err != nil {
		return nil, err
	}
	s.publish(ctx, evaluationdomain.StatRecordedTopic, rec.event)
	return rec.result, nil
}

// ManualPoint awards a point straight to a team, with no player or stroke.
func (s *EvaluationService) ManualPoint(ctx context.Context, trainerID, id uuid.UUID, in ManualPointInput) (*StatResult, error) {
	rec, err := operation.Execute(s.runner, ctx, "ManualPoint", id.String(), func(ctx context.Context, db bun.IDB) (statResult, error) {
		team := evaluationdomain.TeamID(in.Team)
		if !team.Valid() {
			return results.FailureResult[*recorded, error](evaluationdomain.ErrInvalidTeam), nil
		}
		session, err := s.repo.LockSession(ctx, db, trainerID, id)
		if err != nil {
			if errors.Is(err, evaluationdb.ErrNotFound) {
				return results.FailureResult[*recorded, error](ErrSessionNotFound), nil
			}
			return statResult{}, err
		}
		stat := &evaluationdb.Stat{
			SessionID:    session.ID,
			StatType:     evaluationdomain.StatManualPoint,
			StrokeType:   evaluationdomain.StrokeOther,
			PointOutcome: evaluationdomain.StatManualPoint.Outcome(),
			GoldenPoint:  session.GoldenPoint,
		}
		return s.appendStat(ctx, db, session, stat, team, "")
	})
	if err != nil {
		return nil, err
	}
	s.publish(ctx, evaluationdomain.StatRecordedTopic, rec.event)
	return rec.result, nil
}

// appendStat replays the log, applies winner when it names a team and
// persists stat with the resolved award.
func (s *EvaluationService) appendStat(ctx context.Context, db bun.IDB, session *evaluationdb.GameSession, stat *evaluationdb.Stat, winner evaluationdomain.TeamID, warning string) (statResult, error) {
	prev, _, err := s.currentScore(ctx, db, session.ID, session.GoldenPoint)
	if err != nil {
		return statResult{}, err
	}

	next := prev
	gameWinner := evaluationdomain.NoTeam
	if winner != evaluationdomain.NoTeam {
		next, err = evaluationdomain.AwardPoint(prev, winner)
		if err != nil {
			if errors.Is(err, evaluationdomain.ErrInvalidTeam) {
				return results.FailureResult[*recorded, error](err), nil
			}
			return statResult{}, err
		}
		w := winner
		stat.PointWinnerTeam = &w
		if team, won := evaluationdomain.GameWinner(prev, next); won {
			gameWinner = team
		}
	}

	if err := s.repo.InsertStat(ctx, db, stat); err != nil {
		return statResult{}, err
	}

	return results.SuccessResult[*recorded, error](&recorded{
		result: &StatResult{Stat: stat, Score: next.Display(), Warning: warning},
		event: evaluationdomain.StatRecordedPayload{
			SessionID:   session.ID,
			StatID:      stat.ID,
			StatType:    stat.StatType,
			PointWinner: winner,
			GameWinner:  gameWinner,
		},
	}), nil
}

// UndoLastStat removes the most recent stat and recomputes the score from
// what remains.
func (s *EvaluationService) UndoLastStat(ctx context.Context, trainerID, id uuid.UUID) (*UndoResult, error) {
	res, err := operation.Execute(s.runner, ctx, "UndoLastStat", id.String(), func(ctx context.Context, db bun.IDB) (results.OperationResult[*UndoResult, error], error) {
		session, err := s.repo.LockSession(ctx, db, trainerID, id)
		if err != nil {
			if errors.Is(err, evaluationdb.ErrNotFound) {
				return results.FailureResult[*UndoResult, error](ErrSessionNotFound), nil
			}
			return results.OperationResult[*UndoResult, error]{}, err
		}
		last, err := s.repo.LastStat(ctx, db, session.ID)
		if err != nil {
			if errors.Is(err, evaluationdb.ErrNoStats) {
				return results.FailureResult[*UndoResult, error](ErrNothingToUndo), nil
			}
			return results.OperationResult[*UndoResult, error]{}, err
		}
		if err := s.repo.DeleteStat(ctx, db, session.ID, last.ID); err != nil {
			return results.OperationResult[*UndoResult, error]{}, err
		}
		state, _, err := s.currentScore(ctx, db, session.ID, session.GoldenPoint)
		if err != nil {
			return results.OperationResult[*UndoResult, error]{}, err
		}
		return results.SuccessResult[*UndoResult, error](&UndoResult{DeletedStatID: last.ID, Score: state.Display()}), nil
	})
	if err != nil {
		return nil, err
	}
	s.publish(ctx, evaluationdomain.StatUndoneTopic, evaluationdomain.StatUndonePayload{SessionID: id, StatID: res.DeletedStatID})
	return res, nil
}

// publish is best effort: the log change is already committed.
func (s *EvaluationService) publish(ctx context.Context, topic string, payload any) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, topic, payload); err != nil {
		s.logger.WarnContext(ctx, "Failed to publish evaluation event",
			attr.String("topic", topic),
			attr.Error(err),
		)
	}
}
