package evaluationdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	evaluationdomain "github.com/padelcoach/coach-api/app/modules/evaluation/domain"
	"github.com/uptrace/bun"
)

var (
	// ErrNotFound is returned when a session does not exist or belongs to another trainer.
	ErrNotFound = errors.New("game session not found")
	// ErrNoStats is returned when a session's stat log is empty.
	ErrNoStats = errors.New("no stats recorded")
)

// Impl implements the Repository interface using Bun ORM.
type Impl struct {
	db bun.IDB
}

// NewRepository creates a new evaluation repository.
func NewRepository(db bun.IDB) Repository {
	return &Impl{db: db}
}

func (r *Impl) resolveDB(db bun.IDB) bun.IDB {
	if db == nil {
		return r.db
	}
	return db
}

func orderedParticipants(q *bun.SelectQuery) *bun.SelectQuery {
	return q.OrderExpr("gss.position ASC")
}

func (r *Impl) ListSessions(ctx context.Context, db bun.IDB, trainerID uuid.UUID) ([]GameSession, error) {
	db = r.resolveDB(db)
	var sessions []GameSession
	err := db.NewSelect().
		Model(&sessions).
		ColumnExpr("gs.*").
		ColumnExpr("(SELECT COUNT(*) FROM stats AS st WHERE st.session_id = gs.id) AS stat_count").
		Relation("Participants", orderedParticipants).
		Relation("Participants.Student").
		Where("gs.trainer_id = ?", trainerID).
		OrderExpr("gs.date DESC, gs.created_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list game sessions: %w", err)
	}
	return sessions, nil
}

func (r *Impl) GetSession(ctx context.Context, db bun.IDB, trainerID, id uuid.UUID) (*GameSession, error) {
	db = r.resolveDB(db)
	session := new(GameSession)
	err := db.NewSelect().
		Model(session).
		Relation("Participants", orderedParticipants).
		Relation("Participants.Student").
		Where("gs.id = ?", id).
		Where("gs.trainer_id = ?", trainerID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get game session: %w", err)
	}
	return session, nil
}

func (r *Impl) LockSession(ctx context.Context, db bun.IDB, trainerID, id uuid.UUID) (*GameSession, error) {
	db = r.resolveDB(db)
	session := new(GameSession)
	err := db.NewSelect().
		Model(session).
		Where("gs.id = ?", id).
		Where("gs.trainer_id = ?", trainerID).
		For("UPDATE").
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock game session: %w", err)
	}
	return session, nil
}

func (r *Impl) CreateSession(ctx context.Context, db bun.IDB, session *GameSession) error {
	db = r.resolveDB(db)
	if session.ID == uuid.Nil {
		session.ID = uuid.New()
	}
	now := time.Now().UTC()
	session.CreatedAt, session.UpdatedAt = now, now
	if _, err := db.NewInsert().Model(session).Exec(ctx); err != nil {
		return fmt.Errorf("failed to create game session: %w", err)
	}
	if len(session.Participants) == 0 {
		return nil
	}
	for i := range session.Participants {
		session.Participants[i].SessionID = session.ID
		session.Participants[i].Position = i
	}
	if _, err := db.NewInsert().Model(&session.Participants).Exec(ctx); err != nil {
		return fmt.Errorf("failed to add session participants: %w", err)
	}
	return nil
}

func (r *Impl) DeleteSession(ctx context.Context, db bun.IDB, trainerID, id uuid.UUID) error {
	db = r.resolveDB(db)
	result, err := db.NewDelete().
		Model((*GameSession)(nil)).
		Where("id = ?", id).
		Where("trainer_id = ?", trainerID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete game session: %w", err)
	}
	return checkAffected(result, ErrNotFound)
}

func (r *Impl) UpdateGoldenPoint(ctx context.Context, db bun.IDB, trainerID, id uuid.UUID, enabled bool) error {
	db = r.resolveDB(db)
	result, err := db.NewUpdate().
		Model((*GameSession)(nil)).
		Set("golden_point = ?", enabled).
		Set("updated_at = ?", time.Now().UTC()).
		Where("id = ?", id).
		Where("trainer_id = ?", trainerID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update golden point: %w", err)
	}
	return checkAffected(result, ErrNotFound)
}

func (r *Impl) ListParticipants(ctx context.Context, db bun.IDB, sessionID uuid.UUID) ([]SessionStudent, error) {
	db = r.resolveDB(db)
	var participants []SessionStudent
	err := db.NewSelect().
		Model(&participants).
		Relation("Student").
		Where("gss.session_id = ?", sessionID).
		OrderExpr("gss.position ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list session participants: %w", err)
	}
	return participants, nil
}

func (r *Impl) SetTeams(ctx context.Context, db bun.IDB, sessionID uuid.UUID, teams evaluationdomain.TeamAssignment) error {
	db = r.resolveDB(db)
	if _, err := db.NewUpdate().
		Model((*SessionStudent)(nil)).
		Set("team = NULL").
		Where("session_id = ?", sessionID).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to clear teams: %w", err)
	}
	for team, ids := range map[evaluationdomain.TeamID][]uuid.UUID{
		evaluationdomain.Team1: teams.Team1,
		evaluationdomain.Team2: teams.Team2,
	} {
		if len(ids) == 0 {
			continue
		}
		if _, err := db.NewUpdate().
			Model((*SessionStudent)(nil)).
			Set("team = ?", int(team)).
			Where("session_id = ?", sessionID).
			Where("student_id IN (?)", bun.In(ids)).
			Exec(ctx); err != nil {
			return fmt.Errorf("failed to assign team %d: %w", team, err)
		}
	}
	return nil
}

func (r *Impl) ListStats(ctx context.Context, db bun.IDB, sessionID uuid.UUID) ([]Stat, error) {
	db = r.resolveDB(db)
	var stats []Stat
	err := db.NewSelect().
		Model(&stats).
		Relation("Student").
		Where("st.session_id = ?", sessionID).
		OrderExpr("st.seq ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list stats: %w", err)
	}
	return stats, nil
}

func (r *Impl) InsertStat(ctx context.Context, db bun.IDB, stat *Stat) error {
	db = r.resolveDB(db)
	if stat.ID == uuid.Nil {
		stat.ID = uuid.New()
	}
	if _, err := db.NewInsert().
		Model(stat).
		Returning("?, ?", bun.Ident("seq"), bun.Ident("timestamp")).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to insert stat: %w", err)
	}
	return nil
}

func (r *Impl) LastStat(ctx context.Context, db bun.IDB, sessionID uuid.UUID) (*Stat, error) {
	db = r.resolveDB(db)
	stat := new(Stat)
	err := db.NewSelect().
		Model(stat).
		Where("st.session_id = ?", sessionID).
		OrderExpr("st.seq DESC").
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoStats
		}
		return nil, fmt.Errorf("failed to get last stat: %w", err)
	}
	return stat, nil
}

func (r *Impl) DeleteStat(ctx context.Context, db bun.IDB, sessionID, id uuid.UUID) error {
	db = r.resolveDB(db)
	result, err := db.NewDelete().
		Model((*Stat)(nil)).
		Where("id = ?", id).
		Where("session_id = ?", sessionID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete stat: %w", err)
	}
	return checkAffected(result, ErrNoStats)
}

func checkAffected(result sql.Result, notFound error) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return notFound
	}
	return nil
}
