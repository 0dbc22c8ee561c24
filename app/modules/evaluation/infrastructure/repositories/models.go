package evaluationdb

import (
	"time"

	"github.com/google/uuid"
	evaluationdomain "github.com/padelcoach/coach-api/app/modules/evaluation/domain"
	studentdb "github.com/padelcoach/coach-api/app/modules/student/infrastructure/repositories"
	"github.com/uptrace/bun"
)

// GameSession is one evaluated game between the trainer's students.
type GameSession struct {
	bun.BaseModel `bun:"table:game_sessions,alias:gs"`
	ID            uuid.UUID        `bun:"id,pk,type:uuid" json:"id"`
	TrainerID     uuid.UUID        `bun:"trainer_id,type:uuid,notnull" json:"-"`
	Date          time.Time        `bun:"date,notnull" json:"date"`
	Notes         *string          `bun:"notes" json:"notes"`
	GoldenPoint   bool             `bun:"golden_point,notnull" json:"golden_point"`
	CreatedAt     time.Time        `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"created_at"`
	UpdatedAt     time.Time        `bun:"updated_at,nullzero,notnull,default:current_timestamp" json:"updated_at"`
	StatCount     int              `bun:"stat_count,scanonly" json:"stat_count"`
	Participants  []SessionStudent `bun:"rel:has-many,join:id=session_id" json:"participants"`
}

// SessionStudent links a student to a session. Team is NoTeam (stored as
// NULL) while the player is unassigned.
type SessionStudent struct {
	bun.BaseModel `bun:"table:game_session_students,alias:gss"`
	SessionID     uuid.UUID               `bun:"session_id,pk,type:uuid" json:"-"`
	StudentID     uuid.UUID               `bun:"student_id,pk,type:uuid" json:"student_id"`
	Position      int                     `bun:"position,notnull" json:"-"`
	Team          evaluationdomain.TeamID `bun:"team,nullzero" json:"team,omitempty"`
	Student       *studentdb.Student      `bun:"rel:belongs-to,join:student_id=id" json:"student,omitempty"`
}

// Stat is one entry of a session's action log. Seq is assigned by the
// database and orders the log; PointWinnerTeam is nil for actions that did
// not move the score.
type Stat struct {
	bun.BaseModel   `bun:"table:stats,alias:st"`
	ID              uuid.UUID                     `bun:"id,pk,type:uuid" json:"id"`
	Seq             int64                         `bun:"seq,nullzero" json:"-"`
	SessionID       uuid.UUID                     `bun:"session_id,type:uuid,notnull" json:"session_id"`
	StudentID       *uuid.UUID                    `bun:"student_id,type:uuid" json:"student_id"`
	StatType        evaluationdomain.StatType     `bun:"stat_type,notnull" json:"stat_type"`
	StrokeType      evaluationdomain.StrokeType   `bun:"stroke_type,notnull" json:"stroke_type"`
	PointOutcome    evaluationdomain.PointOutcome `bun:"point_outcome,notnull" json:"point_outcome"`
	PointWinnerTeam *evaluationdomain.TeamID      `bun:"point_winner_team" json:"point_winner_team"`
	GoldenPoint     bool                          `bun:"golden_point,notnull" json:"golden_point"`
	Timestamp       time.Time                     `bun:"timestamp,nullzero,notnull,default:current_timestamp" json:"timestamp"`
	Student         *studentdb.Student            `bun:"rel:belongs-to,join:student_id=id" json:"student,omitempty"`
}

// Award projects the stat onto what the score engine replays.
func (s Stat) Award() evaluationdomain.PointAward {
	a := evaluationdomain.PointAward{GoldenPoint: s.GoldenPoint}
	if s.PointWinnerTeam != nil {
		a.Winner = *s.PointWinnerTeam
	}
	return a
}

// Awards projects a stat log in order.
func Awards(stats []Stat) []evaluationdomain.PointAward {
	out := make([]evaluationdomain.PointAward, len(stats))
	for i, s := range stats {
		out[i] = s.Award()
	}
	return out
}

// Assignment rebuilds the team split from the participants' stored teams.
func Assignment(participants []SessionStudent) evaluationdomain.TeamAssignment {
	var a evaluationdomain.TeamAssignment
	for _, p := range participants {
		switch p.Team {
		case evaluationdomain.Team1:
			a.Team1 = append(a.Team1, p.StudentID)
		case evaluationdomain.Team2:
			a.Team2 = append(a.Team2, p.StudentID)
		}
	}
	return a
}
