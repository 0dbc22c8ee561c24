package evaluationservice

import (
	"context"
	"sync"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	evaluationdomain "github.com/padelcoach/coach-api/app/modules/evaluation/domain"
	evaluationdb "github.com/padelcoach/coach-api/app/modules/evaluation/infrastructure/repositories"
	studentdb "github.com/padelcoach/coach-api/app/modules/student/infrastructure/repositories"
	"github.com/uptrace/bun"
)

// ------------------------
// Fake Evaluation Repo
// ------------------------

// FakeEvaluationRepo keeps one session in memory. Any XxxFunc set overrides
// the in-memory behavior for that method.
type FakeEvaluationRepo struct {
	trace []string

	Session      *evaluationdb.GameSession
	Participants []evaluationdb.SessionStudent
	Stats        []evaluationdb.Stat
	nextSeq      int64

	LockSessionFunc func(ctx context.Context, db bun.IDB, trainerID, id uuid.UUID) (*evaluationdb.GameSession, error)
	ListStatsFunc   func(ctx context.Context, db bun.IDB, sessionID uuid.UUID) ([]evaluationdb.Stat, error)
	InsertStatFunc  func(ctx context.Context, db bun.IDB, stat *evaluationdb.Stat) error
}

func NewFakeEvaluationRepo(session *evaluationdb.GameSession, participants ...evaluationdb.SessionStudent) *FakeEvaluationRepo {
	return &FakeEvaluationRepo{trace: []string{}, Session: session, Participants: participants}
}

func (f *FakeEvaluationRepo) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeEvaluationRepo) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

func (f *FakeEvaluationRepo) owns(trainerID, id uuid.UUID) bool {
	return f.Session != nil && f.Session.ID == id && f.Session.TrainerID == trainerID
}

func (f *FakeEvaluationRepo) ListSessions(ctx context.Context, db bun.IDB, trainerID uuid.UUID) ([]evaluationdb.GameSession, error) {
	f.record("ListSessions")
	if f.Session == nil || f.Session.TrainerID != trainerID {
		return nil, nil
	}
	return []evaluationdb.GameSession{*f.Session}, nil
}

func (f *FakeEvaluationRepo) GetSession(ctx context.Context, db bun.IDB, trainerID, id uuid.UUID) (*evaluationdb.GameSession, error) {
	f.record("GetSession")
	if !f.owns(trainerID, id) {
		return nil, evaluationdb.ErrNotFound
	}
	s := *f.Session
	s.Participants = append([]evaluationdb.SessionStudent(nil), f.Participants...)
	return &s, nil
}

func (f *FakeEvaluationRepo) LockSession(ctx context.Context, db bun.IDB, trainerID, id uuid.UUID) (*evaluationdb.GameSession, error) {
	f.record("LockSession")
	if f.LockSessionFunc != nil {
		return f.LockSessionFunc(ctx, db, trainerID, id)
	}
	if !f.owns(trainerID, id) {
		return nil, evaluationdb.ErrNotFound
	}
	s := *f.Session
	return &s, nil
}

func (f *FakeEvaluationRepo) CreateSession(ctx context.Context, db bun.IDB, session *evaluationdb.GameSession) error {
	f.record("CreateSession")
	session.ID = uuid.New()
	for i := range session.Participants {
		session.Participants[i].SessionID = session.ID
		session.Participants[i].Position = i
	}
	f.Participants = session.Participants
	stored := *session
	stored.Participants = nil
	f.Session = &stored
	return nil
}

func (f *FakeEvaluationRepo) DeleteSession(ctx context.Context, db bun.IDB, trainerID, id uuid.UUID) error {
	f.record("DeleteSession")
	if !f.owns(trainerID, id) {
		return evaluationdb.ErrNotFound
	}
	f.Session, f.Participants, f.Stats = nil, nil, nil
	return nil
}

func (f *FakeEvaluationRepo) UpdateGoldenPoint(ctx context.Context, db bun.IDB, trainerID, id uuid.UUID, enabled bool) error {
	f.record("UpdateGoldenPoint")
	if !f.owns(trainerID, id) {
		return evaluationdb.ErrNotFound
	}
	f.Session.GoldenPoint = enabled
	return nil
}

func (f *FakeEvaluationRepo) ListParticipants(ctx context.Context, db bun.IDB, sessionID uuid.UUID) ([]evaluationdb.SessionStudent, error) {
	f.record("ListParticipants")
	return append([]evaluationdb.SessionStudent(nil), f.Participants...), nil
}

func (f *FakeEvaluationRepo) SetTeams(ctx context.Context, db bun.IDB, sessionID uuid.UUID, teams evaluationdomain.TeamAssignment) error {
	f.record("SetTeams")
	for i := range f.Participants {
		f.Participants[i].Team = teams.TeamOf(f.Participants[i].StudentID)
	}
	return nil
}

func (f *FakeEvaluationRepo) ListStats(ctx context.Context, db bun.IDB, sessionID uuid.UUID) ([]evaluationdb.Stat, error) {
	f.record("ListStats")
	if f.ListStatsFunc != nil {
		return f.ListStatsFunc(ctx, db, sessionID)
	}
	return append([]evaluationdb.Stat(nil), f.Stats...), nil
}

func (f *FakeEvaluationRepo) InsertStat(ctx context.Context, db bun.IDB, stat *evaluationdb.Stat) error {
	f.record("InsertStat")
	if f.InsertStatFunc != nil {
		return f.InsertStatFunc(ctx, db, stat)
	}
	if stat.ID == uuid.Nil {
		stat.ID = uuid.New()
	}
	f.nextSeq++
	stat.Seq = f.nextSeq
	f.Stats = append(f.Stats, *stat)
	return nil
}

func (f *FakeEvaluationRepo) LastStat(ctx context.Context, db bun.IDB, sessionID uuid.UUID) (*evaluationdb.Stat, error) {
	f.record("LastStat")
	if len(f.Stats) == 0 {
		return nil, evaluationdb.ErrNoStats
	}
	last := f.Stats[len(f.Stats)-1]
	return &last, nil
}

func (f *FakeEvaluationRepo) DeleteStat(ctx context.Context, db bun.IDB, sessionID, id uuid.UUID) error {
	f.record("DeleteStat")
	for i, s := range f.Stats {
		if s.ID == id {
			f.Stats = append(f.Stats[:i], f.Stats[i+1:]...)
			return nil
		}
	}
	return evaluationdb.ErrNoStats
}

// ------------------------
// Fake Student Repo
// ------------------------

// FakeStudentRepo answers GetMany from a fixed set of owned students.
type FakeStudentRepo struct {
	studentdb.Repository
	Owned map[uuid.UUID]string
}

func (f *FakeStudentRepo) GetMany(ctx context.Context, db bun.IDB, trainerID uuid.UUID, ids []uuid.UUID) ([]studentdb.Student, error) {
	var out []studentdb.Student
	for _, id := range ids {
		if name, ok := f.Owned[id]; ok {
			out = append(out, studentdb.Student{ID: id, TrainerID: trainerID, Name: name})
		}
	}
	return out, nil
}

// ------------------------
// Fake Event Bus
// ------------------------

type published struct {
	Topic   string
	Payload any
}

type FakeEventBus struct {
	mu        sync.Mutex
	Published []published
	PublishFn func(ctx context.Context, topic string, payload any) error
}

func (f *FakeEventBus) Publish(ctx context.Context, topic string, payload any) error {
	f.mu.Lock()
	f.Published = append(f.Published, published{Topic: topic, Payload: payload})
	f.mu.Unlock()
	if f.PublishFn != nil {
		return f.PublishFn(ctx, topic, payload)
	}
	return nil
}

func (f *FakeEventBus) Subscribe(handlerName, topic string, handler func(ctx context.Context, msg *message.Message) error) {
}

func (f *FakeEventBus) Run(ctx context.Context) error { return nil }

func (f *FakeEventBus) Running() chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}

func (f *FakeEventBus) Close() error { return nil }
