package authservice

import (
	"context"
	"time"

	"github.com/google/uuid"
	authdomain "github.com/padelcoach/coach-api/app/modules/auth/domain"
	authdb "github.com/padelcoach/coach-api/app/modules/auth/infrastructure/repositories"
	"github.com/uptrace/bun"
)

// ------------------------
// Fake Trainer Repo
// ------------------------

type FakeTrainerRepo struct {
	trace []string

	CreateFunc     func(ctx context.Context, db bun.IDB, trainer *authdb.Trainer) error
	GetByEmailFunc func(ctx context.Context, db bun.IDB, email string) (*authdb.Trainer, error)
	GetByIDFunc    func(ctx context.Context, db bun.IDB, id uuid.UUID) (*authdb.Trainer, error)
}

func NewFakeTrainerRepo() *FakeTrainerRepo {
	return &FakeTrainerRepo{trace: []string{}}
}

func (f *FakeTrainerRepo) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeTrainerRepo) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

func (f *FakeTrainerRepo) Create(ctx context.Context, db bun.IDB, trainer *authdb.Trainer) error {
	f.record("Create")
	if f.CreateFunc != nil {
		return f.CreateFunc(ctx, db, trainer)
	}
	trainer.ID = uuid.New()
	return nil
}

func (f *FakeTrainerRepo) GetByEmail(ctx context.Context, db bun.IDB, email string) (*authdb.Trainer, error) {
	f.record("GetByEmail")
	if f.GetByEmailFunc != nil {
		return f.GetByEmailFunc(ctx, db, email)
	}
	return nil, authdb.ErrNotFound
}

func (f *FakeTrainerRepo) GetByID(ctx context.Context, db bun.IDB, id uuid.UUID) (*authdb.Trainer, error) {
	f.record("GetByID")
	if f.GetByIDFunc != nil {
		return f.GetByIDFunc(ctx, db, id)
	}
	return nil, authdb.ErrNotFound
}

// ------------------------
// Fake JWT Provider
// ------------------------

type FakeJWTProvider struct {
	GenerateTokenFunc func(claims *authdomain.Claims, ttl time.Duration) (string, error)
	ValidateTokenFunc func(tokenString string) (*authdomain.Claims, error)
}

func (f *FakeJWTProvider) GenerateToken(claims *authdomain.Claims, ttl time.Duration) (string, error) {
	if f.GenerateTokenFunc != nil {
		return f.GenerateTokenFunc(claims, ttl)
	}
	return "fake-token", nil
}

func (f *FakeJWTProvider) ValidateToken(tokenString string) (*authdomain.Claims, error) {
	if f.ValidateTokenFunc != nil {
		return f.ValidateTokenFunc(tokenString)
	}
	return &authdomain.Claims{}, nil
}
