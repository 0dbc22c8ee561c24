package testutils

import (
	"context"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	authdb "github.com/padelcoach/coach-api/app/modules/auth/infrastructure/repositories"
	exercisedomain "github.com/padelcoach/coach-api/app/modules/exercise/domain"
	exercisedb "github.com/padelcoach/coach-api/app/modules/exercise/infrastructure/repositories"
	studentdb "github.com/padelcoach/coach-api/app/modules/student/infrastructure/repositories"
	"github.com/uptrace/bun"
)

// TestDataGenerator creates persisted fixtures with fake but stable data.
type TestDataGenerator struct {
	faker *gofakeit.Faker
	seed  int64
}

// NewTestDataGenerator creates a generator. Pass a seed for reproducible data.
func NewTestDataGenerator(seed ...int64) *TestDataGenerator {
	s := time.Now().UnixNano()
	if len(seed) > 0 {
		s = seed[0]
	}
	return &TestDataGenerator{faker: gofakeit.New(uint64(s)), seed: s}
}

func (g *TestDataGenerator) Seed() int64 { return g.seed }

func (g *TestDataGenerator) Trainer(t *testing.T, db bun.IDB) *authdb.Trainer {
	t.Helper()
	trainer := &authdb.Trainer{
		Email:        g.faker.Email(),
		Name:         g.faker.Name(),
		PasswordHash: "$2a$10$" + g.faker.LetterN(53),
	}
	if err := authdb.NewRepository(db).Create(context.Background(), db, trainer); err != nil {
		t.Fatalf("failed to create trainer: %v", err)
	}
	return trainer
}

func (g *TestDataGenerator) Students(t *testing.T, db bun.IDB, trainer *authdb.Trainer, count int) []studentdb.Student {
	t.Helper()
	repo := studentdb.NewRepository(db)
	out := make([]studentdb.Student, 0, count)
	for i := 0; i < count; i++ {
		level := g.faker.RandomString([]string{"iniciante", "intermediario", "avancado"})
		s := studentdb.Student{TrainerID: trainer.ID, Name: g.faker.Name(), SkillLevel: &level}
		if err := repo.Create(context.Background(), db, &s); err != nil {
			t.Fatalf("failed to create student: %v", err)
		}
		out = append(out, s)
	}
	return out
}

func (g *TestDataGenerator) Exercise(t *testing.T, db bun.IDB, trainer *authdb.Trainer) *exercisedb.Exercise {
	t.Helper()
	minutes := g.faker.Number(5, 30)
	e := &exercisedb.Exercise{
		TrainerID:       trainer.ID,
		Name:            g.faker.HipsterWord() + " drill",
		Type:            exercisedomain.Types[g.faker.Number(0, len(exercisedomain.Types)-1)],
		DurationMinutes: &minutes,
	}
	if err := exercisedb.NewRepository(db).Create(context.Background(), db, e); err != nil {
		t.Fatalf("failed to create exercise: %v", err)
	}
	return e
}
