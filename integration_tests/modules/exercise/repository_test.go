//go:build integration

package exerciseintegrationtests

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	exercisedb "github.com/padelcoach/coach-api/app/modules/exercise/infrastructure/repositories"
	plandb "github.com/padelcoach/coach-api/app/modules/plan/infrastructure/repositories"
	"github.com/padelcoach/coach-api/integration_tests/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	code := m.Run()
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	testutils.Shutdown(ctx)
	os.Exit(code)
}

func TestExerciseRepository(t *testing.T) {
	env := testutils.GetTestEnv(t)
	ctx := context.Background()
	require.NoError(t, env.Reset(ctx))

	gen := testutils.NewTestDataGenerator(42)
	trainer := gen.Trainer(t, env.DB)
	other := gen.Trainer(t, env.DB)
	repo := exercisedb.NewRepository(env.DB)

	exercise := gen.Exercise(t, env.DB, trainer)
	exercise.TacticalBoardData = []byte(`{"players":[{"x":0.25,"y":0.5}]}`)
	require.NoError(t, repo.Update(ctx, env.DB, exercise))

	t.Run("scoped to trainer", func(t *testing.T) {
		got, err := repo.Get(ctx, env.DB, trainer.ID, exercise.ID)
		require.NoError(t, err)
		assert.Equal(t, exercise.Name, got.Name)
		assert.JSONEq(t, `{"players":[{"x":0.25,"y":0.5}]}`, string(got.TacticalBoardData))

		_, err = repo.Get(ctx, env.DB, other.ID, exercise.ID)
		assert.ErrorIs(t, err, exercisedb.ErrNotFound)

		many, err := repo.GetMany(ctx, env.DB, other.ID, []uuid.UUID{exercise.ID})
		require.NoError(t, err)
		assert.Empty(t, many)
	})

	t.Run("in use by a plan", func(t *testing.T) {
		plans := plandb.NewRepository(env.DB)
		plan := &plandb.PracticePlan{
			TrainerID: trainer.ID,
			Title:     "Tuesday group",
			Date:      time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
			Items:     []plandb.PlanExercise{{ExerciseID: exercise.ID, Order: 1}},
		}
		require.NoError(t, plans.Create(ctx, env.DB, plan))

		assert.ErrorIs(t, repo.Delete(ctx, env.DB, trainer.ID, exercise.ID), exercisedb.ErrInUse)

		require.NoError(t, plans.Delete(ctx, env.DB, trainer.ID, plan.ID))
		require.NoError(t, repo.Delete(ctx, env.DB, trainer.ID, exercise.ID))
		assert.ErrorIs(t, repo.Delete(ctx, env.DB, trainer.ID, exercise.ID), exercisedb.ErrNotFound)
	})
}
