package authdomain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Trainer is an authenticated account owning students, exercises, plans and sessions.
type Trainer struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type trainerKey struct{}

// WithTrainer stores the authenticated trainer on ctx.
func WithTrainer(ctx context.Context, t *Trainer) context.Context {
	return context.WithValue(ctx, trainerKey{}, t)
}

// TrainerFromContext returns the trainer set by the bearer middleware.
func TrainerFromContext(ctx context.Context) (*Trainer, bool) {
	t, ok := ctx.Value(trainerKey{}).(*Trainer)
	return t, ok && t != nil
}

// TrainerIDFromContext is a shorthand for handlers that only need the owner id.
func TrainerIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	t, ok := TrainerFromContext(ctx)
	if !ok {
		return uuid.Nil, false
	}
	return t.ID, true
}
