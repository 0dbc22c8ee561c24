package authdomain

import (
	"time"

	"github.com/google/uuid"
)

// Claims represents the domain model for authentication claims.
type Claims struct {
	TrainerID uuid.UUID
	Email     string
	ExpiresAt time.Time
	IssuedAt  time.Time
}

// IsExpired checks if the claims have expired.
func (c *Claims) IsExpired() bool {
	return time.Now().After(c.ExpiresAt)
}
