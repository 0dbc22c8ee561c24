package authservice

import (
	"context"

	authdomain "github.com/padelcoach/coach-api/app/modules/auth/domain"
)

// Service defines the authentication service interface.
type Service interface {
	// Register creates a trainer account with a bcrypt-hashed password.
	Register(ctx context.Context, req RegisterRequest) (*authdomain.Trainer, error)

	// Login checks credentials and issues a bearer token.
	Login(ctx context.Context, email, password string) (*LoginResponse, error)

	// Authenticate validates a bearer token and resolves its trainer.
	Authenticate(ctx context.Context, tokenString string) (*authdomain.Trainer, error)
}

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Name     string `json:"name" validate:"required,max=255"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token     string              `json:"token"`
	ExpiresIn int64               `json:"expires_in"`
	Trainer   *authdomain.Trainer `json:"trainer"`
}
