package authservice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	authdomain "github.com/padelcoach/coach-api/app/modules/auth/domain"
	authjwt "github.com/padelcoach/coach-api/app/modules/auth/infrastructure/jwt"
	authdb "github.com/padelcoach/coach-api/app/modules/auth/infrastructure/repositories"
	"github.com/padelcoach/coach-api/app/shared/attr"
	"github.com/padelcoach/coach-api/app/shared/metrics"
	"github.com/padelcoach/coach-api/app/shared/operation"
	"github.com/padelcoach/coach-api/app/shared/results"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/crypto/bcrypt"
)

// Config holds the configuration for the auth service.
type Config struct {
	TokenTTL   time.Duration
	BcryptCost int
}

const DefaultTokenTTL = time.Hour

// service implements the Service interface.
type service struct {
	repo        authdb.Repository
	jwtProvider authjwt.Provider
	config      Config
	logger      *slog.Logger
	runner      *operation.Runner
}

// NewService creates a new auth service.
func NewService(
	repo authdb.Repository,
	jwtProvider authjwt.Provider,
	config Config,
	logger *slog.Logger,
	m metrics.ServiceMetrics,
	tracer trace.Tracer,
	db *bun.DB,
) Service {
	if config.TokenTTL <= 0 {
		config.TokenTTL = DefaultTokenTTL
	}
	if config.BcryptCost == 0 {
		config.BcryptCost = bcrypt.DefaultCost
	}
	runner := operation.NewRunner("AuthService", logger, m, tracer, db)
	return &service{
		repo:        repo,
		jwtProvider: jwtProvider,
		config:      config,
		logger:      runner.Logger,
		runner:      runner,
	}
}

// Register creates a new trainer account.
func (s *service) Register(ctx context.Context, req RegisterRequest) (*authdomain.Trainer, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.config.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	return operation.Execute(s.runner, ctx, "Register", req.Email, func(ctx context.Context, db bun.IDB) (results.OperationResult[*authdomain.Trainer, error], error) {
		row := &authdb.Trainer{
			Email:        req.Email,
			Name:         req.Name,
			PasswordHash: string(hash),
		}
		if err := s.repo.Create(ctx, db, row); err != nil {
			if errors.Is(err, authdb.ErrEmailTaken) {
				return results.FailureResult[*authdomain.Trainer, error](ErrEmailTaken), nil
			}
			return results.OperationResult[*authdomain.Trainer, error]{}, err
		}
		return results.SuccessResult[*authdomain.Trainer, error](toDomain(row)), nil
	})
}

// Login verifies credentials. Unknown emails and wrong passwords are
// indistinguishable to the caller.
func (s *service) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	return operation.Execute(s.runner, ctx, "Login", email, func(ctx context.Context, db bun.IDB) (results.OperationResult[*LoginResponse, error], error) {
		row, err := s.repo.GetByEmail(ctx, db, email)
		if err != nil {
			if errors.Is(err, authdb.ErrNotFound) {
				return results.FailureResult[*LoginResponse, error](ErrInvalidCredentials), nil
			}
			return results.OperationResult[*LoginResponse, error]{}, err
		}

		if err := bcrypt.CompareHashAndPassword([]byte(row.PasswordHash), []byte(password)); err != nil {
			return results.FailureResult[*LoginResponse, error](ErrInvalidCredentials), nil
		}

		token, err := s.jwtProvider.GenerateToken(&authdomain.Claims{TrainerID: row.ID, Email: row.Email}, s.config.TokenTTL)
		if err != nil {
			return results.OperationResult[*LoginResponse, error]{}, fmt.Errorf("%w: %w", ErrGenerateToken, err)
		}

		return results.SuccessResult[*LoginResponse, error](&LoginResponse{
			Token:     token,
			ExpiresIn: int64(s.config.TokenTTL.Seconds()),
			Trainer:   toDomain(row),
		}), nil
	})
}

// Authenticate validates the token signature and expiry, then confirms the
// trainer still exists.
func (s *service) Authenticate(ctx context.Context, tokenString string) (*authdomain.Trainer, error) {
	if tokenString == "" {
		return nil, ErrMissingToken
	}

	claims, err := s.jwtProvider.ValidateToken(tokenString)
	if err != nil {
		s.logger.DebugContext(ctx, "Token validation failed", attr.Error(err))
		if errors.Is(err, authjwt.ErrExpiredToken) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	row, err := s.repo.GetByID(ctx, nil, claims.TrainerID)
	if err != nil {
		if errors.Is(err, authdb.ErrNotFound) {
			s.logger.WarnContext(ctx, "Token for unknown trainer", attr.UUID("trainer_id", claims.TrainerID))
			return nil, ErrInvalidToken
		}
		return nil, fmt.Errorf("failed to load trainer: %w", err)
	}
	return toDomain(row), nil
}

func toDomain(row *authdb.Trainer) *authdomain.Trainer {
	return &authdomain.Trainer{
		ID:        row.ID,
		Email:     row.Email,
		Name:      row.Name,
		CreatedAt: row.CreatedAt,
	}
}
