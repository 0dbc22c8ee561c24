package authjwt

import (
	"errors"
	"os"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	authdomain "github.com/padelcoach/coach-api/app/modules/auth/domain"
)

func TestProvider_GenerateAndValidateToken(t *testing.T) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "test-secret-at-least-32-chars-long!!"
	}
	p := NewProvider(secret)

	claims := &authdomain.Claims{
		TrainerID: uuid.New(),
		Email:     "coach@example.com",
	}

	tests := []struct {
		name        string
		token       func(t *testing.T) string
		provider    Provider
		expectedErr error
		verify      func(t *testing.T, validated *authdomain.Claims)
	}{
		{
			name: "success",
			token: func(t *testing.T) string {
				return mustGenerate(t, p, claims, time.Hour)
			},
			verify: func(t *testing.T, validated *authdomain.Claims) {
				if validated.TrainerID != claims.TrainerID {
					t.Errorf("expected trainer %v, got %v", claims.TrainerID, validated.TrainerID)
				}
				if validated.Email != claims.Email {
					t.Errorf("expected email %s, got %s", claims.Email, validated.Email)
				}
				if validated.ExpiresAt.Before(time.Now()) {
					t.Errorf("expected expiry in the future, got %v", validated.ExpiresAt)
				}
			},
		},
		{
			name: "expired token",
			token: func(t *testing.T) string {
				return mustGenerate(t, p, claims, -time.Hour)
			},
			expectedErr: ErrExpiredToken,
		},
		{
			name: "invalid signature",
			token: func(t *testing.T) string {
				return mustGenerate(t, p, claims, time.Hour)
			},
			provider:    NewProvider("wrong-secret"),
			expectedErr: ErrInvalidSignature,
		},
		{
			name:        "malformed token",
			token:       func(t *testing.T) string { return "not.a.jwt" },
			expectedErr: ErrInvalidToken,
		},
		{
			name: "subject is not a uuid",
			token: func(t *testing.T) string {
				tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
					Issuer:    issuer,
					Subject:   "trainer-1",
					ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
				})
				s, err := tok.SignedString([]byte(secret))
				if err != nil {
					t.Fatalf("sign: %v", err)
				}
				return s
			},
			expectedErr: ErrInvalidToken,
		},
		{
			name: "foreign issuer",
			token: func(t *testing.T) string {
				tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
					Issuer:    "someone-else",
					Subject:   uuid.NewString(),
					ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
				})
				s, err := tok.SignedString([]byte(secret))
				if err != nil {
					t.Fatalf("sign: %v", err)
				}
				return s
			},
			expectedErr: ErrInvalidToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token := tt.token(t)

			validateTarget := p
			if tt.provider != nil {
				validateTarget = tt.provider
			}

			validatedClaims, err := validateTarget.ValidateToken(token)

			if tt.expectedErr != nil {
				if !errors.Is(err, tt.expectedErr) {
					t.Errorf("expected error %v, got %v", tt.expectedErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if tt.verify != nil {
				tt.verify(t, validatedClaims)
			}
		})
	}
}

func mustGenerate(t *testing.T, p Provider, c *authdomain.Claims, ttl time.Duration) string {
	t.Helper()
	token, err := p.GenerateToken(c, ttl)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	return token
}
