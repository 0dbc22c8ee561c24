package authhandlers

import (
	"errors"
	"net/http"
	"strings"

	authservice "github.com/padelcoach/coach-api/app/modules/auth/application"
	authdomain "github.com/padelcoach/coach-api/app/modules/auth/domain"
	"github.com/padelcoach/coach-api/app/shared/attr"
	"github.com/padelcoach/coach-api/app/shared/httpx"
)

// RequireTrainer rejects requests without a valid bearer token and stores the
// resolved trainer on the request context.
func (h *AuthHandlers) RequireTrainer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		token, ok := bearerToken(r)
		if !ok {
			httpx.WriteError(w, http.StatusUnauthorized, authservice.ErrMissingToken.Error())
			return
		}

		trainer, err := h.service.Authenticate(ctx, token)
		if err != nil {
			switch {
			case errors.Is(err, authservice.ErrExpiredToken):
				httpx.WriteError(w, http.StatusUnauthorized, authservice.ErrExpiredToken.Error())
			case errors.Is(err, authservice.ErrInvalidToken), errors.Is(err, authservice.ErrMissingToken):
				httpx.WriteError(w, http.StatusUnauthorized, authservice.ErrInvalidToken.Error())
			default:
				h.logger.ErrorContext(ctx, "Token check failed", attr.ExtractRequestID(ctx), attr.Error(err))
				httpx.WriteError(w, http.StatusInternalServerError, "authentication unavailable")
			}
			return
		}

		next.ServeHTTP(w, r.WithContext(authdomain.WithTrainer(ctx, trainer)))
	})
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
