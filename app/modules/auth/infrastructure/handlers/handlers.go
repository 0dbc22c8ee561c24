package authhandlers

import (
	"errors"
	"log/slog"
	"net/http"

	authservice "github.com/padelcoach/coach-api/app/modules/auth/application"
	authdomain "github.com/padelcoach/coach-api/app/modules/auth/domain"
	"github.com/padelcoach/coach-api/app/shared/attr"
	"github.com/padelcoach/coach-api/app/shared/httpx"
	"go.opentelemetry.io/otel/trace"
)

// AuthHandlers implements the Handlers interface.
type AuthHandlers struct {
	service authservice.Service
	logger  *slog.Logger
	tracer  trace.Tracer
}

// NewAuthHandlers creates a new AuthHandlers instance.
func NewAuthHandlers(
	service authservice.Service,
	logger *slog.Logger,
	tracer trace.Tracer,
) Handlers {
	return &AuthHandlers{
		service: service,
		logger:  logger,
		tracer:  tracer,
	}
}

func (h *AuthHandlers) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req authservice.RegisterRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.WriteValidationError(w, err)
		return
	}

	trainer, err := h.service.Register(ctx, req)
	if err != nil {
		if errors.Is(err, authservice.ErrEmailTaken) {
			httpx.WriteError(w, http.StatusConflict, authservice.ErrEmailTaken.Error())
			return
		}
		h.logger.ErrorContext(ctx, "Registration failed", attr.ExtractRequestID(ctx), attr.Error(err))
		httpx.WriteError(w, http.StatusInternalServerError, "registration failed")
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, trainer)
}

func (h *AuthHandlers) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req authservice.LoginRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.WriteValidationError(w, err)
		return
	}

	resp, err := h.service.Login(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, authservice.ErrInvalidCredentials) {
			httpx.WriteError(w, http.StatusUnauthorized, authservice.ErrInvalidCredentials.Error())
			return
		}
		h.logger.ErrorContext(ctx, "Login failed", attr.ExtractRequestID(ctx), attr.Error(err))
		httpx.WriteError(w, http.StatusInternalServerError, "authentication failed")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, resp)
}

func (h *AuthHandlers) HandleMe(w http.ResponseWriter, r *http.Request) {
	trainer, ok := authdomain.TrainerFromContext(r.Context())
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, authservice.ErrMissingToken.Error())
		return
	}
	httpx.WriteJSON(w, http.StatusOK, trainer)
}
