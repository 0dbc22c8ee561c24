package exercisehandlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	authdomain "github.com/padelcoach/coach-api/app/modules/auth/domain"
	exerciseservice "github.com/padelcoach/coach-api/app/modules/exercise/application"
	"github.com/padelcoach/coach-api/app/shared/attr"
	"github.com/padelcoach/coach-api/app/shared/httpx"
)

// ExerciseHandlers implements the Handlers interface.
type ExerciseHandlers struct {
	service exerciseservice.Service
	logger  *slog.Logger
}

// NewExerciseHandlers creates a new ExerciseHandlers instance.
func NewExerciseHandlers(service exerciseservice.Service, logger *slog.Logger) Handlers {
	return &ExerciseHandlers{service: service, logger: logger}
}

func (h *ExerciseHandlers) HandleList(w http.ResponseWriter, r *http.Request) {
	trainerID, ok := authdomain.TrainerIDFromContext(r.Context())
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	exercises, err := h.service.ListExercises(r.Context(), trainerID)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, exercises)
}

func (h *ExerciseHandlers) HandleGet(w http.ResponseWriter, r *http.Request) {
	trainerID, id, ok := h.scope(w, r)
	if !ok {
		return
	}
	exercise, err := h.service.GetExercise(r.Context(), trainerID, id)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, exercise)
}

func (h *ExerciseHandlers) HandleCreate(w http.ResponseWriter, r *http.Request) {
	trainerID, ok := authdomain.TrainerIDFromContext(r.Context())
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	var in exerciseservice.ExerciseInput
	if err := httpx.Decode(r, &in); err != nil {
		httpx.WriteValidationError(w, err)
		return
	}
	exercise, err := h.service.CreateExercise(r.Context(), trainerID, in)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, exercise)
}

func (h *ExerciseHandlers) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	trainerID, id, ok := h.scope(w, r)
	if !ok {
		return
	}
	var in exerciseservice.ExerciseInput
	if err := httpx.Decode(r, &in); err != nil {
		httpx.WriteValidationError(w, err)
		return
	}
	exercise, err := h.service.UpdateExercise(r.Context(), trainerID, id, in)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, exercise)
}

func (h *ExerciseHandlers) HandleDelete(w http.ResponseWriter, r *http.Request) {
	trainerID, id, ok := h.scope(w, r)
	if !ok {
		return
	}
	if err := h.service.DeleteExercise(r.Context(), trainerID, id); err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, httpx.MessageResponse{Message: "exercise deleted"})
}

func (h *ExerciseHandlers) scope(w http.ResponseWriter, r *http.Request) (uuid.UUID, uuid.UUID, bool) {
	trainerID, ok := authdomain.TrainerIDFromContext(r.Context())
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return uuid.Nil, uuid.Nil, false
	}
	id, err := httpx.URLParamUUID(r, "id")
	if err != nil {
		httpx.WriteError(w, http.StatusNotFound, exerciseservice.ErrExerciseNotFound.Error())
		return uuid.Nil, uuid.Nil, false
	}
	return trainerID, id, true
}

func (h *ExerciseHandlers) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *httpx.ValidationError
	switch {
	case errors.As(err, &verr):
		httpx.WriteValidationError(w, err)
	case errors.Is(err, exerciseservice.ErrExerciseNotFound):
		httpx.WriteError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, exerciseservice.ErrExerciseInUse):
		httpx.WriteError(w, http.StatusConflict, err.Error())
	default:
		h.logger.ErrorContext(r.Context(), "Exercise request failed", attr.ExtractRequestID(r.Context()), attr.Error(err))
		httpx.WriteError(w, http.StatusInternalServerError, "internal server error")
	}
}
