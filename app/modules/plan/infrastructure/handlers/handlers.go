package planhandlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	authdomain "github.com/padelcoach/coach-api/app/modules/auth/domain"
	planservice "github.com/padelcoach/coach-api/app/modules/plan/application"
	"github.com/padelcoach/coach-api/app/shared/attr"
	"github.com/padelcoach/coach-api/app/shared/httpx"
)

// PlanHandlers implements the Handlers interface.
type PlanHandlers struct {
	service planservice.Service
	logger  *slog.Logger
}

// NewPlanHandlers creates a new PlanHandlers instance.
func NewPlanHandlers(service planservice.Service, logger *slog.Logger) Handlers {
	return &PlanHandlers{service: service, logger: logger}
}

func (h *PlanHandlers) HandleList(w http.ResponseWriter, r *http.Request) {
	trainerID, ok := authdomain.TrainerIDFromContext(r.Context())
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	plans, err := h.service.ListPlans(r.Context(), trainerID)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, plans)
}

func (h *PlanHandlers) HandleGet(w http.ResponseWriter, r *http.Request) {
	trainerID, id, ok := h.scope(w, r)
	if !ok {
		return
	}
	plan, err := h.service.GetPlan(r.Context(), trainerID, id)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, plan)
}

func (h *PlanHandlers) HandleCreate(w http.ResponseWriter, r *http.Request) {
	trainerID, ok := authdomain.TrainerIDFromContext(r.Context())
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	var in planservice.CreatePlanInput
	if err := httpx.Decode(r, &in); err != nil {
		httpx.WriteValidationError(w, err)
		return
	}
	plan, err := h.service.CreatePlan(r.Context(), trainerID, in)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, plan)
}

func (h *PlanHandlers) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	trainerID, id, ok := h.scope(w, r)
	if !ok {
		return
	}
	var in planservice.UpdatePlanInput
	if err := httpx.Decode(r, &in); err != nil {
		httpx.WriteValidationError(w, err)
		return
	}
	plan, err := h.service.UpdatePlan(r.Context(), trainerID, id, in)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, plan)
}

func (h *PlanHandlers) HandleDelete(w http.ResponseWriter, r *http.Request) {
	trainerID, id, ok := h.scope(w, r)
	if !ok {
		return
	}
	if err := h.service.DeletePlan(r.Context(), trainerID, id); err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, httpx.MessageResponse{Message: "practice plan deleted"})
}

func (h *PlanHandlers) scope(w http.ResponseWriter, r *http.Request) (uuid.UUID, uuid.UUID, bool) {
	trainerID, ok := authdomain.TrainerIDFromContext(r.Context())
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return uuid.Nil, uuid.Nil, false
	}
	id, err := httpx.URLParamUUID(r, "id")
	if err != nil {
		httpx.WriteError(w, http.StatusNotFound, planservice.ErrPlanNotFound.Error())
		return uuid.Nil, uuid.Nil, false
	}
	return trainerID, id, true
}

func (h *PlanHandlers) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *httpx.ValidationError
	switch {
	case errors.As(err, &verr):
		httpx.WriteValidationError(w, err)
	case errors.Is(err, planservice.ErrUnknownExercise):
		httpx.WriteError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, planservice.ErrPlanNotFound):
		httpx.WriteError(w, http.StatusNotFound, err.Error())
	default:
		h.logger.ErrorContext(r.Context(), "Plan request failed", attr.ExtractRequestID(r.Context()), attr.Error(err))
		httpx.WriteError(w, http.StatusInternalServerError, "internal server error")
	}
}
