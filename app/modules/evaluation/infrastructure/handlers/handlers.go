package evaluationhandlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	authdomain "github.com/padelcoach/coach-api/app/modules/auth/domain"
	evaluationservice "github.com/padelcoach/coach-api/app/modules/evaluation/application"
	evaluationdomain "github.com/padelcoach/coach-api/app/modules/evaluation/domain"
	"github.com/padelcoach/coach-api/app/shared/attr"
	"github.com/padelcoach/coach-api/app/shared/httpx"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// EvaluationHandlers implements the Handlers interface.
type EvaluationHandlers struct {
	service evaluationservice.Service
	logger  *slog.Logger
}

// NewEvaluationHandlers creates a new EvaluationHandlers instance.
func NewEvaluationHandlers(service evaluationservice.Service, logger *slog.Logger) Handlers {
	return &EvaluationHandlers{service: service, logger: logger}
}

func (h *EvaluationHandlers) HandleList(w http.ResponseWriter, r *http.Request) {
	trainerID, ok := authdomain.TrainerIDFromContext(r.Context())
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	sessions, err := h.service.ListSessions(r.Context(), trainerID)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, sessions)
}

func (h *EvaluationHandlers) HandleCreate(w http.ResponseWriter, r *http.Request) {
	trainerID, ok := authdomain.TrainerIDFromContext(r.Context())
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	var in evaluationservice.CreateSessionInput
	if err := httpx.Decode(r, &in); err != nil {
		httpx.WriteValidationError(w, err)
		return
	}
	detail, err := h.service.CreateSession(r.Context(), trainerID, in)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, detail)
}

func (h *EvaluationHandlers) HandleGet(w http.ResponseWriter, r *http.Request) {
	trainerID, id, ok := h.scope(w, r)
	if !ok {
		return
	}
	detail, err := h.service.GetSession(r.Context(), trainerID, id)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, detail)
}

func (h *EvaluationHandlers) HandleDelete(w http.ResponseWriter, r *http.Request) {
	trainerID, id, ok := h.scope(w, r)
	if !ok {
		return
	}
	if err := h.service.DeleteSession(r.Context(), trainerID, id); err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, httpx.MessageResponse{Message: "game session deleted"})
}

func (h *EvaluationHandlers) HandleSetTeams(w http.ResponseWriter, r *http.Request) {
	trainerID, id, ok := h.scope(w, r)
	if !ok {
		return
	}
	var in evaluationdomain.TeamAssignment
	if err := httpx.Decode(r, &in); err != nil {
		httpx.WriteValidationError(w, err)
		return
	}
	teams, err := h.service.SetTeams(r.Context(), trainerID, id, in)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, teams)
}

func (h *EvaluationHandlers) HandleSetGoldenPoint(w http.ResponseWriter, r *http.Request) {
	trainerID, id, ok := h.scope(w, r)
	if !ok {
		return
	}
	var in evaluationservice.GoldenPointInput
	if err := httpx.Decode(r, &in); err != nil {
		httpx.WriteValidationError(w, err)
		return
	}
	score, err := h.service.SetGoldenPoint(r.Context(), trainerID, id, *in.Enabled)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, score)
}

func (h *EvaluationHandlers) HandleScore(w http.ResponseWriter, r *http.Request) {
	trainerID, id, ok := h.scope(w, r)
	if !ok {
		return
	}
	score, err := h.service.GetScore(r.Context(), trainerID, id)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, score)
}

func (h *EvaluationHandlers) HandleRecordStat(w http.ResponseWriter, r *http.Request) {
	trainerID, id, ok := h.scope(w, r)
	if !ok {
		return
	}
	var in evaluationservice.RecordStatInput
	if err := httpx.Decode(r, &in); err != nil {
		httpx.WriteValidationError(w, err)
		return
	}
	res, err := h.service.RecordStat(r.Context(), trainerID, id, in)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, res)
}

func (h *EvaluationHandlers) HandleManualPoint(w http.ResponseWriter, r *http.Request) {
	trainerID, id, ok := h.scope(w, r)
	if !ok {
		return
	}
	var in evaluationservice.ManualPointInput
	if err := httpx.Decode(r, &in); err != nil {
		httpx.WriteValidationError(w, err)
		return
	}
	res, err := h.service.ManualPoint(r.Context(), trainerID, id, in)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, res)
}

func (h *EvaluationHandlers) HandleUndoLastStat(w http.ResponseWriter, r *http.Request) {
	trainerID, id, ok := h.scope(w, r)
	if !ok {
		return
	}
	res, err := h.service.UndoLastStat(r.Context(), trainerID, id)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, res)
}

func (h *EvaluationHandlers) HandleSummary(w http.ResponseWriter, r *http.Request) {
	trainerID, id, ok := h.scope(w, r)
	if !ok {
		return
	}
	summary, err := h.service.GetSummary(r.Context(), trainerID, id)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, summary)
}

func (h *EvaluationHandlers) HandleChart(w http.ResponseWriter, r *http.Request) {
	trainerID, id, ok := h.scope(w, r)
	if !ok {
		return
	}
	png, err := h.service.RenderChart(r.Context(), trainerID, id)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeBinary(w, "image/png", "", png)
}

func (h *EvaluationHandlers) HandleExport(w http.ResponseWriter, r *http.Request) {
	trainerID, id, ok := h.scope(w, r)
	if !ok {
		return
	}
	data, err := h.service.ExportWorkbook(r.Context(), trainerID, id)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeBinary(w, xlsxContentType, fmt.Sprintf("session-%s.xlsx", id), data)
}

func writeBinary(w http.ResponseWriter, contentType, filename string, data []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	if filename != "" {
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (h *EvaluationHandlers) scope(w http.ResponseWriter, r *http.Request) (uuid.UUID, uuid.UUID, bool) {
	trainerID, ok := authdomain.TrainerIDFromContext(r.Context())
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return uuid.Nil, uuid.Nil, false
	}
	id, err := httpx.URLParamUUID(r, "id")
	if err != nil {
		httpx.WriteError(w, http.StatusNotFound, evaluationservice.ErrSessionNotFound.Error())
		return uuid.Nil, uuid.Nil, false
	}
	return trainerID, id, true
}

var badRequestErrors = []error{
	evaluationservice.ErrUnknownStudent,
	evaluationservice.ErrStudentNotInSession,
	evaluationdomain.ErrInvalidStatType,
	evaluationdomain.ErrInvalidStrokeType,
	evaluationdomain.ErrInvalidTeam,
	evaluationdomain.ErrTeamSize,
	evaluationdomain.ErrPlayerInBothTeams,
	evaluationdomain.ErrDuplicatePlayer,
	evaluationdomain.ErrPlayerNotInSession,
}

var notFoundErrors = []error{
	evaluationservice.ErrSessionNotFound,
	evaluationservice.ErrNothingToUndo,
	evaluationservice.ErrNothingToChart,
}

func (h *EvaluationHandlers) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *httpx.ValidationError
	if errors.As(err, &verr) {
		httpx.WriteValidationError(w, err)
		return
	}
	for _, target := range badRequestErrors {
		if errors.Is(err, target) {
			httpx.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
	}
	for _, target := range notFoundErrors {
		if errors.Is(err, target) {
			httpx.WriteError(w, http.StatusNotFound, err.Error())
			return
		}
	}
	h.logger.ErrorContext(r.Context(), "Evaluation request failed", attr.ExtractRequestID(r.Context()), attr.Error(err))
	httpx.WriteError(w, http.StatusInternalServerError, "internal server error")
}
