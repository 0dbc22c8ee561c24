package studenthandlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	authdomain "github.com/padelcoach/coach-api/app/modules/auth/domain"
	studentservice "github.com/padelcoach/coach-api/app/modules/student/application"
	"github.com/padelcoach/coach-api/app/shared/attr"
	"github.com/padelcoach/coach-api/app/shared/httpx"
)

// StudentHandlers implements the Handlers interface.
type StudentHandlers struct {
	service studentservice.Service
	logger  *slog.Logger
}

// NewStudentHandlers creates a new StudentHandlers instance.
func NewStudentHandlers(service studentservice.Service, logger *slog.Logger) Handlers {
	return &StudentHandlers{service: service, logger: logger}
}

func (h *StudentHandlers) HandleList(w http.ResponseWriter, r *http.Request) {
	trainerID, ok := authdomain.TrainerIDFromContext(r.Context())
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	students, err := h.service.ListStudents(r.Context(), trainerID)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, students)
}

func (h *StudentHandlers) HandleGet(w http.ResponseWriter, r *http.Request) {
	trainerID, id, ok := h.scope(w, r)
	if !ok {
		return
	}
	student, err := h.service.GetStudent(r.Context(), trainerID, id)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, student)
}

func (h *StudentHandlers) HandleCreate(w http.ResponseWriter, r *http.Request) {
	trainerID, ok := authdomain.TrainerIDFromContext(r.Context())
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	var in studentservice.StudentInput
	if err := httpx.Decode(r, &in); err != nil {
		httpx.WriteValidationError(w, err)
		return
	}
	student, err := h.service.CreateStudent(r.Context(), trainerID, in)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, student)
}

func (h *StudentHandlers) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	trainerID, id, ok := h.scope(w, r)
	if !ok {
		return
	}
	var in studentservice.StudentInput
	if err := httpx.Decode(r, &in); err != nil {
		httpx.WriteValidationError(w, err)
		return
	}
	student, err := h.service.UpdateStudent(r.Context(), trainerID, id, in)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, student)
}

func (h *StudentHandlers) HandleDelete(w http.ResponseWriter, r *http.Request) {
	trainerID, id, ok := h.scope(w, r)
	if !ok {
		return
	}
	if err := h.service.DeleteStudent(r.Context(), trainerID, id); err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, httpx.MessageResponse{Message: "student deleted"})
}

// scope resolves the authenticated trainer and the {id} path parameter.
func (h *StudentHandlers) scope(w http.ResponseWriter, r *http.Request) (uuid.UUID, uuid.UUID, bool) {
	trainerID, ok := authdomain.TrainerIDFromContext(r.Context())
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return uuid.Nil, uuid.Nil, false
	}
	id, err := httpx.URLParamUUID(r, "id")
	if err != nil {
		// A malformed id cannot name any student, so it gets the same 404.
		httpx.WriteError(w, http.StatusNotFound, studentservice.ErrStudentNotFound.Error())
		return uuid.Nil, uuid.Nil, false
	}
	return trainerID, id, true
}

func (h *StudentHandlers) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, studentservice.ErrStudentNotFound) {
		httpx.WriteError(w, http.StatusNotFound, studentservice.ErrStudentNotFound.Error())
		return
	}
	h.logger.ErrorContext(r.Context(), "Student request failed", attr.ExtractRequestID(r.Context()), attr.Error(err))
	httpx.WriteError(w, http.StatusInternalServerError, "internal server error")
}
