package exercisehandlers

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	authdomain "github.com/padelcoach/coach-api/app/modules/auth/domain"
	exerciseservice "github.com/padelcoach/coach-api/app/modules/exercise/application"
	exercisedb "github.com/padelcoach/coach-api/app/modules/exercise/infrastructure/repositories"
	"github.com/padelcoach/coach-api/app/shared/httpx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(svc *FakeService, trainer *authdomain.Trainer) http.Handler {
	h := NewExerciseHandlers(svc, slog.New(slog.NewTextHandler(io.Discard, nil)))
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			if trainer != nil {
				req = req.WithContext(authdomain.WithTrainer(req.Context(), trainer))
			}
			next.ServeHTTP(w, req)
		})
	})
	r.Get("/api/exercises", h.HandleList)
	r.Post("/api/exercises", h.HandleCreate)
	r.Get("/api/exercises/{id}", h.HandleGet)
	r.Put("/api/exercises/{id}", h.HandleUpdate)
	r.Delete("/api/exercises/{id}", h.HandleDelete)
	return r
}

func TestExerciseHandlers(t *testing.T) {
	trainer := &authdomain.Trainer{ID: uuid.New()}
	exerciseID := uuid.New()

	tests := []struct {
		name         string
		method       string
		path         string
		body         string
		trainer      *authdomain.Trainer
		setupService func(*FakeService)
		wantStatus   int
		wantMessage  string
	}{
		{name: "list", method: http.MethodGet, path: "/api/exercises", trainer: trainer, wantStatus: http.StatusOK},
		{name: "unauthenticated", method: http.MethodGet, path: "/api/exercises", wantStatus: http.StatusUnauthorized},
		{name: "create", method: http.MethodPost, path: "/api/exercises", body: `{"name":"Vibora","type":"tecnico"}`, trainer: trainer, wantStatus: http.StatusCreated},
		{name: "create without type", method: http.MethodPost, path: "/api/exercises", body: `{"name":"Vibora"}`, trainer: trainer, wantStatus: http.StatusBadRequest},
		{
			name: "create with unknown type", method: http.MethodPost, path: "/api/exercises", body: `{"name":"Vibora","type":"yoga"}`, trainer: trainer,
			setupService: func(s *FakeService) {
				s.CreateExerciseFunc = func(ctx context.Context, tID uuid.UUID, in exerciseservice.ExerciseInput) (*exercisedb.Exercise, error) {
					return nil, httpx.NewValidationError("type must be one of [TECNICO]")
				}
			},
			wantStatus: http.StatusBadRequest,
		},
		{name: "get missing", method: http.MethodGet, path: "/api/exercises/" + exerciseID.String(), trainer: trainer, wantStatus: http.StatusNotFound},
		{name: "update", method: http.MethodPut, path: "/api/exercises/" + exerciseID.String(), body: `{"name":"Smash","type":"FISICO"}`, trainer: trainer, wantStatus: http.StatusOK},
		{name: "delete", method: http.MethodDelete, path: "/api/exercises/" + exerciseID.String(), trainer: trainer, wantStatus: http.StatusOK},
		{
			name: "delete in use", method: http.MethodDelete, path: "/api/exercises/" + exerciseID.String(), trainer: trainer,
			setupService: func(s *FakeService) {
				s.DeleteExerciseFunc = func(ctx context.Context, tID, id uuid.UUID) error {
					return exerciseservice.ErrExerciseInUse
				}
			},
			wantStatus:  http.StatusConflict,
			wantMessage: exerciseservice.ErrExerciseInUse.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &FakeService{}
			if tt.setupService != nil {
				tt.setupService(svc)
			}
			var body io.Reader
			if tt.body != "" {
				body = strings.NewReader(tt.body)
			}
			req := httptest.NewRequest(tt.method, tt.path, body)
			rr := httptest.NewRecorder()

			newTestRouter(svc, tt.trainer).ServeHTTP(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code, rr.Body.String())
			if tt.wantMessage != "" {
				var resp httpx.ErrorResponse
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.wantMessage, resp.Message)
			}
		})
	}
}
