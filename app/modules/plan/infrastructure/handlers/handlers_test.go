package planhandlers

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	authdomain "github.com/padelcoach/coach-api/app/modules/auth/domain"
	planservice "github.com/padelcoach/coach-api/app/modules/plan/application"
	plandb "github.com/padelcoach/coach-api/app/modules/plan/infrastructure/repositories"
	"github.com/stretchr/testify/require"
)

func newTestRouter(svc *FakeService, trainer *authdomain.Trainer) http.Handler {
	h := NewPlanHandlers(svc, slog.New(slog.NewTextHandler(io.Discard, nil)))
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			if trainer != nil {
				req = req.WithContext(authdomain.WithTrainer(req.Context(), trainer))
			}
			next.ServeHTTP(w, req)
		})
	})
	r.Get("/api/plans", h.HandleList)
	r.Post("/api/plans", h.HandleCreate)
	r.Get("/api/plans/{id}", h.HandleGet)
	r.Put("/api/plans/{id}", h.HandleUpdate)
	r.Delete("/api/plans/{id}", h.HandleDelete)
	return r
}

func TestPlanHandlers(t *testing.T) {
	trainer := &authdomain.Trainer{ID: uuid.New()}
	planID, exerciseID := uuid.New(), uuid.New()
	validBody := `{"title":"Group","date":"2026-03-10","exercises":[{"exercise_id":"` + exerciseID.String() + `","order":1}]}`

	tests := []struct {
		name         string
		method       string
		path         string
		body         string
		trainer      *authdomain.Trainer
		setupService func(*FakeService)
		wantStatus   int
	}{
		{name: "list", method: http.MethodGet, path: "/api/plans", trainer: trainer, wantStatus: http.StatusOK},
		{name: "unauthenticated", method: http.MethodGet, path: "/api/plans", wantStatus: http.StatusUnauthorized},
		{name: "create", method: http.MethodPost, path: "/api/plans", body: validBody, trainer: trainer, wantStatus: http.StatusCreated},
		{name: "create without exercises", method: http.MethodPost, path: "/api/plans", body: `{"title":"Group","date":"2026-03-10","exercises":[]}`, trainer: trainer, wantStatus: http.StatusBadRequest},
		{name: "create without title", method: http.MethodPost, path: "/api/plans", body: `{"date":"2026-03-10","exercises":[{"exercise_id":"` + exerciseID.String() + `"}]}`, trainer: trainer, wantStatus: http.StatusBadRequest},
		{
			name: "create with foreign exercise", method: http.MethodPost, path: "/api/plans", body: validBody, trainer: trainer,
			setupService: func(s *FakeService) {
				s.CreatePlanFunc = func(ctx context.Context, tID uuid.UUID, in planservice.CreatePlanInput) (*plandb.PracticePlan, error) {
					return nil, planservice.ErrUnknownExercise
				}
			},
			wantStatus: http.StatusBadRequest,
		},
		{name: "get missing", method: http.MethodGet, path: "/api/plans/" + planID.String(), trainer: trainer, wantStatus: http.StatusNotFound},
		{name: "update", method: http.MethodPut, path: "/api/plans/" + planID.String(), body: `{"title":"Renamed"}`, trainer: trainer, wantStatus: http.StatusOK},
		{name: "delete", method: http.MethodDelete, path: "/api/plans/" + planID.String(), trainer: trainer, wantStatus: http.StatusOK},
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
			rr := httptest.NewRecorder()
			newTestRouter(svc, tt.trainer).ServeHTTP(rr, httptest.NewRequest(tt.method, tt.path, body))
			require.Equal(t, tt.wantStatus, rr.Code, rr.Body.String())
		})
	}
}
