package app

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/padelcoach/coach-api/app/shared/httpx"
)

// newRouter builds the root router with the cross-cutting middleware and the
// unauthenticated operational endpoints. Modules mount their own routes on it.
func (app *App) newRouter() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(httpx.RequestLogger(app.Logger))
	r.Use(middleware.Recoverer)
	r.Use(app.Metrics.Middleware)
	r.Use(httpx.CORSMiddleware(app.Config.HTTP.AllowedOrigins))

	r.Get("/healthz", app.handleHealth)
	r.Handle("/metrics", app.Metrics.Handler())
	return r
}

func (app *App) handleHealth(w http.ResponseWriter, r *http.Request) {
	if app.DB != nil {
		if err := app.DB.PingContext(r.Context()); err != nil {
			httpx.WriteError(w, http.StatusServiceUnavailable, "database unavailable")
			return
		}
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
