package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/padelcoach/coach-api/app/shared/attr"
)

const shutdownTimeout = 10 * time.Second

// Run starts the event bus and the HTTP server and blocks until ctx is
// cancelled, then drains in-flight requests before returning.
func (app *App) Run(ctx context.Context) error {
	busErr := make(chan error, 1)
	go func() {
		busErr <- app.Bus.Run(ctx)
	}()
	select {
	case <-app.Bus.Running():
	case err := <-busErr:
		return fmt.Errorf("event bus stopped before start: %w", err)
	case <-ctx.Done():
		return nil
	}

	srv := &http.Server{
		Addr:         app.Config.HTTP.Addr,
		Handler:      app.Handler(),
		ReadTimeout:  app.Config.HTTP.ReadTimeout,
		WriteTimeout: app.Config.HTTP.WriteTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		app.Logger.Info("HTTP server listening", attr.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("http server failed: %w", err)
		}
	case <-ctx.Done():
		app.Logger.Info("Shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		app.Logger.Error("Graceful shutdown failed", attr.Error(err))
		return err
	}
	app.Logger.Info("HTTP server stopped")
	return nil
}
