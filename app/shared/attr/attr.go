// Package attr holds the slog attribute helpers shared by every module so log
// keys stay consistent across services and handlers.
package attr

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

func String(key, value string) slog.Attr { return slog.String(key, value) }

func Int(key string, value int) slog.Attr { return slog.Int(key, value) }

func Int64(key string, value int64) slog.Attr { return slog.Int64(key, value) }

func Bool(key string, value bool) slog.Attr { return slog.Bool(key, value) }

func Any(key string, value any) slog.Attr { return slog.Any(key, value) }

func Duration(key string, value time.Duration) slog.Attr { return slog.Duration(key, value) }

// UUID logs an identifier in its canonical string form.
func UUID(key string, id uuid.UUID) slog.Attr { return slog.String(key, id.String()) }

// Error logs err under the "error" key. A nil error logs an empty string.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String("error", "")
	}
	return slog.String("error", err.Error())
}

// ExtractRequestID returns the chi request id stored on ctx, if any.
func ExtractRequestID(ctx context.Context) slog.Attr {
	return slog.String("request_id", middleware.GetReqID(ctx))
}
