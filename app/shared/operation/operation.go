// Package operation runs service operations with tracing, metrics, panic
// recovery, structured logs and an optional surrounding transaction.
package operation

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/padelcoach/coach-api/app/shared/attr"
	"github.com/padelcoach/coach-api/app/shared/metrics"
	"github.com/padelcoach/coach-api/app/shared/results"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Runner carries the per-service dependencies every operation needs.
type Runner struct {
	Service string
	Logger  *slog.Logger
	Metrics metrics.ServiceMetrics
	Tracer  trace.Tracer
	DB      *bun.DB
}

// NewRunner creates a Runner. A nil logger falls back to slog.Default.
func NewRunner(service string, logger *slog.Logger, m metrics.ServiceMetrics, tracer trace.Tracer, db *bun.DB) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{Service: service, Logger: logger, Metrics: m, Tracer: tracer, DB: db}
}

// Func is the generic signature for service operation functions.
type Func[S any, F any] func(ctx context.Context) (results.OperationResult[S, F], error)

// TxFunc is an operation body that receives the transaction handle, or nil
// when the Runner has no database.
type TxFunc[S any, F any] func(ctx context.Context, db bun.IDB) (results.OperationResult[S, F], error)

// WithTelemetry wraps a service operation with a span, operation metrics and
// panic recovery. Each call logs once: errors and panics at error level,
// domain failures at warn, successes at debug.
func WithTelemetry[S any, F any](
	r *Runner,
	ctx context.Context,
	operationName string,
	identifier string,
	op Func[S, F],
) (result results.OperationResult[S, F], err error) {
	var span trace.Span
	if r.Tracer != nil {
		ctx, span = r.Tracer.Start(ctx, r.Service+"."+operationName, trace.WithAttributes(
			attribute.String("operation", operationName),
			attribute.String("identifier", identifier),
		))
	} else {
		span = trace.SpanFromContext(ctx)
	}
	defer span.End()

	logger := r.Logger.With(
		attr.ExtractRequestID(ctx),
		attr.String("operation", operationName),
		attr.String("identifier", identifier),
	)

	if r.Metrics != nil {
		r.Metrics.RecordOperationAttempt(ctx, operationName, r.Service)
	}
	start := time.Now()
	defer func() {
		if r.Metrics != nil {
			r.Metrics.RecordOperationDuration(ctx, operationName, r.Service, time.Since(start))
		}
	}()

	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("panic in %s: %v", operationName, rec)
			logger.ErrorContext(ctx, "operation panicked", attr.Error(err))
			if r.Metrics != nil {
				r.Metrics.RecordOperationFailure(ctx, operationName, r.Service)
			}
			span.RecordError(err)
			span.SetStatus(codes.Error, "panic")
			result = results.OperationResult[S, F]{}
		}
	}()

	result, err = op(ctx)
	if err != nil {
		err = fmt.Errorf("%s: %w", operationName, err)
		logger.ErrorContext(ctx, "operation failed", attr.Error(err))
		if r.Metrics != nil {
			r.Metrics.RecordOperationFailure(ctx, operationName, r.Service)
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return result, err
	}

	if result.IsFailure() {
		logger.WarnContext(ctx, "operation rejected", attr.Any("reason", *result.Failure))
	} else {
		logger.DebugContext(ctx, "operation done", attr.Duration("elapsed", time.Since(start)))
	}
	if r.Metrics != nil {
		r.Metrics.RecordOperationSuccess(ctx, operationName, r.Service)
	}
	return result, nil
}

// RunInTx ensures the operation runs within a transaction.
func RunInTx[S any, F any](r *Runner, ctx context.Context, fn TxFunc[S, F]) (results.OperationResult[S, F], error) {
	if r.DB == nil {
		return fn(ctx, nil)
	}

	var result results.OperationResult[S, F]

	err := r.DB.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		var txErr error
		result, txErr = fn(ctx, tx)
		return txErr
	})

	return result, err
}

// Execute runs fn in a transaction under telemetry and flattens the result:
// a domain failure comes back as the returned error, like an infrastructure one.
// The transaction commits for domain failures, since fn chose not to error.
func Execute[S any](r *Runner, ctx context.Context, operationName, identifier string, fn TxFunc[S, error]) (S, error) {
	var zero S
	result, err := WithTelemetry(r, ctx, operationName, identifier, func(ctx context.Context) (results.OperationResult[S, error], error) {
		return RunInTx(r, ctx, fn)
	})
	if err != nil {
		return zero, err
	}
	if result.IsFailure() {
		return zero, *result.Failure
	}
	if result.Success == nil {
		return zero, nil
	}
	return *result.Success, nil
}
