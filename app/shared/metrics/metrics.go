// Package metrics owns the Prometheus collectors of the service.
package metrics

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "padelcoach"

// ServiceMetrics is recorded by the withTelemetry wrapper of every service.
type ServiceMetrics interface {
	RecordOperationAttempt(ctx context.Context, operation, service string)
	RecordOperationSuccess(ctx context.Context, operation, service string)
	RecordOperationFailure(ctx context.Context, operation, service string)
	RecordOperationDuration(ctx context.Context, operation, service string, d time.Duration)
}

// EvaluationMetrics counts what happens on the evaluation court.
type EvaluationMetrics interface {
	ServiceMetrics
	RecordPointAwarded(team int)
	RecordGameWon(team int)
	RecordStatUndone()
	RecordUnscoredStat()
}

// Registry holds every collector and implements EvaluationMetrics.
type Registry struct {
	reg *prometheus.Registry

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec

	opAttempts *prometheus.CounterVec
	opSuccess  *prometheus.CounterVec
	opFailure  *prometheus.CounterVec
	opDuration *prometheus.HistogramVec

	pointsAwarded *prometheus.CounterVec
	gamesWon      *prometheus.CounterVec
	statsUndone   prometheus.Counter
	statsUnscored prometheus.Counter
}

// NewRegistry registers all collectors on a fresh Prometheus registry.
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()
	m := &Registry{
		reg: reg,
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "http", Name: "requests_total",
			Help: "HTTP requests by route pattern, method and status.",
		}, []string{"route", "method", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace, Subsystem: "http", Name: "request_duration_seconds",
			Help:    "HTTP request latency by route pattern.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "method"}),
		opAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "service", Name: "operation_attempts_total",
			Help: "Service operations started.",
		}, []string{"service", "operation"}),
		opSuccess: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "service", Name: "operation_success_total",
			Help: "Service operations completed without infrastructure error.",
		}, []string{"service", "operation"}),
		opFailure: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "service", Name: "operation_failure_total",
			Help: "Service operations that failed with an infrastructure error or panic.",
		}, []string{"service", "operation"}),
		opDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace, Subsystem: "service", Name: "operation_duration_seconds",
			Help:    "Service operation latency.",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "operation"}),
		pointsAwarded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "evaluation", Name: "points_awarded_total",
			Help: "Points awarded during live evaluation sessions.",
		}, []string{"team"}),
		gamesWon: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "evaluation", Name: "games_won_total",
			Help: "Games completed during live evaluation sessions.",
		}, []string{"team"}),
		statsUndone: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "evaluation", Name: "stats_undone_total",
			Help: "Stats removed through undo-last.",
		}),
		statsUnscored: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "evaluation", Name: "stats_unscored_total",
			Help: "Stats recorded for players without a team, which did not move the score.",
		}),
	}

	reg.MustRegister(
		m.httpRequests, m.httpDuration,
		m.opAttempts, m.opSuccess, m.opFailure, m.opDuration,
		m.pointsAwarded, m.gamesWon, m.statsUndone, m.statsUnscored,
	)
	return m
}

// Gatherer exposes the underlying registry, mainly for tests.
func (m *Registry) Gatherer() prometheus.Gatherer { return m.reg }

// Handler serves the /metrics endpoint.
func (m *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{})
}

// Middleware records request count and latency keyed by chi route pattern,
// so path parameters do not explode label cardinality.
func (m *Registry) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if p := rctx.RoutePattern(); p != "" {
				route = p
			}
		}
		m.httpRequests.WithLabelValues(route, r.Method, strconv.Itoa(ww.Status())).Inc()
		m.httpDuration.WithLabelValues(route, r.Method).Observe(time.Since(start).Seconds())
	})
}

func (m *Registry) RecordOperationAttempt(_ context.Context, operation, service string) {
	m.opAttempts.WithLabelValues(service, operation).Inc()
}

func (m *Registry) RecordOperationSuccess(_ context.Context, operation, service string) {
	m.opSuccess.WithLabelValues(service, operation).Inc()
}

func (m *Registry) RecordOperationFailure(_ context.Context, operation, service string) {
	m.opFailure.WithLabelValues(service, operation).Inc()
}

func (m *Registry) RecordOperationDuration(_ context.Context, operation, service string, d time.Duration) {
	m.opDuration.WithLabelValues(service, operation).Observe(d.Seconds())
}

func (m *Registry) RecordPointAwarded(team int) {
	m.pointsAwarded.WithLabelValues(strconv.Itoa(team)).Inc()
}

func (m *Registry) RecordGameWon(team int) {
	m.gamesWon.WithLabelValues(strconv.Itoa(team)).Inc()
}

func (m *Registry) RecordStatUndone() { m.statsUndone.Inc() }

func (m *Registry) RecordUnscoredStat() { m.statsUnscored.Inc() }

// Noop discards everything.
type Noop struct{}

// NewNoop returns metrics that record nothing.
func NewNoop() *Noop { return &Noop{} }

func (Noop) RecordOperationAttempt(context.Context, string, string)                 {}
func (Noop) RecordOperationSuccess(context.Context, string, string)                 {}
func (Noop) RecordOperationFailure(context.Context, string, string)                 {}
func (Noop) RecordOperationDuration(context.Context, string, string, time.Duration) {}
func (Noop) RecordPointAwarded(int)                                                 {}
func (Noop) RecordGameWon(int)                                                      {}
func (Noop) RecordStatUndone()                                                      {}
func (Noop) RecordUnscoredStat()                                                    {}
