package evaluationsubscribers

import (
	"context"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill/message"
	evaluationdomain "github.com/padelcoach/coach-api/app/modules/evaluation/domain"
	"github.com/padelcoach/coach-api/app/shared/attr"
	"github.com/padelcoach/coach-api/app/shared/eventbus"
	"github.com/padelcoach/coach-api/app/shared/metrics"
)

// MetricsSubscriber turns committed stat log changes into court counters.
type MetricsSubscriber struct {
	metrics metrics.EvaluationMetrics
	logger  *slog.Logger
}

func NewMetricsSubscriber(m metrics.EvaluationMetrics, logger *slog.Logger) *MetricsSubscriber {
	return &MetricsSubscriber{metrics: m, logger: logger}
}

// Register adds the subscriber's handlers to bus. Call before bus.Run.
func (s *MetricsSubscriber) Register(bus eventbus.EventBus) {
	bus.Subscribe("evaluation.metrics.stat_recorded", evaluationdomain.StatRecordedTopic, s.HandleStatRecorded)
	bus.Subscribe("evaluation.metrics.stat_undone", evaluationdomain.StatUndoneTopic, s.HandleStatUndone)
}

func (s *MetricsSubscriber) HandleStatRecorded(ctx context.Context, msg *message.Message) error {
	payload, err := eventbus.Decode[evaluationdomain.StatRecordedPayload](msg)
	if err != nil {
		// A payload that cannot be decoded will never succeed; drop it.
		s.logger.ErrorContext(ctx, "Dropping undecodable stat event", attr.Error(err))
		return nil
	}

	if !payload.PointWinner.Valid() {
		s.metrics.RecordUnscoredStat()
		return nil
	}
	s.metrics.RecordPointAwarded(int(payload.PointWinner))
	if payload.GameWinner.Valid() {
		s.metrics.RecordGameWon(int(payload.GameWinner))
		s.logger.InfoContext(ctx, "Game won",
			attr.UUID("session_id", payload.SessionID),
			attr.Int("team", int(payload.GameWinner)),
			attr.String("request_id", msg.Metadata.Get(eventbus.RequestIDMetadataKey)),
		)
	}
	return nil
}

func (s *MetricsSubscriber) HandleStatUndone(ctx context.Context, msg *message.Message) error {
	if _, err := eventbus.Decode[evaluationdomain.StatUndonePayload](msg); err != nil {
		s.logger.ErrorContext(ctx, "Dropping undecodable undo event", attr.Error(err))
		return nil
	}
	s.metrics.RecordStatUndone()
	return nil
}
