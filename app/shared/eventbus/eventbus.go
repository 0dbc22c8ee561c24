// Package eventbus wraps an in-process watermill pub/sub with JSON payloads.
package eventbus

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/go-chi/chi/v5/middleware"
)

// RequestIDMetadataKey carries the originating HTTP request id on messages.
const RequestIDMetadataKey = "request_id"

// EventBus publishes domain events and routes them to subscribers.
type EventBus interface {
	Publish(ctx context.Context, topic string, payload any) error
	Subscribe(handlerName, topic string, handler func(ctx context.Context, msg *message.Message) error)
	Run(ctx context.Context) error
	Running() chan struct{}
	Close() error
}

// Bus is the gochannel-backed EventBus.
type Bus struct {
	pubsub *gochannel.GoChannel
	router *message.Router
	logger *slog.Logger
}

// New builds a Bus. Handlers must be added with Subscribe before Run.
func New(logger *slog.Logger) (*Bus, error) {
	wmLogger := watermill.NewSlogLogger(logger)
	pubsub := gochannel.NewGoChannel(gochannel.Config{OutputChannelBuffer: 256}, wmLogger)

	router, err := message.NewRouter(message.RouterConfig{CloseTimeout: 5 * time.Second}, wmLogger)
	if err != nil {
		return nil, fmt.Errorf("failed to create event router: %w", err)
	}

	return &Bus{pubsub: pubsub, router: router, logger: logger}, nil
}

// Publish marshals payload to JSON and publishes it on topic.
func (b *Bus) Publish(ctx context.Context, topic string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %s payload: %w", topic, err)
	}
	msg := message.NewMessage(watermill.NewUUID(), data)
	if reqID := middleware.GetReqID(ctx); reqID != "" {
		msg.Metadata.Set(RequestIDMetadataKey, reqID)
	}
	if err := b.pubsub.Publish(topic, msg); err != nil {
		return fmt.Errorf("failed to publish %s: %w", topic, err)
	}
	return nil
}

// Subscribe registers a consuming handler for topic.
func (b *Bus) Subscribe(handlerName, topic string, handler func(ctx context.Context, msg *message.Message) error) {
	b.router.AddNoPublisherHandler(handlerName, topic, b.pubsub, func(msg *message.Message) error {
		return handler(msg.Context(), msg)
	})
}

// Run blocks until ctx is cancelled or the router is closed.
func (b *Bus) Run(ctx context.Context) error {
	return b.router.Run(ctx)
}

// Running is closed once the router is ready to deliver messages.
func (b *Bus) Running() chan struct{} {
	return b.router.Running()
}

// Close stops the router and the underlying pub/sub.
func (b *Bus) Close() error {
	if err := b.router.Close(); err != nil {
		b.logger.Error("Error closing event router", "error", err)
		return fmt.Errorf("error closing event router: %w", err)
	}
	return b.pubsub.Close()
}

// Decode unmarshals a message payload into T.
func Decode[T any](msg *message.Message) (*T, error) {
	var v T
	if err := json.Unmarshal(msg.Payload, &v); err != nil {
		return nil, fmt.Errorf("failed to decode message %s: %w", msg.UUID, err)
	}
	return &v, nil
}
