package eventbus

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pinged struct {
	N int `json:"n"`
}

func TestBus_PublishSubscribe(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	bus, err := New(logger)
	require.NoError(t, err)

	received := make(chan int, 1)
	bus.Subscribe("test.pinged", "test.pinged.v1", func(ctx context.Context, msg *message.Message) error {
		p, err := Decode[pinged](msg)
		if err != nil {
			return err
		}
		received <- p.N
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = bus.Run(ctx) }()
	<-bus.Running()

	require.NoError(t, bus.Publish(ctx, "test.pinged.v1", pinged{N: 7}))

	select {
	case n := <-received:
		assert.Equal(t, 7, n)
	case <-time.After(2 * time.Second):
		t.Fatal("message was not delivered")
	}

	require.NoError(t, bus.Close())
}

func TestDecode_InvalidPayload(t *testing.T) {
	_, err := Decode[pinged](message.NewMessage("1", []byte("not json")))
	assert.Error(t, err)
}
