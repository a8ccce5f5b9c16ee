package util

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

type ctxKey struct{}

func TestEventBusPublish(t *testing.T) {
	bus := NewEventBus()
	var calls int32
	var sawValue atomic.Value

	bus.Subscribe(EventNotify, func(ctx context.Context, e Event) error {
		atomic.AddInt32(&calls, 1)
		sawValue.Store(ctx.Value(ctxKey{}))
		assert.NoError(t, ctx.Err())
		return nil
	})
	bus.Subscribe(EventNotify, func(ctx context.Context, e Event) error {
		atomic.AddInt32(&calls, 1)
		return errors.New("handler failed")
	})

	ctx, cancel := context.WithCancel(context.WithValue(context.Background(), ctxKey{}, "req-1"))
	bus.Publish(ctx, EventNotify, "payload")
	cancel()
	bus.Wait()

	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
	assert.Equal(t, "req-1", sawValue.Load())
	assert.Len(t, bus.errorChan, 1)
}

func TestEventBusNoSubscribers(t *testing.T) {
	bus := NewEventBus()
	bus.Publish(context.Background(), EventAnnouncementPublished, "announcement")
	bus.Wait()
	assert.Len(t, bus.errorChan, 0)
}
