package pubsub

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func receive[T any](t *testing.T, ch <-chan Event[T]) Event[T] {
	t.Helper()
	select {
	case event, ok := <-ch:
		require.True(t, ok, "channel closed unexpectedly")
		return event
	case <-time.After(time.Second):
		require.Fail(t, "timeout waiting for event")
		return Event[T]{}
	}
}

func TestBroker_Subscribe(t *testing.T) {
	broker := NewBroker[string]()
	defer broker.Close()

	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	broker.now = func() time.Time { return fixed }

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := broker.Subscribe(ctx)
	broker.Publish(NotificationEvent, "Monkey created successfully!")

	event := receive(t, ch)
	require.Equal(t, "Monkey created successfully!", event.Payload)
	require.Equal(t, NotificationEvent, event.Type)
	require.Equal(t, fixed, event.Timestamp)
}

func TestBroker_FanOut(t *testing.T) {
	broker := NewBroker[int]()
	defer broker.Close()

	ctx := context.Background()
	subs := []<-chan Event[int]{broker.Subscribe(ctx), broker.Subscribe(ctx), broker.Subscribe(ctx)}
	require.Equal(t, 3, broker.SubscriberCount())

	broker.Publish(EventType("custom"), 42)

	for _, ch := range subs {
		event := receive(t, ch)
		require.Equal(t, 42, event.Payload)
		require.Equal(t, EventType("custom"), event.Type)
	}
}

func TestBroker_ContextCancellationUnsubscribes(t *testing.T) {
	broker := NewBroker[string]()
	defer broker.Close()

	ctx, cancel := context.WithCancel(context.Background())
	ch := broker.Subscribe(ctx)
	require.Equal(t, 1, broker.SubscriberCount())

	cancel()
	require.Eventually(t, func() bool { return broker.SubscriberCount() == 0 }, time.Second, 5*time.Millisecond)

	_, ok := <-ch
	require.False(t, ok, "channel should be closed")
}

func TestBroker_FullSubscriberDropsInsteadOfBlocking(t *testing.T) {
	broker := NewBrokerWithBuffer[int](1)
	defer broker.Close()

	ch := broker.Subscribe(context.Background())
	broker.Publish(NotificationEvent, 1)

	done := make(chan struct{})
	go func() {
		broker.Publish(NotificationEvent, 2)
		broker.Publish(NotificationEvent, 3)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		require.Fail(t, "Publish blocked")
	}

	require.Equal(t, 1, receive(t, ch).Payload)
	require.Equal(t, int64(2), broker.Dropped())
}

func TestBroker_Close(t *testing.T) {
	broker := NewBroker[string]()
	ctx := context.Background()
	ch1 := broker.Subscribe(ctx)
	ch2 := broker.Subscribe(ctx)

	broker.Close()
	broker.Close()

	_, ok1 := <-ch1
	_, ok2 := <-ch2
	require.False(t, ok1)
	require.False(t, ok2)
	require.Zero(t, broker.SubscriberCount())

	ch3 := broker.Subscribe(ctx)
	_, ok3 := <-ch3
	require.False(t, ok3, "subscribe after close should return a closed channel")

	require.NotPanics(t, func() { broker.Publish(NotificationEvent, "late") })
}

func TestBroker_CancelAfterClose(t *testing.T) {
	broker := NewBroker[string]()
	ctx, cancel := context.WithCancel(context.Background())
	broker.Subscribe(ctx)

	broker.Close()
	require.NotPanics(t, func() { cancel() })
	time.Sleep(10 * time.Millisecond)
}

func TestNewBrokerWithBuffer_ClampsSize(t *testing.T) {
	broker := NewBrokerWithBuffer[int](0)
	defer broker.Close()
	require.Equal(t, 1, broker.bufferSize)
}
