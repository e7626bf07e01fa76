package pubsub

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

const defaultBufferSize = 32

// Broker fans published events out to every live subscription. Publishing
// never blocks: a subscriber whose buffer is full misses the event.
type Broker[T any] struct {
	mu         sync.RWMutex
	subs       map[chan Event[T]]struct{}
	closed     bool
	bufferSize int
	now        func() time.Time
	dropped    atomic.Int64
}

// NewBroker creates a broker with the default per-subscriber buffer.
func NewBroker[T any]() *Broker[T] {
	return NewBrokerWithBuffer[T](defaultBufferSize)
}

// NewBrokerWithBuffer creates a broker with a custom per-subscriber buffer.
func NewBrokerWithBuffer[T any](size int) *Broker[T] {
	if size < 1 {
		size = 1
	}
	return &Broker[T]{
		subs:       make(map[chan Event[T]]struct{}),
		bufferSize: size,
		now:        time.Now,
	}
}

// Subscribe returns a channel of future events. It is closed when ctx is
// cancelled or the broker is closed.
func (b *Broker[T]) Subscribe(ctx context.Context) <-chan Event[T] {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		ch := make(chan Event[T])
		close(ch)
		return ch
	}

	sub := make(chan Event[T], b.bufferSize)
	b.subs[sub] = struct{}{}

	go func() {
		<-ctx.Done()
		b.unsubscribe(sub)
	}()

	return sub
}

func (b *Broker[T]) unsubscribe(sub chan Event[T]) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.subs[sub]; !ok {
		return
	}
	delete(b.subs, sub)
	close(sub)
}

// Publish delivers payload to every subscriber with buffer space.
func (b *Broker[T]) Publish(eventType EventType, payload T) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return
	}

	event := Event[T]{Type: eventType, Payload: payload, Timestamp: b.now()}
	for sub := range b.subs {
		select {
		case sub <- event:
		default:
			b.dropped.Add(1)
		}
	}
}

// Close closes every subscription. Further publishes are ignored.
func (b *Broker[T]) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.closed = true
	for sub := range b.subs {
		close(sub)
	}
	b.subs = nil
}

// SubscriberCount returns the number of active subscribers.
func (b *Broker[T]) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}

// Dropped is how many deliveries were skipped because a subscriber was full.
func (b *Broker[T]) Dropped() int64 {
	return b.dropped.Load()
}
