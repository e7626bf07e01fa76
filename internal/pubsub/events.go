// Package pubsub is a small typed publish/subscribe broker with helpers for
// feeding events into a Bubble Tea update loop.
package pubsub

import (
	"context"
	"time"
)

// EventType labels a published event.
type EventType string

// NotificationEvent carries a user-facing outcome report.
const NotificationEvent EventType = "notification"

// Event is a published payload with its type and publish time.
type Event[T any] struct {
	Type      EventType
	Payload   T
	Timestamp time.Time
}

// Subscriber provides a subscription channel for events.
type Subscriber[T any] interface {
	Subscribe(ctx context.Context) <-chan Event[T]
}

// Publisher allows publishing events with a typed payload.
type Publisher[T any] interface {
	Publish(eventType EventType, payload T)
}
