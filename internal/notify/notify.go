// Package notify reports operation outcomes to the user.
package notify

import (
	"github.com/zjrosen/monkeyreg/internal/log"
	"github.com/zjrosen/monkeyreg/internal/pubsub"
)

// Kind is the outcome a notification reports.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

// Notification is a short, ephemeral outcome report.
type Notification struct {
	Kind        Kind
	Title       string
	Description string
}

// Success builds a success notification.
func Success(description string) Notification {
	return Notification{Kind: KindSuccess, Title: "Success", Description: description}
}

// Failure builds an error notification.
func Failure(description string) Notification {
	return Notification{Kind: KindError, Title: "Error", Description: description}
}

// Sink receives notifications. Notify must not block.
type Sink interface {
	Notify(n Notification)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(Notification)

// Notify implements Sink.
func (f SinkFunc) Notify(n Notification) { f(n) }

// BrokerSink publishes notifications on a pubsub broker for the UI to pick up.
type BrokerSink struct {
	broker *pubsub.Broker[Notification]
}

// NewBrokerSink returns a sink publishing to broker.
func NewBrokerSink(broker *pubsub.Broker[Notification]) *BrokerSink {
	return &BrokerSink{broker: broker}
}

// Notify implements Sink.
func (s *BrokerSink) Notify(n Notification) {
	log.Debug(log.CatUI, "notify", "kind", n.Kind, "title", n.Title, "description", n.Description)
	s.broker.Publish(pubsub.NotificationEvent, n)
}

// Multi fans a notification out to several sinks in order.
type Multi []Sink

// Notify implements Sink.
func (m Multi) Notify(n Notification) {
	for _, s := range m {
		if s != nil {
			s.Notify(n)
		}
	}
}
