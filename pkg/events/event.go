package events

import (
	"context"
	"time"
)

// Type names a UI event.
type Type string

const (
	MouseEnter Type = "mouseenter"
	MouseLeave Type = "mouseleave"
	Click      Type = "click"
	Input      Type = "input"
	Blur       Type = "blur"
	Submit     Type = "submit"
)

// Event is a single interaction reported by the host page.
type Event struct {
	Type Type
	// Target identifies the element: a field name, a tooltip target or a button ID.
	Target string
	// Value carries the element value for input and blur events.
	Value string
	At    time.Time
}

// Subscriber receives events from a Bus.
// Implementations must be safe for concurrent use.
type Subscriber interface {
	// Receive returns the delivery channel. It is closed when the
	// subscriber is closed, its context is cancelled, or the bus shuts down.
	Receive(ctx context.Context) <-chan Event

	// Close is idempotent.
	Close() error
}

// Bus fans events out to subscribers.
// Implementations skip events for slow consumers instead of blocking the publisher.
type Bus interface {
	// Subscribe returns a subscriber for the given types; no types means all.
	// The subscription ends when ctx is cancelled.
	Subscribe(ctx context.Context, types ...Type) Subscriber

	// Publish delivers e to every matching subscriber.
	Publish(ctx context.Context, e Event) error

	// Close closes every subscriber. Publish after Close returns ErrBusClosed.
	Close() error
}
