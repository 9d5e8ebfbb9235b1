package events

import "context"

// Handler reacts to a single event.
type Handler func(ctx context.Context, e Event)

// Listen delivers events from sub to h one at a time, on the calling
// goroutine, until ctx is done or the subscriber channel is closed.
// It returns ctx.Err() on cancellation and nil when the channel closes.
func Listen(ctx context.Context, sub Subscriber, h Handler) error {
	if h == nil {
		return ErrNilHandler
	}
	ch := sub.Receive(ctx)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case e, ok := <-ch:
			if !ok {
				return nil
			}
			h(ctx, e)
		}
	}
}

// ParseType converts an event name to a Type.
func ParseType(s string) (Type, error) {
	switch t := Type(s); t {
	case MouseEnter, MouseLeave, Click, Input, Blur, Submit:
		return t, nil
	default:
		return "", ErrUnknownType
	}
}

// Attach subscribes h to the given types and runs Listen on a new goroutine.
// The returned stop function ends the subscription and waits for the
// listener to return. Calling stop more than once is safe.
func Attach(ctx context.Context, bus Bus, h Handler, types ...Type) (stop func()) {
	ctx, cancel := context.WithCancel(ctx)
	sub := bus.Subscribe(ctx, types...)
	done := make(chan struct{})

	go func() {
		defer close(done)
		_ = Listen(ctx, sub, h)
	}()

	return func() {
		cancel()
		_ = sub.Close()
		<-done
	}
}
