// Package events is the event source the UI components subscribe to.
//
// The host page (or a test, or the CLI) publishes Event values describing
// pointer, input and form interactions. Components subscribe to the types
// they care about and consume them with Listen, which calls the handler
// serially on one goroutine, so a component never sees two of its own events
// at once.
//
//	bus := events.NewMemoryBus()
//	defer bus.Close()
//
//	sub := bus.Subscribe(ctx, events.Blur, events.Input)
//	go events.Listen(ctx, sub, func(ctx context.Context, e events.Event) {
//	    // react to e
//	})
//
//	_ = bus.Publish(ctx, events.Event{Type: events.Blur, Target: "email", Value: "a@b.c"})
//
// MemoryBus never blocks a publisher. A subscriber whose buffer is full
// misses that event and keeps receiving later ones.
package events
