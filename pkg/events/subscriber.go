package events

import (
	"context"
	"slices"
	"sync"
)

type subscriber struct {
	ch     chan Event
	types  []Type
	closed bool
	mu     sync.RWMutex
}

func newSubscriber(bufferSize int, types []Type) *subscriber {
	return &subscriber{
		ch:    make(chan Event, bufferSize),
		types: slices.Clone(types),
	}
}

func (s *subscriber) Receive(context.Context) <-chan Event {
	return s.ch
}

func (s *subscriber) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.closed {
		close(s.ch)
		s.closed = true
	}
	return nil
}

func (s *subscriber) wants(t Type) bool {
	return len(s.types) == 0 || slices.Contains(s.types, t)
}

type sendResult int

const (
	sent sendResult = iota
	bufferFull
	subscriberClosed
)

func (s *subscriber) send(e Event) sendResult {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return subscriberClosed
	}

	select {
	case s.ch <- e:
		return sent
	default:
		return bufferFull
	}
}
