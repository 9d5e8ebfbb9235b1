package events

import "errors"

var (
	ErrBusClosed   = errors.New("events: bus is closed")
	ErrNilHandler  = errors.New("events: handler must not be nil")
	ErrUnknownType = errors.New("events: unknown event type")
)
