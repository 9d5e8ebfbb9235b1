package ratelimiter

import "errors"

// Package-level error definitions for rate limiter construction.
var (
	// ErrInvalidConfig indicates that the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrUnknownMode indicates that a mode name could not be parsed.
	ErrUnknownMode = errors.New("unknown rate limiter mode")
)
