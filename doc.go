// Package uikit is the client-side behaviour of the RojgarPatra resume
// builder, expressed as host-agnostic Go packages.
//
// The packages under pkg/ are independent and are wired together by the host
// through an events.Bus:
//
//   - ratelimiter: debounce and throttle wrappers for callbacks
//   - validator: single-field validation with fixed rule precedence
//   - forms: inline validation, error display and submit locking
//   - notifications: auto-dismissing toast messages
//   - tooltip: hover hints positioned above their element
//   - theme: light/dark preference with memory, file and Redis stores
//   - dashboard: resume card search, view toggle and hover lift
//
// Supporting packages provide configuration (config, environment), logging
// (logger), the event bus (events) and the Redis connection (redis).
// cmd/uikit exposes the behaviour on the command line.
package uikit
