package forms

import (
	"maps"
	"sync"
)

// ErrorSurface displays per-field error messages next to the inputs.
type ErrorSurface interface {
	ShowError(field, message string)
	ClearError(field string)
}

// Button is the form's submit button.
type Button interface {
	Disable(label string)
}

// MemorySurface records error and button state instead of drawing it.
// It implements both ErrorSurface and Button and is safe for concurrent use.
type MemorySurface struct {
	mu       sync.RWMutex
	errors   map[string]string
	disabled bool
	label    string
}

func NewMemorySurface() *MemorySurface {
	return &MemorySurface{errors: make(map[string]string)}
}

// ShowError replaces any message already shown for field.
func (s *MemorySurface) ShowError(field, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errors[field] = message
}

func (s *MemorySurface) ClearError(field string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.errors, field)
}

func (s *MemorySurface) Disable(label string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.disabled = true
	s.label = label
}

// Error returns the message shown for field, if any.
func (s *MemorySurface) Error(field string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	msg, ok := s.errors[field]
	return msg, ok
}

// Errors returns a copy of every shown message keyed by field name.
func (s *MemorySurface) Errors() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return maps.Clone(s.errors)
}

// Button reports whether the submit button is disabled and its label.
func (s *MemorySurface) Button() (disabled bool, label string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.disabled, s.label
}
