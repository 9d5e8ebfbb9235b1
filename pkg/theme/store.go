package theme

import (
	"context"
	"sync"
)

// Store persists the theme preference. Load may return values that are not
// valid themes; the Manager normalizes them.
type Store interface {
	Load(ctx context.Context) (Theme, error)
	Save(ctx context.Context, t Theme) error
}

// Watcher is implemented by stores that can report external changes.
type Watcher interface {
	Watch(ctx context.Context, onChange func(Theme)) error
}

// MemoryStore keeps the preference in process memory.
type MemoryStore struct {
	mu    sync.RWMutex
	theme Theme
	set   bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Load(context.Context) (Theme, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.set {
		return "", ErrNotFound
	}
	return s.theme, nil
}

func (s *MemoryStore) Save(_ context.Context, t Theme) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.theme, s.set = t, true
	return nil
}
