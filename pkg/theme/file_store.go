package theme

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"gopkg.in/yaml.v3"

	"github.com/rojgarpatra/uikit/pkg/logger"
	"github.com/rojgarpatra/uikit/pkg/ratelimiter"
)

const defaultWatchDebounce = 100 * time.Millisecond

type fileDoc struct {
	Theme     Theme     `yaml:"theme"`
	UpdatedAt time.Time `yaml:"updated_at,omitempty"`
}

// FileStore keeps the preference in a small YAML file.
type FileStore struct {
	path     string
	debounce time.Duration
	logger   *slog.Logger
	metrics  *ratelimiter.Metrics
	now      func() time.Time
}

// FileOption configures a FileStore.
type FileOption func(*FileStore)

// WithWatchDebounce sets how long Watch waits for editor writes to settle.
func WithWatchDebounce(d time.Duration) FileOption {
	return func(s *FileStore) {
		if d >= 0 {
			s.debounce = d
		}
	}
}

func WithFileLogger(l *slog.Logger) FileOption {
	return func(s *FileStore) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithWatchMetrics counts watch events through the rate limiter metrics.
func WithWatchMetrics(m *ratelimiter.Metrics) FileOption {
	return func(s *FileStore) { s.metrics = m }
}

func NewFileStore(path string, opts ...FileOption) *FileStore {
	s := &FileStore{
		path:     path,
		debounce: defaultWatchDebounce,
		logger:   slog.Default(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *FileStore) Path() string { return s.path }

func (s *FileStore) Load(context.Context) (Theme, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", errors.Join(ErrLoadFailed, err)
	}

	var doc fileDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return "", errors.Join(ErrLoadFailed, err)
	}
	if doc.Theme == "" {
		return "", ErrNotFound
	}
	return doc.Theme, nil
}

// Save writes the file atomically through a temporary file in the same directory.
func (s *FileStore) Save(_ context.Context, t Theme) error {
	data, err := yaml.Marshal(fileDoc{Theme: t, UpdatedAt: s.now().UTC()})
	if err != nil {
		return errors.Join(ErrSaveFailed, err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Join(ErrSaveFailed, err)
	}

	tmp, err := os.CreateTemp(dir, ".theme-*.yaml")
	if err != nil {
		return errors.Join(ErrSaveFailed, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return errors.Join(ErrSaveFailed, err)
	}
	if err := tmp.Close(); err != nil {
		return errors.Join(ErrSaveFailed, err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return errors.Join(ErrSaveFailed, err)
	}
	return nil
}

// Watch calls onChange with the stored theme whenever the file is written,
// created or replaced by another process. Bursts of filesystem events are
// debounced. The parent directory is watched so that editors replacing the
// file by rename are noticed. Watching stops when ctx is done.
func (s *FileStore) Watch(ctx context.Context, onChange func(Theme)) error {
	if onChange == nil {
		return ErrNilCallback
	}

	target, err := filepath.Abs(s.path)
	if err != nil {
		return fmt.Errorf("resolve theme file: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("create theme directory: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create file watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("watch theme directory: %w", err)
	}

	reload, err := ratelimiter.NewDebouncer(func(ops ...fsnotify.Op) {
		t, err := s.Load(ctx)
		if err != nil {
			s.logger.WarnContext(ctx, "theme file reload failed",
				logger.Component("theme"),
				slog.String("path", s.path),
				logger.Error(err),
			)
			return
		}
		onChange(t)
	}, s.debounce,
		ratelimiter.WithName("theme-file-watch"),
		ratelimiter.WithLogger(s.logger),
		ratelimiter.WithMetrics(s.metrics),
	)
	if err != nil {
		_ = watcher.Close()
		return err
	}

	go func() {
		defer func() {
			reload.Stop()
			_ = watcher.Close()
		}()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				name, err := filepath.Abs(ev.Name)
				if err != nil || name != target {
					continue
				}
				if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename) {
					reload.Call(ev.Op)
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				s.logger.ErrorContext(ctx, "theme file watcher error",
					logger.Component("theme"),
					logger.Error(err),
				)
			}
		}
	}()

	return nil
}
