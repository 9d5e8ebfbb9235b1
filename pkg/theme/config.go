package theme

import (
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store backends accepted by Config.Store.
const (
	StoreMemory = "memory"
	StoreFile   = "file"
	StoreRedis  = "redis"
)

// Config selects and configures the preference store.
type Config struct {
	Store         string        `env:"THEME_STORE" envDefault:"file"`
	File          string        `env:"THEME_FILE" envDefault:".uikit/theme.yaml"`
	RedisKey      string        `env:"THEME_REDIS_KEY" envDefault:"uikit:theme"`
	RedisTTL      time.Duration `env:"THEME_REDIS_TTL" envDefault:"0s"`
	WatchDebounce time.Duration `env:"THEME_WATCH_DEBOUNCE" envDefault:"100ms"`
}

// NewStore builds the store named by cfg.Store. client is only used by the
// redis backend and must then be non-nil.
func NewStore(cfg Config, client redis.Cmdable, opts ...FileOption) (Store, error) {
	switch cfg.Store {
	case StoreMemory:
		return NewMemoryStore(), nil
	case StoreFile, "":
		return NewFileStore(cfg.File, append([]FileOption{WithWatchDebounce(cfg.WatchDebounce)}, opts...)...), nil
	case StoreRedis:
		if client == nil {
			return nil, fmt.Errorf("%w: redis store needs a client", ErrUnknownStore)
		}
		return NewRedisStore(client, cfg.RedisKey, cfg.RedisTTL), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStore, cfg.Store)
	}
}
