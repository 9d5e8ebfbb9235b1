package theme

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultRedisKey is the key RedisStore uses when none is configured.
const DefaultRedisKey = "uikit:theme"

// RedisStore shares the preference between processes through a Redis key.
type RedisStore struct {
	client redis.Cmdable
	key    string
	ttl    time.Duration
}

// NewRedisStore stores the preference under key, or DefaultRedisKey when
// key is empty. A ttl of zero keeps the key forever.
func NewRedisStore(client redis.Cmdable, key string, ttl time.Duration) *RedisStore {
	if key == "" {
		key = DefaultRedisKey
	}
	return &RedisStore{client: client, key: key, ttl: ttl}
}

func (s *RedisStore) Load(ctx context.Context) (Theme, error) {
	v, err := s.client.Get(ctx, s.key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", errors.Join(ErrLoadFailed, err)
	}
	return Theme(v), nil
}

func (s *RedisStore) Save(ctx context.Context, t Theme) error {
	if err := s.client.Set(ctx, s.key, string(t), s.ttl).Err(); err != nil {
		return errors.Join(ErrSaveFailed, err)
	}
	return nil
}
