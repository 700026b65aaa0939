package utils

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

var ErrLockNotAcquired = errors.New("entity lock not acquired")

// KeyedLocker serializes critical sections per entity key. The rating
// recompute uses it so concurrent recomputes for the same service or
// provider do not interleave their read-mean-write cycles.
type KeyedLocker interface {
	WithLock(ctx context.Context, key string, fn func(ctx context.Context) error) error
}

type redisKeyedLocker struct {
	client  *redis.Client
	ttl     time.Duration
	retries int
	backoff time.Duration
}

// NewRedisKeyedLocker creates a locker backed by a per-key Redis key.
func NewRedisKeyedLocker(client *redis.Client, ttl time.Duration) KeyedLocker {
	return &redisKeyedLocker{
		client:  client,
		ttl:     ttl,
		retries: 5,
		backoff: 50 * time.Millisecond,
	}
}

// WithLock runs fn while holding the lock for key. Acquisition is
// retried a few times; callers decide what to do on ErrLockNotAcquired.
func (l *redisKeyedLocker) WithLock(ctx context.Context, key string, fn func(ctx context.Context) error) error {
	lockKey := fmt.Sprintf("lock:%s", key)
	token := uuid.NewString()

	acquired := false
	for attempt := 0; attempt <= l.retries; attempt++ {
		ok, err := l.client.SetNX(ctx, lockKey, token, l.ttl).Result()
		if err != nil {
			return fmt.Errorf("acquire lock %s: %w", key, err)
		}
		if ok {
			acquired = true
			break
		}
		select {
		case <-time.After(l.backoff):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	if !acquired {
		return ErrLockNotAcquired
	}

	defer func() {
		_ = l.release(ctx, lockKey, token)
	}()

	lockCtx, cancel := context.WithTimeout(ctx, l.ttl)
	defer cancel()

	return fn(lockCtx)
}

var unlockScript = redis.NewScript(`
local val = redis.call("GET", KEYS[1])
if val == ARGV[1] then
  return redis.call("DEL", KEYS[1])
else
  return 0
end
`)

func (l *redisKeyedLocker) release(ctx context.Context, key, token string) error {
	_, err := unlockScript.Run(ctx, l.client, []string{key}, token).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("release lock %s: %w", key, err)
	}
	return nil
}
