package lock

import (
	"context"
	"fmt"
	"time"

	"github.com/copdrey/resilience-backend/internal/service/ports"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

const (
	lockTTL       = 30 * time.Second
	retryInterval = 100 * time.Millisecond
	maxRetries    = 30
)

// RedisLocker serializes webhook processing per event id across instances.
// SET NX with a TTL takes the lock; the Lua script releases it only when the
// stored value still identifies this holder, so an expired lock taken over
// by another instance is never released by the original one.
type RedisLocker struct {
	client *redis.Client
}

func NewRedisLocker(client *redis.Client) *RedisLocker {
	return &RedisLocker{client: client}
}

func (l *RedisLocker) Lock(ctx context.Context, key string) (ports.Unlocker, error) {
	lockKey := "gc:event:lock:" + key
	holder := uuid.New().String()

	for i := 0; i < maxRetries; i++ {
		ok, err := l.client.SetNX(ctx, lockKey, holder, lockTTL).Result()
		if err != nil {
			return nil, fmt.Errorf("acquire lock %s: %w", key, err)
		}
		if ok {
			return &redisUnlocker{client: l.client, key: lockKey, holder: holder}, nil
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(retryInterval):
		}
	}

	return nil, fmt.Errorf("acquire lock %s: retries exhausted", key)
}

type redisUnlocker struct {
	client *redis.Client
	key    string
	holder string
}

const releaseScript = `
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
else
	return 0
end
`

func (u *redisUnlocker) Unlock(ctx context.Context) error {
	if _, err := u.client.Eval(ctx, releaseScript, []string{u.key}, u.holder).Result(); err != nil {
		return fmt.Errorf("release lock %s: %w", u.key, err)
	}
	return nil
}
