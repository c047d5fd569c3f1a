package locking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"job-marketplace/utils"

	"github.com/redis/go-redis/v9"
)

const (
	redisKeyPrefix      = "marketplace:lock:"
	defaultRetryBackoff = 25 * time.Millisecond
)

// releaseScript deletes the lock only while it still carries our token
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// Connect initializes a Redis client from URL or host:port input
func Connect(redisURL string) (*redis.Client, error) {
	if strings.HasPrefix(redisURL, "redis://") || strings.HasPrefix(redisURL, "rediss://") {
		opt, err := redis.ParseURL(redisURL)
		if err != nil {
			return nil, fmt.Errorf("parse redis url: %w", err)
		}
		return redis.NewClient(opt), nil
	}
	return redis.NewClient(&redis.Options{Addr: redisURL}), nil
}

// RedisLocker is a Locker shared by every process connected to the same Redis
type RedisLocker struct {
	client  redis.UniversalClient
	ttl     time.Duration
	backoff time.Duration
}

// NewRedisLocker creates a locker whose locks expire after ttl if never released
func NewRedisLocker(client redis.UniversalClient, ttl time.Duration) *RedisLocker {
	return &RedisLocker{client: client, ttl: ttl, backoff: defaultRetryBackoff}
}

// Lock polls SET NX until it owns key or ctx is done
func (l *RedisLocker) Lock(ctx context.Context, key string) (func(), error) {
	redisKey := redisKeyPrefix + key
	token := utils.GenerateID()

	for {
		ok, err := l.client.SetNX(ctx, redisKey, token, l.ttl).Result()
		if err != nil {
			return nil, fmt.Errorf("acquire lock %s: %w", key, err)
		}
		if ok {
			break
		}

		timer := time.NewTimer(l.backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, fmt.Errorf("acquire lock %s: %w", key, ctx.Err())
		case <-timer.C:
		}
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			err := releaseScript.Run(context.Background(), l.client, []string{redisKey}, token).Err()
			if err != nil && !errors.Is(err, redis.Nil) {
				utils.Warn("RedisLocker: failed to release lock", map[string]any{
					"key":   key,
					"error": err.Error(),
				})
			}
		})
	}, nil
}
