package locking

import (
	"context"
	"errors"
	"os"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestKeyedMutex_SerializesSameKey(t *testing.T) {
	t.Parallel()

	km := NewKeyedMutex()
	ctx := context.Background()

	var (
		wg      sync.WaitGroup
		inside  int32
		maxSeen int32
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock, err := km.Lock(ctx, "p1")
			require.NoError(t, err)
			defer unlock()

			n := atomic.AddInt32(&inside, 1)
			for {
				seen := atomic.LoadInt32(&maxSeen)
				if n <= seen || atomic.CompareAndSwapInt32(&maxSeen, seen, n) {
					break
				}
			}
			time.Sleep(time.Millisecond)
			atomic.AddInt32(&inside, -1)
		}()
	}
	wg.Wait()

	require.Equal(t, int32(1), maxSeen)
	require.Zero(t, km.size(), "idle keys should be dropped")
}

func TestKeyedMutex_IndependentKeys(t *testing.T) {
	t.Parallel()

	km := NewKeyedMutex()
	ctx := context.Background()

	unlockA, err := km.Lock(ctx, "a")
	require.NoError(t, err)
	defer unlockA()

	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	unlockB, err := km.Lock(ctx, "b")
	require.NoError(t, err)
	unlockB()

	require.Equal(t, 1, km.size())
}

func TestKeyedMutex_ContextDone(t *testing.T) {
	t.Parallel()

	km := NewKeyedMutex()
	unlock, err := km.Lock(context.Background(), "p1")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = km.Lock(ctx, "p1")
	require.True(t, errors.Is(err, context.DeadlineExceeded), "got: %v", err)

	unlock()
	require.Zero(t, km.size())
}

func TestKeyedMutex_UnlockTwice(t *testing.T) {
	t.Parallel()

	km := NewKeyedMutex()
	unlock, err := km.Lock(context.Background(), "p1")
	require.NoError(t, err)
	unlock()
	unlock()

	relock, err := km.Lock(context.Background(), "p1")
	require.NoError(t, err)
	relock()
	require.Zero(t, km.size())
}

// The Redis tests need a live server; set TEST_REDIS_URL to run them.
func redisLockerForTest(t *testing.T) *RedisLocker {
	t.Helper()

	url := os.Getenv("TEST_REDIS_URL")
	if url == "" {
		t.Skip("TEST_REDIS_URL not set")
	}
	client, err := Connect(url)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, client.Ping(ctx).Err())

	return NewRedisLocker(client, 5*time.Second)
}

func TestConnect(t *testing.T) {
	t.Parallel()

	client, err := Connect("redis://localhost:6379/2")
	require.NoError(t, err)
	require.Equal(t, "localhost:6379", client.Options().Addr)
	require.Equal(t, 2, client.Options().DB)
	_ = client.Close()

	client, err = Connect("cache:6380")
	require.NoError(t, err)
	require.Equal(t, "cache:6380", client.Options().Addr)
	_ = client.Close()

	_, err = Connect("redis://localhost:6379/notadb")
	require.Error(t, err)
}

func TestRedisLocker_ExclusiveUntilReleased(t *testing.T) {
	locker := redisLockerForTest(t)
	key := "test-" + time.Now().Format(time.RFC3339Nano)

	unlock, err := locker.Lock(context.Background(), key)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	_, err = locker.Lock(ctx, key)
	require.True(t, errors.Is(err, context.DeadlineExceeded), "got: %v", err)

	unlock()

	again, err := locker.Lock(context.Background(), key)
	require.NoError(t, err)
	again()
}

func TestRedisLocker_ReleaseKeepsForeignLock(t *testing.T) {
	locker := redisLockerForTest(t)
	key := "test-foreign-" + time.Now().Format(time.RFC3339Nano)
	ctx := context.Background()

	unlock, err := locker.Lock(ctx, key)
	require.NoError(t, err)

	// another holder takes the key over after expiry
	require.NoError(t, locker.client.Set(ctx, redisKeyPrefix+key, "someone-else", time.Minute).Err())
	unlock()

	val, err := locker.client.Get(ctx, redisKeyPrefix+key).Result()
	require.NoError(t, err)
	require.Equal(t, "someone-else", val)
	require.NoError(t, locker.client.Del(ctx, redisKeyPrefix+key).Err())
}
