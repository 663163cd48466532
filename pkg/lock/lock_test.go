package lock

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, token string) (*Service, *miniredis.Miniredis) {
	t.Helper()
	server, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(server.Close)

	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewService(client, token), server
}

func TestTryAcquireSingleFlight(t *testing.T) {
	svc, _ := newTestService(t, "holder-a")
	ctx := context.Background()

	require.True(t, svc.TryAcquire(ctx, "lock:issue:1:dev_agent", time.Minute))
	require.False(t, svc.TryAcquire(ctx, "lock:issue:1:dev_agent", time.Minute))
}

func TestReleaseAllowsReacquire(t *testing.T) {
	svc, _ := newTestService(t, "holder-a")
	ctx := context.Background()
	key := "lock:issue:1:dev_agent"

	require.True(t, svc.TryAcquire(ctx, key, time.Minute))
	svc.Release(ctx, key)
	require.True(t, svc.TryAcquire(ctx, key, time.Minute))
}

func TestReleaseDoesNotStealForeignLock(t *testing.T) {
	server, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(server.Close)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	svcA := NewService(client, "holder-a")
	svcB := NewService(client, "holder-b")
	ctx := context.Background()
	key := "lock:issue:1:dev_agent"

	require.True(t, svcA.TryAcquire(ctx, key, time.Minute))
	// svcB never held the lock; its release must be a no-op.
	svcB.Release(ctx, key)
	require.False(t, svcA.TryAcquire(ctx, key, time.Minute), "lock should still be held by A")
}

func TestTryAcquireUnreachableFailsOpen(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
	t.Cleanup(func() { _ = client.Close() })
	svc := NewService(client, "holder-a")

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	require.True(t, svc.TryAcquire(ctx, "lock:issue:1:dev_agent", time.Minute))
}
