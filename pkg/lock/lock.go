// Package lock provides a distributed single-flight lock backed by Redis,
// used as an agent-concurrency guard: two AgentRunners for the same issue
// and role must never pass their column pre-flight check concurrently.
package lock

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ticketforge/kanbanengine/pkg/metrics"
)

// releaseScript performs a compare-and-delete: only the holder that set the
// token may release the key. Prevents a slow holder from releasing a lock
// that another process has since (re)acquired after TTL expiry.
const releaseScript = `
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
else
	return 0
end
`

// Service is a distributed single-flight lock with mandatory TTL.
type Service struct {
	client *redis.Client
	token  string
}

// NewService wraps a Redis client for lock operations. token identifies
// this process as the lock holder so Release can safely no-op if the lock
// has since been reclaimed by someone else.
func NewService(client *redis.Client, token string) *Service {
	return &Service{client: client, token: token}
}

// TryAcquire attempts to acquire key for ttl. If Redis is unreachable it
// returns true and logs a warning: availability is preferred over safety
// here, with the state machine's column pre-flight check acting as
// backstop against the rare double-run this allows.
func (s *Service) TryAcquire(ctx context.Context, key string, ttl time.Duration) bool {
	ok, err := s.client.SetNX(ctx, key, s.token, ttl).Result()
	if err != nil {
		slog.Warn("lock service unreachable, proceeding without lock", "key", key, "error", err)
		return true
	}
	if ok {
		metrics.SetActiveLocks(float64(s.client.DBSize(ctx).Val()))
	} else {
		metrics.RecordLockContention(key)
	}
	return ok
}

// Release drops key if and only if this Service's token is still the
// holder. Safe to call even if the lock already expired.
func (s *Service) Release(ctx context.Context, key string) {
	if err := s.client.Eval(ctx, releaseScript, []string{key}, s.token).Err(); err != nil {
		slog.Warn("lock release failed", "key", key, "error", err)
		return
	}
	metrics.SetActiveLocks(float64(s.client.DBSize(ctx).Val()))
}

// IssueRoleKey builds the lock key for a given issue/role pair, e.g.
// "agent_lock:dev_agent:abc123".
func IssueRoleKey(issueID, role string) string {
	return "agent_lock:" + role + ":" + issueID
}
