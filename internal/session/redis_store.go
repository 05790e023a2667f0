package session

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type RedisStore struct {
	client redis.Cmdable
	prefix string
	now    func() time.Time
}

// NewRedisStore creates a Redis-backed revocation store.
func NewRedisStore(client redis.Cmdable) *RedisStore {
	return &RedisStore{
		client: client,
		prefix: "session:revoked:",
		now:    time.Now,
	}
}

func (r *RedisStore) key(sessionID string) string {
	return r.prefix + sessionID
}

func (r *RedisStore) Revoke(ctx context.Context, sessionID string, until time.Time) error {
	if sessionID == "" {
		return fmt.Errorf("session: missing session_id")
	}

	ttl := until.Sub(r.now())
	if ttl <= 0 {
		// already expired, nothing to remember
		return nil
	}

	if err := r.client.Set(ctx, r.key(sessionID), "1", ttl).Err(); err != nil {
		return fmt.Errorf("session: revoke: %w", err)
	}
	return nil
}

func (r *RedisStore) IsRevoked(ctx context.Context, sessionID string) (bool, error) {
	n, err := r.client.Exists(ctx, r.key(sessionID)).Result()
	if err != nil {
		return false, fmt.Errorf("session: revocation lookup: %w", err)
	}
	return n > 0, nil
}
