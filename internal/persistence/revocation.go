package persistence

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// RevocationCmdable is the subset of go-redis used by RedisRevocationList.
// Entries are written by the token issuer, which lives outside this service.
type RevocationCmdable interface {
	Exists(ctx context.Context, keys ...string) *redis.IntCmd
}

// RedisRevocationList checks token IDs against expiring Redis keys.
type RedisRevocationList struct {
	client RevocationCmdable
	prefix string
}

// NewRedisRevocationList builds a revocation list keyed by prefix+jti.
func NewRedisRevocationList(client RevocationCmdable, prefix string) *RedisRevocationList {
	return &RedisRevocationList{client: client, prefix: prefix}
}

// IsRevoked reports whether tokenID has been revoked.
func (l *RedisRevocationList) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := l.client.Exists(ctx, l.prefix+tokenID).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
