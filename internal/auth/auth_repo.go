package auth

import (
	"context"
	"time"

	"github.com/Valentina9990/top-talent/internal/cache"
)

const revokedTokenKeyPrefix = "blacklist:token:"

// TokenStore tracks revoked token ids until the tokens would have expired.
type TokenStore interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsBlacklisted(ctx context.Context, tokenID string) bool
}

// RedisTokenStore keeps revocations in Redis. When Redis is unreachable
// nothing is revoked and every token counts as live.
type RedisTokenStore struct {
	cache *cache.Client
}

var _ TokenStore = (*RedisTokenStore)(nil)

func NewTokenStore(c *cache.Client) *RedisTokenStore {
	return &RedisTokenStore{cache: c}
}

// Revoke blacklists tokenID for ttl. Tokens that already expired are skipped.
func (s *RedisTokenStore) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if tokenID == "" || ttl <= 0 {
		return nil
	}
	return s.cache.Set(ctx, revokedTokenKeyPrefix+tokenID, []byte("1"), ttl)
}

func (s *RedisTokenStore) IsBlacklisted(ctx context.Context, tokenID string) bool {
	data, err := s.cache.Get(ctx, revokedTokenKeyPrefix+tokenID)
	if err != nil {
		return false
	}
	return data != nil
}
