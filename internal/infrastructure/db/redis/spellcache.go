package redis

import (
	"context"
	"crypto/sha256"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const spellCacheTTL = time.Hour

// SpellCache caches spelling verdicts in Redis so repeated submissions of the
// same text skip the external speller.
// Key format: spell:<sha256_of_content>, value "1" (clean) or "0" (flagged).
type SpellCache struct {
	client *redis.Client
}

// NewSpellCache creates a SpellCache wrapping the given Redis client.
func NewSpellCache(client *redis.Client) *SpellCache {
	return &SpellCache{client: client}
}

// Get reports whether a verdict is cached for text and, if so, whether the
// text was clean.
func (s *SpellCache) Get(ctx context.Context, text string) (clean bool, found bool, err error) {
	val, err := s.client.Get(ctx, s.key(text)).Result()
	if err == redis.Nil {
		return false, false, nil
	}
	if err != nil {
		return false, false, fmt.Errorf("spell cache get: %w", err)
	}
	return val == "1", true, nil
}

// Set records the verdict for text (expires after spellCacheTTL).
func (s *SpellCache) Set(ctx context.Context, text string, clean bool) error {
	val := "0"
	if clean {
		val = "1"
	}
	return s.client.Set(ctx, s.key(text), val, spellCacheTTL).Err()
}

func (s *SpellCache) key(text string) string {
	sum := sha256.Sum256([]byte(text))
	return fmt.Sprintf("spell:%x", sum)
}
