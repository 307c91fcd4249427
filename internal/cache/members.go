// Package cache holds the redis-backed member snapshot cache. It replaces
// the original ambient key-value mirror with an explicit cache the member
// repository consults first, refreshed with a TTL-based staleness policy.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/akash6998s/langarsewa-go/internal/models"
)

const membersKey = "langarsewa:members"

// Members caches the full member list snapshot.
type Members struct {
	client *redis.Client
	ttl    time.Duration
}

// New connects to redis with short timeouts and returns a member cache.
func New(addr string, ttl time.Duration) *Members {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  1 * time.Second,
		WriteTimeout: 1 * time.Second,
	})
	return &Members{client: client, ttl: ttl}
}

// Healthy verifies redis connectivity.
func (c *Members) Healthy(ctx context.Context) bool {
	if c == nil || c.client == nil {
		return false
	}
	return c.client.Ping(ctx).Err() == nil
}

// Snapshot returns the cached member list, or (nil, false) on a miss. Cache
// failures count as misses so reads fall through to the database.
func (c *Members) Snapshot(ctx context.Context) ([]models.Member, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}
	raw, err := c.client.Get(ctx, membersKey).Bytes()
	if err != nil {
		return nil, false
	}
	var members []models.Member
	if err := json.Unmarshal(raw, &members); err != nil {
		return nil, false
	}
	return members, true
}

// SetSnapshot stores the member list with the configured TTL.
func (c *Members) SetSnapshot(ctx context.Context, members []models.Member) {
	if c == nil || c.client == nil {
		return
	}
	raw, err := json.Marshal(members)
	if err != nil {
		return
	}
	c.client.Set(ctx, membersKey, raw, c.ttl)
}

// Invalidate drops the snapshot after any member mutation.
func (c *Members) Invalidate(ctx context.Context) {
	if c == nil || c.client == nil {
		return
	}
	c.client.Del(ctx, membersKey)
}
