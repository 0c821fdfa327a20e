package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/yonasBSD/klickbee-crm-sub001/internal/domain"
)

// StatsCache stores rendered dashboard statistics in Redis.
type StatsCache struct {
	rdb       redis.Cmdable
	namespace string
}

// NewStatsCache creates a StatsCache. Keys are prefixed with namespace.
func NewStatsCache(rdb redis.Cmdable, namespace string) *StatsCache {
	return &StatsCache{rdb: rdb, namespace: namespace}
}

func (c *StatsCache) key(userID uuid.UUID, rangeKey string) string {
	return fmt.Sprintf("%s:stats:%s:%s", c.namespace, userID, rangeKey)
}

// Get returns the cached stats, or nil on a miss.
func (c *StatsCache) Get(ctx context.Context, userID uuid.UUID, rangeKey string) (*domain.DashboardStats, error) {
	raw, err := c.rdb.Get(ctx, c.key(userID, rangeKey)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("stats cache get: %w", err)
	}

	var stats domain.DashboardStats
	if err := json.Unmarshal(raw, &stats); err != nil {
		return nil, fmt.Errorf("stats cache decode: %w", err)
	}
	return &stats, nil
}

// Set stores stats for ttl.
func (c *StatsCache) Set(ctx context.Context, userID uuid.UUID, rangeKey string, stats *domain.DashboardStats, ttl time.Duration) error {
	raw, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("stats cache encode: %w", err)
	}
	if err := c.rdb.Set(ctx, c.key(userID, rangeKey), raw, ttl).Err(); err != nil {
		return fmt.Errorf("stats cache set: %w", err)
	}
	return nil
}
