// internal/catalog/cache.go
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"saarthi-workers/internal/models"
)

// SnapshotCache keeps a JSON snapshot of the catalog in Redis so restarting
// workers can come up without hitting PostgreSQL.
type SnapshotCache struct {
	client *redis.Client
	key    string
	ttl    time.Duration
}

func NewSnapshotCache(client *redis.Client, key string, ttl time.Duration) *SnapshotCache {
	if key == "" {
		key = "catalog:snapshot"
	}
	return &SnapshotCache{client: client, key: key, ttl: ttl}
}

// Save stores the catalog snapshot with the configured TTL.
func (c *SnapshotCache) Save(ctx context.Context, opportunities []models.Opportunity) error {
	data, err := json.Marshal(opportunities)
	if err != nil {
		return fmt.Errorf("encode catalog snapshot: %w", err)
	}
	if err := c.client.Set(ctx, c.key, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("store catalog snapshot: %w", err)
	}
	return nil
}

// Load returns the cached snapshot. A cache miss returns redis.Nil.
func (c *SnapshotCache) Load(ctx context.Context) ([]models.Opportunity, error) {
	data, err := c.client.Get(ctx, c.key).Bytes()
	if err != nil {
		return nil, err
	}
	var opportunities []models.Opportunity
	if err := json.Unmarshal(data, &opportunities); err != nil {
		return nil, fmt.Errorf("decode catalog snapshot: %w", err)
	}
	return opportunities, nil
}

// Invalidate removes the snapshot, forcing the next load to hit the store.
func (c *SnapshotCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, c.key).Err()
}
