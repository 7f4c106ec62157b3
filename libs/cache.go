package libs

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// OrderKey is the cache key convention shared by the command path and the
// reconciliation consumer.
func OrderKey(orderID int) string {
	return fmt.Sprintf("order:%d", orderID)
}

// SnapshotCache stores serialized order snapshots in Redis. Entries are
// best-effort mirrors of the durable store and carry no lifetime guarantee.
type SnapshotCache struct {
	rdb *redis.Client
}

func NewSnapshotCache(rdb *redis.Client) *SnapshotCache {
	return &SnapshotCache{rdb: rdb}
}

// Get returns the cached snapshot, or nil when the key is absent.
func (c *SnapshotCache) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := c.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return value, nil
}

func (c *SnapshotCache) Set(ctx context.Context, key string, value []byte) error {
	return c.rdb.Set(ctx, key, value, 0).Err()
}
