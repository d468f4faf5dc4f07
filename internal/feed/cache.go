package feed

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Nainee99/bondeo/internal/post"
	"github.com/redis/go-redis/v9"
)

const homeKey = "feed:home:first"

// Cache keeps the first home feed page in Redis for a short while. Writes
// invalidate it, so a stale page never outlives the TTL or the next post.
type Cache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewCache(rdb *redis.Client) *Cache {
	return &Cache{rdb: rdb, ttl: 30 * time.Second}
}

func (c *Cache) GetHome(ctx context.Context) ([]post.PostWithCounts, bool) {
	val, err := c.rdb.Get(ctx, homeKey).Bytes()
	if err != nil {
		return nil, false
	}
	var items []post.PostWithCounts
	if json.Unmarshal(val, &items) != nil {
		return nil, false
	}
	return items, true
}

func (c *Cache) SetHome(ctx context.Context, items []post.PostWithCounts) {
	b, err := json.Marshal(items)
	if err != nil {
		return
	}
	_ = c.rdb.Set(ctx, homeKey, b, c.ttl).Err()
}

func (c *Cache) Invalidate(ctx context.Context) {
	_ = c.rdb.Del(ctx, homeKey).Err()
}
