package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Client is a read cache over Redis that never propagates connectivity
// problems: with Redis unreachable every Get reads as a miss and every
// Set/Delete is a no-op. A nil *Client carries the same contract, so
// callers can run without a cache at all.
type Client struct {
	rdb *redis.Client
}

// New connects to the Redis instance at addr.
func New(addr, password string, db int) *Client {
	return &Client{rdb: redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})}
}

func (c *Client) usable() bool {
	return c != nil && c.rdb != nil
}

// Get returns the cached value, or nil on a miss or an unreachable Redis.
func (c *Client) Get(ctx context.Context, key string) ([]byte, error) {
	if !c.usable() {
		return nil, nil
	}
	data, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		// redis.Nil and transport errors alike read as a miss.
		return nil, nil
	}
	return data, nil
}

// Set stores value under key for ttl. Errors are swallowed.
func (c *Client) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if !c.usable() {
		return nil
	}
	c.rdb.Set(ctx, key, value, ttl)
	return nil
}

// Delete drops key. Errors are swallowed.
func (c *Client) Delete(ctx context.Context, key string) error {
	if !c.usable() {
		return nil
	}
	c.rdb.Del(ctx, key)
	return nil
}
