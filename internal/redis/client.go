package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// Client caches reporting query results so repeated dashboard polls do not
// hit the database on every request.
type Client struct {
	rdb *redis.Client
}

var ErrCacheMiss = fmt.Errorf("cache miss")

func Initialize(redisURL string) (*Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	rdb := redis.NewClient(opt)

	// Test connection
	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Client{rdb: rdb}, nil
}

// Report caching

func (c *Client) SetOrderCount(count int64, ttl time.Duration) error {
	ctx := context.Background()
	return c.rdb.Set(ctx, "report:ordercount", count, ttl).Err()
}

func (c *Client) GetOrderCount() (int64, error) {
	ctx := context.Background()
	val, err := c.rdb.Get(ctx, "report:ordercount").Int64()
	if err != nil {
		if err == redis.Nil {
			return 0, ErrCacheMiss
		}
		return 0, fmt.Errorf("failed to get order count: %w", err)
	}
	return val, nil
}

func (c *Client) SetTopSelling(limit int, report interface{}, ttl time.Duration) error {
	ctx := context.Background()
	jsonData, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal top selling report: %w", err)
	}

	key := fmt.Sprintf("report:topselling:%d", limit)
	return c.rdb.Set(ctx, key, jsonData, ttl).Err()
}

func (c *Client) GetTopSelling(limit int, dest interface{}) error {
	ctx := context.Background()
	key := fmt.Sprintf("report:topselling:%d", limit)
	val, err := c.rdb.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return ErrCacheMiss
		}
		return fmt.Errorf("failed to get top selling report: %w", err)
	}

	return json.Unmarshal([]byte(val), dest)
}

// InvalidateReports drops every cached report. Called after a mutation so
// stale counts and rankings are never served.
func (c *Client) InvalidateReports() error {
	ctx := context.Background()
	iter := c.rdb.Scan(ctx, 0, "report:*", 0).Iterator()
	for iter.Next(ctx) {
		if err := c.rdb.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

// Close Redis connection
func (c *Client) Close() error {
	return c.rdb.Close()
}
