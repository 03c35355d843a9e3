package redis

import (
	"boatshow-server/internal/config"
	"boatshow-server/internal/observability"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

var ErrClientNotInitialized = errors.New("redis client not initialized")

// Client wraps the Redis client with observability
type Client struct {
	client *redis.Client
	logger *observability.Logger
}

// NewClient creates a new Redis client. Returns nil when Redis is disabled.
func NewClient(cfg config.RedisConfig, logger *observability.Logger) (*Client, error) {
	if !cfg.Enabled {
		logger.Info(context.Background(), "Redis is disabled, skipping client initialization")
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr(),
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 5,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "redis_addr", Value: cfg.Addr()},
		observability.Field{Key: "redis_db", Value: cfg.DB},
	)
	logger.Info(ctx, "successfully connected to Redis")

	return &Client{
		client: client,
		logger: logger,
	}, nil
}

// Wrap builds a Client around an existing go-redis client.
func Wrap(client *redis.Client, logger *observability.Logger) *Client {
	return &Client{client: client, logger: logger}
}

// GetClient returns the underlying Redis client
func (c *Client) GetClient() *redis.Client {
	if c == nil {
		return nil
	}
	return c.client
}

// Close closes the Redis connection
func (c *Client) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}

// IsEnabled reports whether the client is usable
func (c *Client) IsEnabled() bool {
	return c != nil && c.client != nil
}

// slidingWindowScript trims a sorted-set window, counts what is left and
// records the hit only when under the limit.
// KEYS[1] window key. ARGV: now ms, window ms, limit, member.
// Returns {allowed, count after the call, oldest score in ms}.
var slidingWindowScript = redis.NewScript(`
local key = KEYS[1]
local now = tonumber(ARGV[1])
local window = tonumber(ARGV[2])
local limit = tonumber(ARGV[3])

redis.call('ZREMRANGEBYSCORE', key, '-inf', now - window)
local count = redis.call('ZCARD', key)
if count >= limit then
  local oldest = redis.call('ZRANGE', key, 0, 0, 'WITHSCORES')
  local oldestScore = now
  if oldest[2] then
    oldestScore = tonumber(oldest[2])
  end
  return {0, count, oldestScore}
end

redis.call('ZADD', key, now, ARGV[4])
redis.call('PEXPIRE', key, window * 2)
local first = redis.call('ZRANGE', key, 0, 0, 'WITHSCORES')
return {1, count + 1, tonumber(first[2])}
`)

// WindowHit is the outcome of one SlidingWindowHit call
type WindowHit struct {
	Allowed bool
	Count   int64
	Oldest  time.Time
}

// SlidingWindowHit atomically records a hit on key at now unless limit hits
// already fall inside the trailing window.
func (c *Client) SlidingWindowHit(ctx context.Context, key string, now time.Time, window time.Duration, limit int) (WindowHit, error) {
	if !c.IsEnabled() {
		return WindowHit{}, ErrClientNotInitialized
	}

	nowMs := now.UnixMilli()
	member := fmt.Sprintf("%d-%s", nowMs, uuid.NewString())
	res, err := slidingWindowScript.Run(ctx, c.client, []string{key}, nowMs, window.Milliseconds(), limit, member).Int64Slice()
	if err != nil {
		return WindowHit{}, fmt.Errorf("redis sliding window: %w", err)
	}
	if len(res) != 3 {
		return WindowHit{}, fmt.Errorf("redis sliding window: unexpected reply %v", res)
	}

	return WindowHit{
		Allowed: res[0] == 1,
		Count:   res[1],
		Oldest:  time.UnixMilli(res[2]).UTC(),
	}, nil
}
