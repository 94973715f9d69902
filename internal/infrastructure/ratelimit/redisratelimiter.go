package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisRateLimiter is a fixed-window counter shared by every instance that
// talks to the same Redis.
type RedisRateLimiter struct {
	client *redis.Client
	prefix string
	config Config
	now    func() time.Time
}

func NewRedisRateLimiter(client *redis.Client, prefix string, config Config) *RedisRateLimiter {
	if config.Window <= 0 {
		config.Window = time.Minute
	}
	return &RedisRateLimiter{
		client: client,
		prefix: prefix,
		config: config,
		now:    time.Now,
	}
}

func (l *RedisRateLimiter) Allow(ctx context.Context, key string) (bool, error) {
	redisKey := l.getKey(key)

	pipe := l.client.TxPipeline()
	incr := pipe.Incr(ctx, redisKey)
	pipe.ExpireNX(ctx, redisKey, l.config.Window+time.Second)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("failed to execute pipeline: %w", err)
	}

	return incr.Val() <= int64(l.config.Limit), nil
}

func (l *RedisRateLimiter) Remaining(ctx context.Context, key string) (int64, error) {
	count, err := l.client.Get(ctx, l.getKey(key)).Int64()
	if err == redis.Nil {
		return int64(l.config.Limit), nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read counter: %w", err)
	}

	remaining := int64(l.config.Limit) - count
	if remaining < 0 {
		remaining = 0
	}
	return remaining, nil
}

func (l *RedisRateLimiter) Reset(ctx context.Context, key string) error {
	return l.client.Del(ctx, l.getKey(key)).Err()
}

func (l *RedisRateLimiter) getKey(key string) string {
	bucket := l.now().Unix() / int64(l.config.Window.Seconds())
	return fmt.Sprintf("ratelimit:%s:%s:%d", l.prefix, key, bucket)
}
