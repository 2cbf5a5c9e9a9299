package rate_limiter

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "ratelimit:products:"

// RedisLimiter counts requests per client in fixed windows shared by every
// instance pointing at the same Redis.
type RedisLimiter struct {
	rdb      *redis.Client
	requests int
	window   time.Duration
	now      func() time.Time
}

func NewRedisLimiter(rdb *redis.Client, requests int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{rdb: rdb, requests: requests, window: window, now: time.Now}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	windowStart := l.now().Truncate(l.window).Unix()
	redisKey := fmt.Sprintf("%s%s:%d", keyPrefix, key, windowStart)

	count, err := l.rdb.Incr(ctx, redisKey).Result()
	if err != nil {
		return true, err
	}
	if count == 1 {
		if err := l.rdb.Expire(ctx, redisKey, l.window).Err(); err != nil {
			return true, err
		}
	}
	return count <= int64(l.requests), nil
}
