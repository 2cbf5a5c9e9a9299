package rate_limiter

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

func TestRedisLimiter_FailsOpenWhenRedisIsDown(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 200 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { rdb.Close() })

	l := NewRedisLimiter(rdb, 1, time.Minute)
	allowed, err := l.Allow(context.Background(), "192.0.2.1")
	if err == nil {
		t.Fatal("expected an error from an unreachable redis")
	}
	if !allowed {
		t.Error("expected the request to be allowed when redis is unavailable")
	}
}
