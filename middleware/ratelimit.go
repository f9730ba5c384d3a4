package middleware

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// AttemptLimiter bounds how often a client may hit a guarded endpoint
// within a window.
type AttemptLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// LoginRateLimit throttles login attempts per client IP. A limiter outage
// fails open so admins are not locked out by a redis hiccup.
func LoginRateLimit(limiter AttemptLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, err := limiter.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			c.Next()
			return
		}
		if !ok {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "عدد المحاولات كثير، يرجى المحاولة لاحقاً"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// RedisLimiter counts attempts in redis with a fixed expiry window, shared
// across server instances.
type RedisLimiter struct {
	rdb    *redis.Client
	max    int64
	window time.Duration
}

func NewRedisLimiter(rdb *redis.Client, max int64, window time.Duration) *RedisLimiter {
	return &RedisLimiter{rdb: rdb, max: max, window: window}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	redisKey := "login_attempts:" + key
	n, err := l.rdb.Incr(ctx, redisKey).Result()
	if err != nil {
		return false, err
	}
	if n == 1 {
		l.rdb.Expire(ctx, redisKey, l.window)
	}
	return n <= l.max, nil
}

// MemoryLimiter is the in-process fallback used when no redis is
// configured; attempts are tracked per key with a sliding window.
type MemoryLimiter struct {
	mu     sync.Mutex
	max    int
	window time.Duration
	hits   map[string][]time.Time
}

func NewMemoryLimiter(max int, window time.Duration) *MemoryLimiter {
	return &MemoryLimiter{max: max, window: window, hits: make(map[string][]time.Time)}
}

func (l *MemoryLimiter) Allow(_ context.Context, key string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	cutoff := now.Add(-l.window)
	kept := l.hits[key][:0]
	for _, t := range l.hits[key] {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}
	kept = append(kept, now)
	l.hits[key] = kept
	return len(kept) <= l.max, nil
}
