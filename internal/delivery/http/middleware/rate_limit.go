package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"go-izcloud-backend/internal/delivery/http/response"
	"go-izcloud-backend/pkg/logger"
	"go-izcloud-backend/pkg/redis"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
)

// RateLimitConfig holds configuration for rate limiting
type RateLimitConfig struct {
	// Requests per window
	Limit int
	// Time window duration
	Window time.Duration
	// Custom key extractor (default: forwarded-IP based)
	KeyFunc func(*gin.Context) string
	// Key prefix so the contact and GDPR forms keep separate buckets
	KeyPrefix string
}

// rateLimitEntry tracks request count for a key (in-memory store). The
// mutex serializes the read-modify-write so two simultaneous requests from
// one client cannot both slip under the limit.
type rateLimitEntry struct {
	count   int
	resetAt time.Time
	mu      sync.Mutex
}

var (
	rateLimitStore = sync.Map{}
	cleanupOnce    sync.Once
)

// Lua script for an atomic fixed-window check. A key at or over the limit
// is denied WITHOUT incrementing, so the counter keeps meaning "accepted
// requests this window".
// KEYS[1] = counter key
// ARGV[1] = TTL in seconds
// ARGV[2] = max requests per window
// Returns: [allowed(0/1), count, ttl_remaining]
const rateLimitLuaScript = `
local max = tonumber(ARGV[2])
local count = tonumber(redis.call('GET', KEYS[1]) or '0')
if count >= max then
    return {0, count, redis.call('TTL', KEYS[1])}
end
count = redis.call('INCR', KEYS[1])
if count == 1 then
    redis.call('EXPIRE', KEYS[1], ARGV[1])
end
return {1, count, redis.call('TTL', KEYS[1])}
`

// startCleanup runs a background goroutine that sweeps expired entries,
// bounding memory growth from one-off clients. Best-effort: an entry may
// briefly outlive its window between sweeps, but checkInMemory treats a
// past-reset record as absent anyway.
func startCleanup() {
	go func() {
		ticker := time.NewTicker(5 * time.Minute)
		for range ticker.C {
			now := time.Now()
			rateLimitStore.Range(func(key, value interface{}) bool {
				entry := value.(*rateLimitEntry)
				entry.mu.Lock()
				if now.After(entry.resetAt) {
					rateLimitStore.Delete(key)
				}
				entry.mu.Unlock()
				return true
			})
		}
	}()
}

// ClientKey derives the rate-limit identifier for a request: the first
// hop of the forwarded-for chain, else the connecting-IP header, else the
// literal "unknown". Unresolvable clients sharing one bucket is an
// accepted tradeoff for these low-stakes endpoints.
func ClientKey(c *gin.Context) string {
	if xff := c.GetHeader("X-Forwarded-For"); xff != "" {
		if first := strings.TrimSpace(strings.Split(xff, ",")[0]); first != "" {
			return first
		}
	}
	if ip := c.GetHeader("CF-Connecting-IP"); ip != "" {
		return ip
	}
	return "unknown"
}

// ContactRateLimitConfig limits contact form submissions per client.
func ContactRateLimitConfig(limit int, window time.Duration) RateLimitConfig {
	return RateLimitConfig{
		Limit:     limit,
		Window:    window,
		KeyPrefix: "rl:contact:",
		KeyFunc:   ClientKey,
	}
}

// GDPRRateLimitConfig limits data-rights submissions per client. Stricter
// than the contact form: such requests are rarer and higher-stakes.
func GDPRRateLimitConfig(limit int, window time.Duration) RateLimitConfig {
	return RateLimitConfig{
		Limit:     limit,
		Window:    window,
		KeyPrefix: "rl:gdpr:",
		KeyFunc:   ClientKey,
	}
}

// RateLimitMiddleware creates a rate limiting middleware with the given
// config. Uses Redis when available so horizontally scaled instances share
// one bucket; falls back to the in-process store when not. The limiter
// itself never fails a request: a Redis error degrades to the fallback.
func RateLimitMiddleware(config RateLimitConfig) gin.HandlerFunc {
	cleanupOnce.Do(startCleanup)

	return func(c *gin.Context) {
		key := config.KeyPrefix + config.KeyFunc(c)
		now := time.Now()

		var allowed bool
		var remaining int
		var resetAt time.Time

		if redisClient := redis.Client(); redisClient != nil {
			var err error
			allowed, remaining, resetAt, err = checkRateLimitRedis(c.Request.Context(), redisClient, key, config)
			if err != nil {
				logger.Log.Warn("rate limit redis check failed, using in-memory fallback",
					"key", key,
					"error", err)
				allowed, remaining, resetAt = checkRateLimitInMemory(key, config, now)
			}
		} else {
			allowed, remaining, resetAt = checkRateLimitInMemory(key, config, now)
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(config.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		c.Header("X-RateLimit-Reset", resetAt.Format(time.RFC3339))

		if !allowed {
			c.Header("Retry-After", strconv.Itoa(int(config.Window.Seconds())))
			logger.Log.Warn("rate limit exceeded",
				"key", key,
				"path", c.FullPath(),
				"request_id", c.GetString(RequestIDKey))

			response.Error(c, http.StatusTooManyRequests, "Too many requests. Please try again later.")
			c.Abort()
			return
		}

		c.Next()
	}
}

// checkRateLimitRedis checks the rate limit using the atomic Lua script.
func checkRateLimitRedis(ctx context.Context, client *goredis.Client, key string, config RateLimitConfig) (bool, int, time.Time, error) {
	ttlSeconds := int(config.Window.Seconds())

	result, err := client.Eval(ctx, rateLimitLuaScript, []string{key}, ttlSeconds, config.Limit).Result()
	if err != nil {
		return false, 0, time.Time{}, fmt.Errorf("redis rate limit eval failed: %w", err)
	}

	arr, ok := result.([]interface{})
	if !ok || len(arr) < 3 {
		return false, 0, time.Time{}, fmt.Errorf("unexpected redis result format")
	}

	allowedFlag, _ := arr[0].(int64)
	count, _ := arr[1].(int64)
	ttl, _ := arr[2].(int64)

	remaining := config.Limit - int(count)
	if remaining < 0 {
		remaining = 0
	}
	resetAt := time.Now().Add(time.Duration(ttl) * time.Second)

	return allowedFlag == 1, remaining, resetAt, nil
}

// checkRateLimitInMemory applies the fixed-window rules against the
// in-process store. A record whose window has elapsed is treated as absent
// and replaced; a full bucket is denied without incrementing. `now` is a
// parameter so window expiry is testable without sleeping.
func checkRateLimitInMemory(key string, config RateLimitConfig, now time.Time) (bool, int, time.Time) {
	entryI, _ := rateLimitStore.LoadOrStore(key, &rateLimitEntry{})
	entry := entryI.(*rateLimitEntry)

	entry.mu.Lock()
	defer entry.mu.Unlock()

	// First request from this key, or the previous window elapsed
	if entry.count == 0 || now.After(entry.resetAt) {
		entry.count = 1
		entry.resetAt = now.Add(config.Window)
		return true, config.Limit - 1, entry.resetAt
	}

	if entry.count >= config.Limit {
		return false, 0, entry.resetAt
	}

	entry.count++
	return true, config.Limit - entry.count, entry.resetAt
}
