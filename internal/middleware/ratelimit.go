package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const slidingWindowScript = `
	local key = KEYS[1]
	local window = tonumber(ARGV[1])
	local limit = tonumber(ARGV[2])
	local now = tonumber(ARGV[3])

	redis.call('ZREMRANGEBYSCORE', key, 0, now - window)

	local current = redis.call('ZCARD', key)

	if current < limit then
		redis.call('ZADD', key, now, now)
		redis.call('EXPIRE', key, window)
		return {1, limit - current - 1}
	else
		return {0, 0}
	end
`

// RedisRateLimit applies a per-client-IP sliding window limit backed by
// Redis. When Redis is unreachable the request is allowed through; losing
// the limiter must not take the dashboard down.
func RedisRateLimit(client *redis.Client, rps int, burst int) gin.HandlerFunc {
	return func(c *gin.Context) {
		clientIP := c.ClientIP()
		if clientIP == "" {
			clientIP = "unknown"
		}
		key := fmt.Sprintf("rate_limit:%s", clientIP)

		window := time.Duration(burst) * time.Second / time.Duration(rps)
		now := time.Now().Unix()

		result, err := client.Eval(context.Background(), slidingWindowScript, []string{key},
			int(window.Seconds()), burst, now).Result()
		if err != nil {
			c.Next()
			return
		}

		results, ok := result.([]interface{})
		if !ok || len(results) < 2 {
			c.Next()
			return
		}
		allowed, _ := results[0].(int64)
		remaining, _ := results[1].(int64)

		c.Header("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))
		if allowed != 1 {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}
		c.Next()
	}
}
