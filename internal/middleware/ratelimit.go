package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// Atomic INCR with expiry set on first hit of the window.
var incrExpireScript = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return current
`)

// AuthRateLimit throttles credential endpoints per client IP. Fail-open: a
// redis outage must not take logins down with it. A nil client disables the
// limiter entirely.
func AuthRateLimit(rdb *redis.Client, max int, window time.Duration) gin.HandlerFunc {
	if rdb == nil || max <= 0 || window <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	return func(c *gin.Context) {
		ip := c.ClientIP()
		if ip == "" {
			ip = "unknown"
		}
		key := "rl:auth:" + ip

		count, err := incrExpireScript.Run(
			c.Request.Context(), rdb,
			[]string{key}, window.Milliseconds(),
		).Int64()
		if err != nil {
			c.Next()
			return
		}

		if count > int64(max) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "Too many attempts. Try again later",
			})
			return
		}

		c.Next()
	}
}
