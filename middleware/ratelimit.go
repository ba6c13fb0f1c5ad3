package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"soulsrpg/cache"
	"soulsrpg/utils"
)

// RateLimit limits each client IP to maxRequests per window using Redis
// fixed-window counters. The limiter fails open: when Redis is unreachable
// requests pass through unlimited.
func RateLimit(maxRequests int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !cache.IsRedisAvailable() {
			c.Next()
			return
		}

		allowed, remaining, err := cache.CheckRateLimit(c.ClientIP(), maxRequests, window)
		if err != nil {
			utils.Log.WithField("error", err.Error()).Warn("rate limiter unavailable, allowing request")
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(maxRequests))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		c.Header("X-RateLimit-Window", window.String())

		if !allowed {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"success": false,
				"message": "Too many requests, retry after " + window.String(),
			})
			return
		}

		c.Next()
	}
}
