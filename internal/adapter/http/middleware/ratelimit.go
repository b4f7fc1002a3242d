package middleware

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"sealed_letters/internal/usecase/interfaces"
)

const (
	// General per-IP ceiling for the guarded endpoints.
	requestWindow  = 60 * time.Second
	requestCeiling = 20
)

// RateLimit is the per-client-IP fixed-window limiter in front of every
// guarded endpoint.
//
// Fail-closed: when the counter store is unreachable the request is rejected
// with 503. Rate limiting degrades to denial, never to silent bypass.
func RateLimit(store interfaces.IRateLimitStore, scope string) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := "rl:" + scope + ":" + c.ClientIP()

		count, err := store.Incr(c.Request.Context(), key, requestWindow)
		if err != nil {
			log.Printf("[ratelimit][middleware] counter store unavailable scope=%s err=%v", scope, err)
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{
				"error": "Service temporarily unavailable.",
			})
			return
		}
		if count > requestCeiling {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "Too many requests. Please try again later.",
			})
			return
		}

		c.Next()
	}
}
