// api/middleware/rate_limiter.go

package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/dev-mohitbeniwal/community/api/db"
	logger "github.com/dev-mohitbeniwal/community/api/logging"
	"github.com/dev-mohitbeniwal/community/api/metrics"
)

// localLimiters is the per-client token bucket used when Redis is not
// configured or fails.
type localLimiters struct {
	mu       sync.Mutex
	limit    rate.Limit
	burst    int
	limiters map[string]*rate.Limiter
}

func newLocalLimiters(limit int, per time.Duration) *localLimiters {
	return &localLimiters{
		limit:    rate.Limit(float64(limit) / per.Seconds()),
		burst:    limit,
		limiters: make(map[string]*rate.Limiter),
	}
}

func (l *localLimiters) allow(key string) bool {
	l.mu.Lock()
	limiter, ok := l.limiters[key]
	if !ok {
		limiter = rate.NewLimiter(l.limit, l.burst)
		l.limiters[key] = limiter
	}
	l.mu.Unlock()
	return limiter.Allow()
}

func RateLimiter(limit int, per time.Duration) gin.HandlerFunc {
	local := newLocalLimiters(limit, per)
	return func(c *gin.Context) {
		key := c.ClientIP()
		allowed := false
		if db.RedisClient != nil {
			var err error
			allowed, err = db.RateLimit(c, key, limit, per)
			if err != nil {
				logger.Warn("Redis rate limiting failed, using local limiter", zap.Error(err), zap.String("ip", key))
				allowed = local.allow(key)
			}
		} else {
			allowed = local.allow(key)
		}

		// Set rate limit headers
		c.Header("X-RateLimit-Limit", strconv.Itoa(limit))
		c.Header("X-RateLimit-Duration", per.String())

		if !allowed {
			metrics.RecordRateLimited()
			logger.Warn("Rate limit exceeded",
				zap.String("ip", key),
				zap.Int("limit", limit),
				zap.Duration("per", per))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Rate limit exceeded"})
			return
		}
		c.Next()
	}
}
