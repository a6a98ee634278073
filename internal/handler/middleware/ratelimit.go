package middleware

import (
	"log/slog"
	"net/http"
	"strconv"
	"sync"
	"time"

	"shuttlesync/internal/handler/httperr"
	"shuttlesync/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const limiterIdleTTL = 10 * time.Minute

var errRateLimited = httperr.Reason("rate limit exceeded")

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter keeps one token bucket per client IP.
type RateLimiter struct {
	mu        sync.Mutex
	limiters  map[string]*clientLimiter
	limit     rate.Limit
	refill    time.Duration
	burst     int
	lastSweep time.Time
}

func NewRateLimiter(cfg config.RateLimitConfig) *RateLimiter {
	limit := rate.Inf
	refill := time.Second
	if cfg.RequestsPerMinute > 0 {
		refill = time.Minute / time.Duration(cfg.RequestsPerMinute)
		limit = rate.Every(refill)
	}
	return &RateLimiter{
		limiters:  make(map[string]*clientLimiter),
		limit:     limit,
		refill:    refill,
		burst:     max(cfg.Burst, 1),
		lastSweep: time.Now(),
	}
}

func (r *RateLimiter) getLimiter(ip string, now time.Time) *rate.Limiter {
	r.mu.Lock()
	defer r.mu.Unlock()

	if now.Sub(r.lastSweep) > limiterIdleTTL {
		for key, cl := range r.limiters {
			if now.Sub(cl.lastSeen) > limiterIdleTTL {
				delete(r.limiters, key)
			}
		}
		r.lastSweep = now
	}

	cl, exists := r.limiters[ip]
	if !exists {
		cl = &clientLimiter{limiter: rate.NewLimiter(r.limit, r.burst)}
		r.limiters[ip] = cl
	}
	cl.lastSeen = now
	return cl.limiter
}

func (r *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if !r.getLimiter(ip, time.Now()).Allow() {
			slog.Warn("Rate limit exceeded", "client_ip", ip, "path", c.Request.URL.Path)
			c.Header("Retry-After", strconv.Itoa(r.retryAfterSeconds()))
			httperr.AbortWithError(c, http.StatusTooManyRequests, errRateLimited, "Rate limit exceeded. Try again later.", nil)
			return
		}
		c.Next()
	}
}

// retryAfterSeconds is the time one token takes to refill, rounded up.
func (r *RateLimiter) retryAfterSeconds() int {
	return int((r.refill + time.Second - 1) / time.Second)
}
