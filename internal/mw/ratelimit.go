package mw

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// visitor is one client's limiter and when it was last seen.
type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// IPRateLimiter hands out one token bucket per client IP. Buckets idle for
// longer than ttl are dropped by a sweep that Allow runs at most once per ttl.
type IPRateLimiter struct {
	mu        sync.Mutex
	visitors  map[string]*visitor
	r         rate.Limit
	b         int
	ttl       time.Duration
	now       func() time.Time
	lastSweep time.Time
}

// NewIPRateLimiter creates a limiter allowing r events per second with burst b.
func NewIPRateLimiter(r rate.Limit, b int) *IPRateLimiter {
	return &IPRateLimiter{
		visitors: make(map[string]*visitor),
		r:        r,
		b:        b,
		ttl:      10 * time.Minute,
		now:      time.Now,
	}
}

// Allow consumes a token for ip.
func (l *IPRateLimiter) Allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	switch {
	case l.lastSweep.IsZero():
		l.lastSweep = now
	case now.Sub(l.lastSweep) >= l.ttl:
		l.sweep(now)
	}

	v, ok := l.visitors[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(l.r, l.b)}
		l.visitors[ip] = v
	}
	v.lastSeen = now
	return v.limiter.AllowN(now, 1)
}

// Sweep drops visitors idle for longer than the ttl and returns how many remain.
func (l *IPRateLimiter) Sweep() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.sweep(l.now())
}

func (l *IPRateLimiter) sweep(now time.Time) int {
	cutoff := now.Add(-l.ttl)
	for ip, v := range l.visitors {
		if v.lastSeen.Before(cutoff) {
			delete(l.visitors, ip)
		}
	}
	l.lastSweep = now
	return len(l.visitors)
}

// RateLimit rejects clients exceeding the limiter with 429.
func RateLimit(limiter *IPRateLimiter, logger *zap.Logger) gin.HandlerFunc {
	retryAfter := "1"
	if limiter.r > 0 && limiter.r < 1 {
		retryAfter = strconv.Itoa(int(1 / float64(limiter.r)))
	}
	return func(c *gin.Context) {
		if !limiter.Allow(c.ClientIP()) {
			logger.Warn("rate limit exceeded",
				zap.String("client_ip", c.ClientIP()),
				zap.String("path", c.FullPath()),
			)
			c.Header("Retry-After", retryAfter)
			c.AbortWithStatus(http.StatusTooManyRequests)
			return
		}
		c.Next()
	}
}
