package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/dmehra2102/prod-golang-projects/lifelink/internal/config"
	"github.com/dmehra2102/prod-golang-projects/lifelink/pkg/metrics"
	"github.com/dmehra2102/prod-golang-projects/lifelink/pkg/response"
)

// idle clients are forgotten after this long
const limiterTTL = 10 * time.Minute

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type ipLimiter struct {
	mu      sync.Mutex
	clients map[string]*clientLimiter
	limit   rate.Limit
	burst   int
	swept   time.Time
}

func (l *ipLimiter) allow(ip string, now time.Time) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if now.Sub(l.swept) > limiterTTL {
		for k, cl := range l.clients {
			if now.Sub(cl.lastSeen) > limiterTTL {
				delete(l.clients, k)
			}
		}
		l.swept = now
	}

	cl, ok := l.clients[ip]
	if !ok {
		cl = &clientLimiter{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.clients[ip] = cl
	}
	cl.lastSeen = now
	return cl.limiter.AllowN(now, 1)
}

// RateLimit applies a token bucket per client IP. A zero rate disables it.
func RateLimit(cfg config.RateLimitConfig, m *metrics.Collector) gin.HandlerFunc {
	if cfg.RequestsPerSecond <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	l := &ipLimiter{
		clients: make(map[string]*clientLimiter),
		limit:   rate.Limit(cfg.RequestsPerSecond),
		burst:   cfg.BurstSize,
		swept:   time.Now(),
	}

	return func(c *gin.Context) {
		if !l.allow(c.ClientIP(), time.Now()) {
			m.RateLimited.Inc()
			c.Header("Retry-After", "1")
			response.Abort(c, http.StatusTooManyRequests, "Too many requests", "")
			return
		}
		c.Next()
	}
}
