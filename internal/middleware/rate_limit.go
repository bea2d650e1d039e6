// internal/middleware/rate_limit.go
package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/highgrip/storefront-backend/internal/utils"
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type RateLimiter struct {
	visitors map[string]*visitor
	mtx      sync.Mutex
	rate     rate.Limit
	burst    int
}

func NewRateLimiter(r rate.Limit, b int) *RateLimiter {
	rl := &RateLimiter{
		visitors: make(map[string]*visitor),
		rate:     r,
		burst:    b,
	}

	// Clean up old visitors every minute
	go rl.cleanupVisitors()

	return rl
}

func (rl *RateLimiter) cleanupVisitors() {
	for {
		time.Sleep(time.Minute)
		rl.mtx.Lock()
		for ip, v := range rl.visitors {
			if time.Since(v.lastSeen) > 3*time.Minute {
				delete(rl.visitors, ip)
			}
		}
		rl.mtx.Unlock()
	}
}

func (rl *RateLimiter) getVisitor(ip string) *rate.Limiter {
	rl.mtx.Lock()
	defer rl.mtx.Unlock()

	v, exists := rl.visitors[ip]
	if !exists {
		limiter := rate.NewLimiter(rl.rate, rl.burst)
		rl.visitors[ip] = &visitor{limiter, time.Now()}
		return limiter
	}

	v.lastSeen = time.Now()
	return v.limiter
}

func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		limiter := rl.getVisitor(ip)

		if !limiter.Allow() {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "RATE_LIMITED", "Too many requests. Please try again later.", nil)
			c.Abort()
			return
		}

		c.Next()
	}
}

// Shared limiters, keyed per client IP. Auth and uploads get tighter budgets
// than general catalog traffic.
var (
	generalLimiter = NewRateLimiter(rate.Every(time.Second), 20)
	authLimiter    = NewRateLimiter(rate.Every(time.Minute), 5)
	uploadLimiter  = NewRateLimiter(rate.Every(time.Minute), 10)
)

func GeneralRateLimit() gin.HandlerFunc {
	return generalLimiter.Middleware()
}

func AuthRateLimit() gin.HandlerFunc {
	return authLimiter.Middleware()
}

func UploadRateLimit() gin.HandlerFunc {
	return uploadLimiter.Middleware()
}
