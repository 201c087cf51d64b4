package security

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// Policy holds the CORS allow-list and the per-IP rate limit. Update swaps both
// on a running router, so a config reload does not need a restart.
type Policy struct {
	mu         sync.Mutex
	allowAll   bool
	origins    map[string]bool
	limit      rate.Limit
	burst      int
	retryAfter string
	expiry     time.Duration
	visitors   map[string]*visitor
	cleanup    sync.Once
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewPolicy builds a policy. maxRequests or window <= 0 turns rate limiting off.
func NewPolicy(allowedOrigins []string, maxRequests int, window time.Duration) *Policy {
	p := &Policy{visitors: make(map[string]*visitor)}
	p.Update(allowedOrigins, maxRequests, window)
	return p
}

// Update replaces the settings. Known clients keep their limiter unless the limit changed.
func (p *Policy) Update(allowedOrigins []string, maxRequests int, window time.Duration) {
	allowAll := false
	originSet := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		if o == "*" {
			allowAll = true
		}
		originSet[o] = true
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.allowAll = allowAll
	p.origins = originSet

	if maxRequests <= 0 || window <= 0 {
		p.burst = 0
		p.visitors = make(map[string]*visitor)
		return
	}

	every := window / time.Duration(maxRequests)
	limit := rate.Every(every)
	if limit != p.limit || maxRequests != p.burst {
		p.visitors = make(map[string]*visitor)
	}
	p.limit = limit
	p.burst = maxRequests
	p.retryAfter = strconv.Itoa(int(math.Ceil(every.Seconds())))

	// 空闲客户端三个窗口后清理，至少一分钟
	p.expiry = window * 3
	if p.expiry < time.Minute {
		p.expiry = time.Minute
	}
}

func (p *Policy) allowOrigin(origin string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.allowAll || p.origins[origin]
}

// CORS allows the listed origins with credentials. "*" allows any origin.
func (p *Policy) CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		if origin != "" && p.allowOrigin(origin) {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
			c.Writer.Header().Add("Vary", "Origin")
		}

		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// RateLimiter allows maxRequests per window for each client IP, refilling evenly.
func (p *Policy) RateLimiter() gin.HandlerFunc {
	p.cleanup.Do(func() { go p.forgetIdle() })

	return func(c *gin.Context) {
		key := c.ClientIP()

		p.mu.Lock()
		if p.burst == 0 {
			p.mu.Unlock()
			c.Next()
			return
		}
		v, ok := p.visitors[key]
		if !ok {
			v = &visitor{limiter: rate.NewLimiter(p.limit, p.burst)}
			p.visitors[key] = v
		}
		v.lastSeen = time.Now()
		retryAfter := p.retryAfter
		p.mu.Unlock()

		if !v.limiter.Allow() {
			c.Header("Retry-After", retryAfter)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"code":    http.StatusTooManyRequests,
				"message": "too many requests",
			})
			return
		}

		c.Next()
	}
}

func (p *Policy) forgetIdle() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for range ticker.C {
		p.mu.Lock()
		for ip, v := range p.visitors {
			if time.Since(v.lastSeen) > p.expiry {
				delete(p.visitors, ip)
			}
		}
		p.mu.Unlock()
	}
}

// CORS is a fixed allow-list without reload.
func CORS(allowedOrigins []string) gin.HandlerFunc {
	return NewPolicy(allowedOrigins, 0, 0).CORS()
}

// RateLimiter is a fixed per-IP limit without reload.
func RateLimiter(maxRequests int, window time.Duration) gin.HandlerFunc {
	return NewPolicy(nil, maxRequests, window).RateLimiter()
}

func Secure() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("Referrer-Policy", "same-origin")
		if c.Request.TLS != nil {
			c.Header("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		}

		c.Next()
	}
}
