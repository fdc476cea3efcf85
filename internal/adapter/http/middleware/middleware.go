package middleware

import (
	"buscador_cep/pkg"
	"log"
	"net/http"
	"os"
	"strconv"
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const (
	DefaultRateLimitRPS   = 5.0
	DefaultRateLimitBurst = 10
)

var errRateLimited = pkg.NewDomainErrorSimple("RATE_LIMITED", "Too many lookups, try again shortly", http.StatusTooManyRequests)

// SecurityHeaders adds the browser hardening headers served with the form
// page and the JSON API.
func SecurityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Header("Content-Security-Policy", "default-src 'self'")

		if c.Request.TLS != nil {
			c.Header("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		}

		c.Next()
	}
}

// IPRateLimiter keeps one token bucket per client IP. It guards the routes
// that reach ViaCEP.
type IPRateLimiter struct {
	limiters sync.Map
	rate     rate.Limit
	burst    int
}

func NewIPRateLimiter(r rate.Limit, burst int) *IPRateLimiter {
	if burst <= 0 {
		burst = 1
	}
	return &IPRateLimiter{rate: r, burst: burst}
}

// NewIPRateLimiterFromEnv reads RATE_LIMIT_RPS and RATE_LIMIT_BURST.
// RATE_LIMIT_RPS=0 disables limiting.
func NewIPRateLimiterFromEnv() *IPRateLimiter {
	rps := DefaultRateLimitRPS
	if v := os.Getenv("RATE_LIMIT_RPS"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			rps = parsed
		} else {
			log.Printf("[cep][ratelimit] invalid RATE_LIMIT_RPS=%q, using %.1f", v, rps)
		}
	}

	burst := DefaultRateLimitBurst
	if v := os.Getenv("RATE_LIMIT_BURST"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			burst = parsed
		} else {
			log.Printf("[cep][ratelimit] invalid RATE_LIMIT_BURST=%q, using %d", v, burst)
		}
	}

	limit := rate.Limit(rps)
	if rps == 0 {
		limit = rate.Inf
	}
	return NewIPRateLimiter(limit, burst)
}

func (i *IPRateLimiter) getLimiter(ip string) *rate.Limiter {
	if limiter, ok := i.limiters.Load(ip); ok {
		return limiter.(*rate.Limiter)
	}
	limiter, _ := i.limiters.LoadOrStore(ip, rate.NewLimiter(i.rate, i.burst))
	return limiter.(*rate.Limiter)
}

func (i *IPRateLimiter) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if !i.getLimiter(ip).Allow() {
			log.Printf("[cep][ratelimit] limit exceeded ip=%s path=%s", ip, c.Request.URL.Path)
			c.AbortWithStatusJSON(errRateLimited.HTTPStatus, errRateLimited.ToHTTPError())
			return
		}
		c.Next()
	}
}
