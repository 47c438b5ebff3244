package api

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const (
	maxRequestBody   = 1 << 20 // 1 MB
	limiterIdleEvict = 10 * time.Minute
	limiterSweepTick = 5 * time.Minute
)

// CORS allows any origin. The API fronts an in-car client and a local
// companion app, neither of which shares an origin with the server.
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		c.Header("Access-Control-Max-Age", "86400")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusOK)
			return
		}
		c.Next()
	}
}

// RequestSizeLimit caps write request bodies at maxRequestBody.
func RequestSizeLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodPost, http.MethodPut, http.MethodPatch:
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxRequestBody)
		}
		c.Next()
	}
}

// limiterRegistry tracks one token bucket per route group and client IP,
// evicting buckets that have gone quiet. Keying by group keeps each group's
// limits independent: a client draining /browse still has a full /sync
// bucket.
type limiterRegistry struct {
	mu       sync.Mutex
	clients  map[string]*clientLimiter
	stop     chan struct{}
	once     sync.Once
	stopOnce sync.Once
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func newLimiterRegistry() *limiterRegistry {
	return &limiterRegistry{
		clients: make(map[string]*clientLimiter),
		stop:    make(chan struct{}),
	}
}

// Middleware returns a per-client rate limiting handler for one route group
// with the given sustained rate and burst. The first call starts the
// eviction loop.
func (r *limiterRegistry) Middleware(group string, rps, burst int) gin.HandlerFunc {
	r.once.Do(func() { go r.sweep() })

	return func(c *gin.Context) {
		if !r.allow(group+"|"+c.ClientIP(), rps, burst) {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"status":  "error",
				"message": "Rate limit exceeded. Please slow down your requests.",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

func (r *limiterRegistry) allow(key string, rps, burst int) bool {
	r.mu.Lock()
	cl, ok := r.clients[key]
	if !ok {
		cl = &clientLimiter{
			limiter: rate.NewLimiter(rate.Every(time.Second/time.Duration(rps)), burst),
		}
		r.clients[key] = cl
	}
	cl.lastSeen = time.Now()
	r.mu.Unlock()

	return cl.limiter.Allow()
}

func (r *limiterRegistry) sweep() {
	ticker := time.NewTicker(limiterSweepTick)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			cutoff := time.Now().Add(-limiterIdleEvict)
			r.mu.Lock()
			for key, cl := range r.clients {
				if cl.lastSeen.Before(cutoff) {
					delete(r.clients, key)
				}
			}
			r.mu.Unlock()
		case <-r.stop:
			return
		}
	}
}

func (r *limiterRegistry) Stop() {
	r.stopOnce.Do(func() { close(r.stop) })
}
