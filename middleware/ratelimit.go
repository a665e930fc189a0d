package middleware

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	// keepLastN bounds each client's timestamp log.
	keepLastN = 10
	// maxTrackedClients triggers a sweep of idle clients so the map cannot
	// grow without bound in a long-running process.
	maxTrackedClients = 1000
)

// RateLimiter rejects a request when the client already made max requests
// within the trailing window. Rejected requests do not consume a slot.
type RateLimiter struct {
	mu      sync.Mutex
	window  time.Duration
	max     int
	clients map[string][]time.Time
	now     func() time.Time
}

func NewRateLimiter(window time.Duration, max int) *RateLimiter {
	return &RateLimiter{
		window:  window,
		max:     max,
		clients: make(map[string][]time.Time),
		now:     time.Now,
	}
}

func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	cutoff := now.Add(-rl.window)

	log := rl.clients[key]
	recent := log[:0:0]
	for _, ts := range log {
		if !ts.Before(cutoff) {
			recent = append(recent, ts)
		}
	}

	if len(recent) >= rl.max {
		rl.clients[key] = recent
		return false
	}

	recent = append(recent, now)
	if len(recent) > keepLastN {
		recent = recent[len(recent)-keepLastN:]
	}
	rl.clients[key] = recent

	if len(rl.clients) > maxTrackedClients {
		rl.sweepLocked(cutoff)
	}
	return true
}

// sweepLocked drops clients whose newest request is older than the window.
// Caller holds the mutex.
func (rl *RateLimiter) sweepLocked(cutoff time.Time) {
	for key, log := range rl.clients {
		if len(log) == 0 || log[len(log)-1].Before(cutoff) {
			delete(rl.clients, key)
		}
	}
}

// ClientKey derives the rate-limit key from proxy headers, falling back to a
// shared sentinel. Coarse by design: shared NATs and proxies collapse onto
// one key.
func ClientKey(c *gin.Context) string {
	if fwd := c.GetHeader("X-Forwarded-For"); fwd != "" {
		if i := strings.Index(fwd, ","); i >= 0 {
			fwd = fwd[:i]
		}
		return strings.TrimSpace(fwd)
	}
	if real := c.GetHeader("X-Real-IP"); real != "" {
		return real
	}
	return "unknown"
}

func RateLimitMiddleware(rl *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.Allow(ClientKey(c)) {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error": "Too many requests. Please try again later.",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
