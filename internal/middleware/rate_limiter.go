package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/LenerGonzalez/Posys-sub003/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// limiterEntry tracks request counts per IP within a sliding window.
type limiterEntry struct {
	count     int
	windowEnd time.Time
	mu        sync.Mutex
}

type limiter struct {
	entries map[string]*limiterEntry
	mu      sync.Mutex
	limit   int
	window  time.Duration
	mensaje string
}

func (l *limiter) handle(c *gin.Context) {
	ip := c.ClientIP()

	l.mu.Lock()
	entry, exists := l.entries[ip]
	if !exists {
		entry = &limiterEntry{}
		l.entries[ip] = entry
	}
	l.mu.Unlock()

	entry.mu.Lock()
	defer entry.mu.Unlock()

	now := time.Now()
	if now.After(entry.windowEnd) {
		entry.count = 0
		entry.windowEnd = now.Add(l.window)
	}

	entry.count++
	if entry.count > l.limit {
		c.Header("Retry-After", entry.windowEnd.Format(time.RFC1123))
		c.AbortWithStatusJSON(http.StatusTooManyRequests, apierror.New(l.mensaje))
		return
	}
	c.Next()
}

// purge periodically drops expired IPs so the map doesn't grow without bound.
func (l *limiter) purge(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		now := time.Now()
		l.mu.Lock()
		purged := 0
		for ip, entry := range l.entries {
			entry.mu.Lock()
			if now.After(entry.windowEnd) {
				delete(l.entries, ip)
				purged++
			}
			entry.mu.Unlock()
		}
		remaining := len(l.entries)
		l.mu.Unlock()

		if purged > 0 {
			log.Debug().
				Int("entries_purged", purged).
				Int("entries_remaining", remaining).
				Msg("rate limiter map purged")
		}
	}
}

func newLimiter(limit int, window time.Duration, mensaje string) *limiter {
	l := &limiter{
		entries: make(map[string]*limiterEntry),
		limit:   limit,
		window:  window,
		mensaje: mensaje,
	}
	go l.purge(5 * time.Minute)
	return l
}

// RateLimiter returns a general-purpose sliding-window rate limiter per IP.
func RateLimiter(limit int, window time.Duration) gin.HandlerFunc {
	l := newLimiter(limit, window, "Demasiadas solicitudes. Intente nuevamente en un momento.")
	return l.handle
}

// LoginRateLimiter limits login attempts to 20 per minute per IP.
func LoginRateLimiter() gin.HandlerFunc {
	l := newLimiter(20, time.Minute, "Demasiados intentos de login. Intente en 1 minuto.")
	return l.handle
}
