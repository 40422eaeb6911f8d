package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
)

// Clients beyond this count trigger a sweep of buckets idle for an hour, so
// the per-IP map cannot grow without bound.
const maxTrackedClients = 10000

// clientBucket is the token bucket for one caller. Tokens refill
// continuously from the elapsed time, so idle clients cost nothing
// between requests.
type clientBucket struct {
	mu     sync.Mutex
	tokens float64
	last   time.Time
}

// take spends one token if available. On refusal it reports how long the
// caller should wait before the next token exists.
func (b *clientBucket) take(rps, burst float64) (ok bool, wait time.Duration) {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()
	b.tokens += now.Sub(b.last).Seconds() * rps
	if b.tokens > burst {
		b.tokens = burst
	}
	b.last = now

	if b.tokens >= 1 {
		b.tokens--
		return true, 0
	}
	return false, time.Duration((1 - b.tokens) / rps * float64(time.Second))
}

func (b *clientBucket) idleSince(cutoff time.Time) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.last.Before(cutoff)
}

// RateLimit throttles each client IP to rps sustained requests per second
// with a burst allowance, answering 429 with a Retry-After hint once the
// bucket runs dry. The limits come straight from the RATE_LIMIT_RPS and
// RATE_LIMIT_BURST settings; a non-positive rate disables throttling.
func RateLimit(rps float64, burst int) echo.MiddlewareFunc {
	if rps <= 0 {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}

	var (
		mu      sync.Mutex
		clients = make(map[string]*clientBucket)
	)
	bucketFor := func(ip string) *clientBucket {
		mu.Lock()
		defer mu.Unlock()
		if len(clients) > maxTrackedClients {
			cutoff := time.Now().Add(-time.Hour)
			for key, b := range clients {
				if b.idleSince(cutoff) {
					delete(clients, key)
				}
			}
		}
		b, ok := clients[ip]
		if !ok {
			b = &clientBucket{tokens: float64(burst), last: time.Now()}
			clients[ip] = b
		}
		return b
	}

	limit := strconv.FormatFloat(rps, 'f', -1, 64)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			h := c.Response().Header()
			h.Set("X-RateLimit-Limit", limit)

			ok, wait := bucketFor(c.RealIP()).take(rps, float64(burst))
			if !ok {
				h.Set("Retry-After", strconv.Itoa(int(wait/time.Second)+1))
				h.Set("X-RateLimit-Remaining", "0")
				return echo.NewHTTPError(http.StatusTooManyRequests, "rate limit exceeded")
			}
			return next(c)
		}
	}
}
