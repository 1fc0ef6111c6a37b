package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/auton-labs/goapi/base/delivery"
)

const (
	defaultRateLimit  = 5
	defaultRateWindow = time.Hour
)

type RateLimitCfg struct {
	// Limit requests per Window for one client IP
	Limit  int
	Window time.Duration

	// Now is the clock, tests override it
	Now func() time.Time
}

// RateLimiter enforces a fixed window request budget per client IP.
// Rejected requests never advance the count, so a client hammering the
// endpoint cannot stretch its own lockout.
type RateLimiter struct {
	limit  int
	window time.Duration
	now    func() time.Time

	mu      sync.Mutex
	windows map[string]*rateWindow
}

type rateWindow struct {
	count   int
	resetAt time.Time
}

func NewRateLimiter(cfg *RateLimitCfg) *RateLimiter {
	limit := cfg.Limit
	if limit <= 0 {
		limit = defaultRateLimit
	}
	window := cfg.Window
	if window <= 0 {
		window = defaultRateWindow
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	rl := &RateLimiter{
		limit:   limit,
		window:  window,
		now:     now,
		windows: map[string]*rateWindow{},
	}

	interval := window
	if interval < time.Minute {
		interval = time.Minute
	}
	go rl.janitor(interval)

	return rl
}

// Allow consumes one slot for the ip and reports the remaining budget
// and when the window resets
func (rl *RateLimiter) Allow(ip string) (bool, int, time.Time) {
	now := rl.now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	w, ok := rl.windows[ip]
	if !ok || !now.Before(w.resetAt) {
		w = &rateWindow{resetAt: now.Add(rl.window)}
		rl.windows[ip] = w
	}

	if w.count >= rl.limit {
		return false, 0, w.resetAt
	}

	w.count++
	return true, rl.limit - w.count, w.resetAt
}

func (rl *RateLimiter) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			allowed, remaining, resetAt := rl.Allow(c.RealIP())

			header := c.Response().Header()
			header.Set("X-RateLimit-Limit", strconv.Itoa(rl.limit))
			header.Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
			header.Set("X-RateLimit-Reset", strconv.FormatInt(resetAt.Unix(), 10))

			if !allowed {
				retryAfter := int64((resetAt.Sub(rl.now()) + time.Second - 1) / time.Second)
				if retryAfter < 1 {
					retryAfter = 1
				}
				header.Set("Retry-After", strconv.FormatInt(retryAfter, 10))
				return delivery.MakeJsonResp(c, http.StatusTooManyRequests, struct {
					RetryAfter int64 `json:"retryAfter"`
				}{retryAfter})
			}

			return next(c)
		}
	}
}

// sweep drops windows that already reset
func (rl *RateLimiter) sweep() {
	now := rl.now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	for ip, w := range rl.windows {
		if !now.Before(w.resetAt) {
			delete(rl.windows, ip)
		}
	}
}

func (rl *RateLimiter) janitor(interval time.Duration) {
	t := time.NewTicker(interval)
	defer t.Stop()
	for range t.C {
		rl.sweep()
	}
}
