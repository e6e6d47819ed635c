// Package ratelimit implements fixed window rate limiting keyed by caller
// identifier.
//
// A limiter grants at most Limit calls per identifier within a recurring
// window. Windows are anchored to the wall clock: every window starts at a
// multiple of the window duration, so all identifiers roll over together.
// State is held in memory and never evicted; the limiter is intended for
// in-process call shaping, not distributed quota enforcement.
package ratelimit

import (
	"sync"
	"time"

	"github.com/code19m/errx"
	"github.com/rcrowley/go-metrics"
)

const (
	// CodeRateLimitExceeded is returned when the call quota for an
	// identifier is exhausted within the current window.
	CodeRateLimitExceeded = "RATE_LIMIT_EXCEEDED"
)

// Limiter decides whether a call identified by id may proceed.
type Limiter interface {
	// Allow records one call attempt for id. It returns nil when the call
	// is within quota and an errx error with code CodeRateLimitExceeded
	// and type T_Throttling otherwise.
	Allow(id string) error
}

// FixedWindow is a Limiter granting at most limit calls per window per
// identifier. It is safe for concurrent use.
type FixedWindow struct {
	limit  int
	window time.Duration
	now    func() time.Time

	mu      sync.Mutex
	windows map[string]*windowState

	allowed  metrics.Counter
	rejected metrics.Counter
}

type windowState struct {
	start time.Time
	count int
}

// New creates a fixed window limiter.
func New(limit int, window time.Duration, opts ...Option) (*FixedWindow, error) {
	if limit <= 0 {
		return nil, errx.New("ratelimit: limit must be positive")
	}
	if window <= 0 {
		return nil, errx.New("ratelimit: window must be positive")
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &FixedWindow{
		limit:    limit,
		window:   window,
		now:      o.now,
		windows:  make(map[string]*windowState),
		allowed:  metrics.GetOrRegisterCounter("ratelimit.allowed", o.registry),
		rejected: metrics.GetOrRegisterCounter("ratelimit.rejected", o.registry),
	}, nil
}

// Allow implements Limiter.
func (fw *FixedWindow) Allow(id string) error {
	now := fw.now()
	windowStart := now.Truncate(fw.window)

	fw.mu.Lock()
	defer fw.mu.Unlock()

	ws, ok := fw.windows[id]
	if !ok || ws.start.Before(windowStart) {
		ws = &windowState{start: windowStart}
		fw.windows[id] = ws
	}

	if ws.count >= fw.limit {
		fw.rejected.Inc(1)
		resetAt := ws.start.Add(fw.window)
		return errx.New(
			"ratelimit: call quota exceeded",
			errx.WithCode(CodeRateLimitExceeded),
			errx.WithType(errx.T_Throttling),
			errx.WithDetails(errx.D{
				"identifier": id,
				"limit":      fw.limit,
				"window":     fw.window.String(),
				"reset_at":   resetAt.Format(time.RFC3339),
			}),
		)
	}

	ws.count++
	fw.allowed.Inc(1)
	return nil
}

// Remaining reports how many calls id may still make in the current window.
func (fw *FixedWindow) Remaining(id string) int {
	windowStart := fw.now().Truncate(fw.window)

	fw.mu.Lock()
	defer fw.mu.Unlock()

	ws, ok := fw.windows[id]
	if !ok || ws.start.Before(windowStart) {
		return fw.limit
	}

	remaining := fw.limit - ws.count
	if remaining < 0 {
		return 0
	}
	return remaining
}
