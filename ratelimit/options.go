package ratelimit

import (
	"time"

	"github.com/rcrowley/go-metrics"
)

type options struct {
	now      func() time.Time
	registry metrics.Registry
}

// Option is a functional option for configuring the limiter.
type Option func(*options)

func defaultOptions() options {
	return options{
		now:      time.Now,
		registry: metrics.DefaultRegistry,
	}
}

// WithClock overrides the time source. Intended for tests.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// WithRegistry overrides the metrics registry used for the
// allowed/rejected counters.
func WithRegistry(r metrics.Registry) Option {
	return func(o *options) {
		o.registry = r
	}
}
