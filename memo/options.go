package memo

import "github.com/rcrowley/go-metrics"

type options struct {
	registry metrics.Registry
}

// Option is a functional option for configuring the cache.
type Option func(*options)

func defaultOptions() options {
	return options{registry: metrics.DefaultRegistry}
}

// WithRegistry overrides the metrics registry used for the hit/miss counters.
func WithRegistry(r metrics.Registry) Option {
	return func(o *options) {
		o.registry = r
	}
}
