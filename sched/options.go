package sched

import "github.com/rise-and-shine/wrapkit/logger"

// Option is a functional option that configures a RoundRobin scheduler.
type Option[V any] func(*options[V])

type options[V any] struct {
	sink   Sink[V]
	logger logger.Logger
}

func defaultOptions[V any]() options[V] {
	return options[V]{}
}

// WithSink routes pulled values to a callback instead of the log.
func WithSink[V any](sink Sink[V]) Option[V] {
	return func(o *options[V]) {
		o.sink = sink
	}
}

// WithLogger overrides the logger used by the scheduler.
func WithLogger[V any](log logger.Logger) Option[V] {
	return func(o *options[V]) {
		o.logger = log
	}
}
