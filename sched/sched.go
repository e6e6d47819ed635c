// Package sched provides a round-robin scheduler over lazy producers.
//
// The scheduler simulates interleaved execution inside a single goroutine:
// each round it pulls one value from every registered producer in
// registration order, drops producers that signal exhaustion, and stops
// when none remain or the context is cancelled. There is no locking and
// no real concurrency; interleaving comes purely from the polling order.
package sched

import (
	"context"

	"github.com/code19m/errx"

	"github.com/rise-and-shine/wrapkit/logger"
	"github.com/rise-and-shine/wrapkit/seq"
)

// Sink receives every value pulled by the scheduler, together with the
// name of the producer that yielded it.
type Sink[V any] func(name string, value V)

// RoundRobin pulls values from registered producers one at a time,
// cycling through them in registration order.
type RoundRobin[V any] struct {
	tasks  []task[V]
	sink   Sink[V]
	logger logger.Logger
}

type task[V any] struct {
	name     string
	producer *seq.Producer[V]
}

// New creates a round-robin scheduler. Without WithSink the pulled
// values are written to the structured log.
func New[V any](opts ...Option[V]) *RoundRobin[V] {
	options := defaultOptions[V]()
	for _, opt := range opts {
		opt(&options)
	}

	log := options.logger
	if log == nil {
		log = logger.Named("sched.roundrobin")
	} else {
		log = log.Named("sched.roundrobin")
	}

	rr := &RoundRobin[V]{
		sink:   options.sink,
		logger: log,
	}
	if rr.sink == nil {
		rr.sink = func(name string, value V) {
			rr.logger.With("task", name, "value", value).Debug("value produced")
		}
	}

	return rr
}

// Register adds a named producer to the polling cycle. Registration
// order determines polling order within each round.
func (rr *RoundRobin[V]) Register(name string, producer *seq.Producer[V]) {
	rr.tasks = append(rr.tasks, task[V]{name: name, producer: producer})
}

// Pending returns the number of producers that have not yet been
// dropped from the cycle.
func (rr *RoundRobin[V]) Pending() int {
	return len(rr.tasks)
}

// Run polls the producers round-robin until all are exhausted or ctx is
// done. It blocks for the whole run and returns nil on natural
// completion. On cancellation the remaining producers are stopped and
// the context error is returned.
func (rr *RoundRobin[V]) Run(ctx context.Context) error {
	rr.logger.With("tasks", len(rr.tasks)).Debug("scheduler started")

	for len(rr.tasks) > 0 {
		select {
		case <-ctx.Done():
			rr.stopAll()
			return errx.Wrap(ctx.Err())
		default:
		}

		live := rr.tasks[:0]
		for _, t := range rr.tasks {
			value, ok := t.producer.Next()
			if !ok {
				rr.logger.With("task", t.name).Debug("task exhausted")
				continue
			}
			rr.sink(t.name, value)
			live = append(live, t)
		}
		rr.tasks = live
	}

	rr.logger.Debug("scheduler finished")
	return nil
}

func (rr *RoundRobin[V]) stopAll() {
	for _, t := range rr.tasks {
		t.producer.Stop()
	}
	rr.tasks = nil
}
