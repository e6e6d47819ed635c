package seq

import (
	"runtime"
	"sync"
)

// Coro is a two-way sequence-producer: each Resume delivers an injected
// value to the suspended body and returns the next value the body yields.
// The body runs on its own goroutine but only ever executes between a
// Resume call and the next yield, so execution is effectively sequential.
//
// The first Resume starts the body; its injected value is discarded because
// the body is not suspended at a yield yet. Once the body returns, every
// Resume reports exhaustion through ok=false.
//
// A Coro is not safe for concurrent use. Stop must be called when the
// consumer abandons an unexhausted coroutine, otherwise the body goroutine
// stays suspended forever.
type Coro[In, Out any] struct {
	body func(yield func(Out) In)

	inCh     chan In
	outCh    chan Out
	stopCh   chan struct{}
	finished chan struct{}

	started  bool
	done     bool
	stopOnce sync.Once
}

// NewCoro creates a coroutine around body. Body produces values by calling
// yield, which suspends it and evaluates to the value injected by the next
// Resume.
func NewCoro[In, Out any](body func(yield func(Out) In)) *Coro[In, Out] {
	return &Coro[In, Out]{
		body:     body,
		inCh:     make(chan In),
		outCh:    make(chan Out),
		stopCh:   make(chan struct{}),
		finished: make(chan struct{}),
	}
}

// Resume delivers in to the suspended body and returns the next yielded
// value. It returns ok=false once the body has returned.
func (c *Coro[In, Out]) Resume(in In) (Out, bool) {
	var zero Out

	if c.done {
		return zero, false
	}

	if !c.started {
		c.started = true
		go c.run()
	} else {
		select {
		case c.inCh <- in:
		case <-c.finished:
			c.done = true
			return zero, false
		}
	}

	select {
	case out := <-c.outCh:
		return out, true
	case <-c.finished:
		c.done = true
		return zero, false
	}
}

// Stop releases the coroutine. A body suspended at a yield is unwound
// without running further. Stop is idempotent.
func (c *Coro[In, Out]) Stop() {
	c.done = true
	c.stopOnce.Do(func() {
		close(c.stopCh)
	})
}

func (c *Coro[In, Out]) run() {
	defer close(c.finished)
	c.body(c.yield)
}

// yield hands v to the consumer and suspends until the next injected value
// arrives. When the coroutine is stopped while suspended, the body goroutine
// exits here; its deferred calls still run.
func (c *Coro[In, Out]) yield(v Out) In {
	select {
	case c.outCh <- v:
	case <-c.stopCh:
		runtime.Goexit()
	}

	select {
	case in := <-c.inCh:
		return in
	case <-c.stopCh:
		runtime.Goexit()
	}

	panic("unreachable")
}
