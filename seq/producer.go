package seq

import "iter"

// Producer is a pull-style handle over a sequence. Each Next call resumes
// the sequence, which suspends again after producing one value. Exhaustion
// is reported through ok=false; there is no error path.
//
// A Producer is not safe for concurrent use. Stop must be called when the
// consumer abandons an unexhausted producer.
type Producer[V any] struct {
	next func() (V, bool)
	stop func()
	done bool
}

// NewProducer creates a pull-style producer over s.
func NewProducer[V any](s iter.Seq[V]) *Producer[V] {
	next, stop := iter.Pull(s)
	return &Producer[V]{next: next, stop: stop}
}

// Next resumes the sequence and returns its next value.
// After exhaustion every call returns the zero value and false.
func (p *Producer[V]) Next() (V, bool) {
	if p.done {
		var zero V
		return zero, false
	}

	v, ok := p.next()
	if !ok {
		p.done = true
	}
	return v, ok
}

// Stop releases the producer. Subsequent Next calls report exhaustion.
// Stop is idempotent.
func (p *Producer[V]) Stop() {
	p.done = true
	p.stop()
}

// Exhausted reports whether the producer has signaled exhaustion.
func (p *Producer[V]) Exhausted() bool {
	return p.done
}
