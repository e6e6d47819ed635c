// Package seq provides lazy sequence-producers built on range-over-func
// iterators.
//
// A sequence produces values one at a time and suspends between them; nothing
// is computed until the consumer asks for the next value. Exhaustion is
// signaled by the iteration simply ending (or ok=false on pull-style
// handles), never by a sentinel value. Producer gives pull-style access to
// any sequence, and Coro adds value injection at each resumption.
package seq

import "iter"

// Range yields 1, 2, ..., n in order. It yields nothing when n < 1.
func Range(n int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 1; i <= n; i++ {
			if !yield(i) {
				return
			}
		}
	}
}

// CountDown yields n, n-1, ..., 1 in order.
func CountDown(n int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := n; i >= 1; i-- {
			if !yield(i) {
				return
			}
		}
	}
}

// CountUp yields 1, 2, ..., n in order.
func CountUp(n int) iter.Seq[int] {
	return Range(n)
}

// FromSlice yields the elements of s in order.
func FromSlice[V any](s []V) iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range s {
			if !yield(v) {
				return
			}
		}
	}
}

// Fibonacci lazily yields the first n Fibonacci numbers, starting 1, 1, 2, 3.
// Unlike building the whole slice up front, each value is computed only when
// the consumer advances.
func Fibonacci(n int) iter.Seq[int] {
	return func(yield func(int) bool) {
		a, b := 1, 1
		for range n {
			if !yield(a) {
				return
			}
			a, b = b, a+b
		}
	}
}

// Concat yields every sequence in order, delegating to each nested producer
// until it is exhausted before moving to the next.
func Concat[V any](seqs ...iter.Seq[V]) iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, s := range seqs {
			for v := range s {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// Take yields at most n leading values of s.
func Take[V any](s iter.Seq[V], n int) iter.Seq[V] {
	return func(yield func(V) bool) {
		if n < 1 {
			return
		}
		taken := 0
		for v := range s {
			if !yield(v) {
				return
			}
			taken++
			if taken == n {
				return
			}
		}
	}
}

// Map yields f(v) for every v of s, preserving order and laziness.
func Map[V, W any](s iter.Seq[V], f func(V) W) iter.Seq[W] {
	return func(yield func(W) bool) {
		for v := range s {
			if !yield(f(v)) {
				return
			}
		}
	}
}

// Filter yields the values of s for which keep returns true.
func Filter[V any](s iter.Seq[V], keep func(V) bool) iter.Seq[V] {
	return func(yield func(V) bool) {
		for v := range s {
			if keep(v) && !yield(v) {
				return
			}
		}
	}
}
