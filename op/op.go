// Package op defines the wrapping-transformation core: a generic operation
// interface, a function adapter, and composable wraps.
//
// An Op is any callable taking one input and returning one result. A WrapFunc
// takes an Op and returns a replacement Op that interposes behavior before,
// after, or around the original. Wrappers for common cross-cutting concerns
// (logging, timing, validation, memoization, rate limiting, ...) live in the
// op/wrapper subpackage and are applied with Chain.
package op

import "context"

type (
	// Input represents the input type of an operation.
	Input any

	// Result represents the result type of an operation.
	Result any
)

// NoResult is a placeholder type for operations that do not return a result.
type NoResult = struct{}

// Op defines a single invokable operation.
type Op[I Input, R Result] interface {
	// Invoke runs the operation with the given input and context,
	// returning a result or error.
	Invoke(context.Context, I) (R, error)
}

// Func adapts an ordinary function to the Op interface.
type Func[I Input, R Result] func(context.Context, I) (R, error)

// Invoke calls the underlying function.
func (f Func[I, R]) Invoke(ctx context.Context, in I) (R, error) {
	return f(ctx, in)
}

// WrapFunc defines a wrapping transformation: given an operation it returns
// a replacement operation augmenting its behavior.
type WrapFunc[I Input, R Result] func(Op[I, R]) Op[I, R]

// Chain applies wraps to target so that the first listed wrap becomes the
// outermost layer. Invoking the returned operation therefore enters wraps
// in list order and reaches target last:
//
//	Chain(target, a, b, c)  ==  a(b(c(target)))
func Chain[I Input, R Result](target Op[I, R], wraps ...WrapFunc[I, R]) Op[I, R] {
	for i := len(wraps) - 1; i >= 0; i-- {
		target = wraps[i](target)
	}
	return target
}
