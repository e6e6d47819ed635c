package wrapper

import (
	"context"
	"fmt"

	"github.com/rise-and-shine/wrapkit/memo"
	"github.com/rise-and-shine/wrapkit/op"
)

// KeyFunc derives a cache key from an operation input.
type KeyFunc[I op.Input] func(I) string

// DefaultKeyFunc renders the whole input as the cache key.
// Inputs that render identically are treated as identical.
func DefaultKeyFunc[I op.Input](in I) string {
	return fmt.Sprintf("%#v", in)
}

// MemoWrapper memoizes results by input key in an unbounded cache with no
// eviction. A repeated key does not invoke the target again; failed
// invocations are never cached. The target runs with the context of the
// invocation that computes the value, not of later cache hits.
type MemoWrapper[I op.Input, R op.Result] struct {
	cache   *memo.Cache[string, R]
	keyFunc KeyFunc[I]
	next    op.Op[I, R]
}

// NewMemoWrapper creates a memoizing wrap around an operation.
// A nil keyFunc falls back to DefaultKeyFunc.
func NewMemoWrapper[I op.Input, R op.Result](cache *memo.Cache[string, R], keyFunc KeyFunc[I]) op.WrapFunc[I, R] {
	if keyFunc == nil {
		keyFunc = DefaultKeyFunc[I]
	}
	return func(next op.Op[I, R]) op.Op[I, R] {
		return &MemoWrapper[I, R]{
			cache:   cache,
			keyFunc: keyFunc,
			next:    next,
		}
	}
}

func (w *MemoWrapper[I, R]) Invoke(ctx context.Context, in I) (R, error) {
	key := w.keyFunc(in)
	return w.cache.GetOrCompute(key, func() (R, error) {
		return w.next.Invoke(ctx, in)
	})
}

func (w *MemoWrapper[I, R]) Unwrap() op.Op[I, R] { return w.next }
