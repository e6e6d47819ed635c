// Package wrapper provides composable wrapping transformations for operations.
//
// Each wrapper interposes one cross-cutting concern (logging, timing,
// recovery, validation, memoization, rate limiting, retries, alerting)
// around an op.Op without changing its business logic. Wrappers are applied
// with op.Chain and preserve the wrapped operation's identity through
// Unwrap, so op.OperationID and op.Doc keep working at any wrap depth.
//
// Unless documented otherwise a wrapper invokes its target exactly once per
// invocation and passes the result through unaltered. The exceptions are
// deliberate: the retry wrapper re-invokes a failing target, while the memo,
// rate-limit, auth and validation wrappers may not invoke it at all.
package wrapper

const (
	// CodeUnauthenticated is returned when no caller identity is present.
	CodeUnauthenticated = "UNAUTHENTICATED"

	// CodePermissionDenied is returned when the caller's role is not allowed.
	CodePermissionDenied = "PERMISSION_DENIED"

	// CodePanicRecovered is returned when a panic was converted to an error.
	CodePanicRecovered = "PANIC_RECOVERED"
)
