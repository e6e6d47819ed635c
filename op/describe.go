package op

import "context"

// Describer exposes the identity of an operation for logs, metrics and
// error reports.
type Describer interface {
	// OperationID returns a stable identifier for the operation.
	OperationID() string

	// Doc returns a short human-readable description of the operation.
	Doc() string
}

// Unwrapper is implemented by wrappers that delegate to an inner operation.
// It lets OperationID and Doc resolve through any number of wrap layers, so
// wrapping does not erase the target's identity.
type Unwrapper[I Input, R Result] interface {
	Unwrap() Op[I, R]
}

// Describe attaches an operation ID and doc string to target. The returned
// operation behaves identically to target and additionally implements
// Describer.
func Describe[I Input, R Result](target Op[I, R], id, doc string) Op[I, R] {
	return &described[I, R]{next: target, id: id, doc: doc}
}

type described[I Input, R Result] struct {
	next Op[I, R]
	id   string
	doc  string
}

func (d *described[I, R]) Invoke(ctx context.Context, in I) (R, error) {
	return d.next.Invoke(ctx, in)
}

func (d *described[I, R]) OperationID() string { return d.id }

func (d *described[I, R]) Doc() string { return d.doc }

func (d *described[I, R]) Unwrap() Op[I, R] { return d.next }

// OperationID resolves the operation ID of o, unwrapping as needed.
// It returns an empty string when no layer carries an ID.
func OperationID[I Input, R Result](o Op[I, R]) string {
	for o != nil {
		if d, ok := o.(Describer); ok {
			return d.OperationID()
		}
		u, ok := o.(Unwrapper[I, R])
		if !ok {
			return ""
		}
		o = u.Unwrap()
	}
	return ""
}

// Doc resolves the doc string of o, unwrapping as needed.
// It returns an empty string when no layer carries a doc.
func Doc[I Input, R Result](o Op[I, R]) string {
	for o != nil {
		if d, ok := o.(Describer); ok {
			return d.Doc()
		}
		u, ok := o.(Unwrapper[I, R])
		if !ok {
			return ""
		}
		o = u.Unwrap()
	}
	return ""
}
