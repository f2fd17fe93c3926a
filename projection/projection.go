package projection

import (
	"context"

	"github.com/kbukum/streamkit/future"
)

// Projection transforms an input A into an output B, synchronously or
// asynchronously. Project binds the value and returns a single-use future
// that yields exactly one B when driven to completion.
type Projection[A, B any] interface {
	Project(value A) future.Future[B]
}

// MutProjection is a Projection over a pointer, allowing the transformation
// to inspect or mutate the value in place. The pointee must stay valid until
// the returned future completes.
type MutProjection[A, B any] interface {
	ProjectMut(value *A) future.Future[B]
}

// Func adapts a plain synchronous function to Projection. The returned
// future performs the transformation eagerly on first Await, never consults
// the context, and is fused.
type Func[A, B any] func(A) B

func (f Func[A, B]) Project(value A) future.Future[B] {
	return future.New(func(context.Context) (B, error) {
		return f(value), nil
	})
}

// AsyncFunc adapts a context-aware function to Projection. Suspension and
// failure belong entirely to the wrapped function; this layer only forwards.
type AsyncFunc[A, B any] func(context.Context, A) (B, error)

func (f AsyncFunc[A, B]) Project(value A) future.Future[B] {
	return future.New(func(ctx context.Context) (B, error) {
		return f(ctx, value)
	})
}

// MutFunc adapts a plain synchronous function to MutProjection. Like Func,
// the returned future completes on first Await and is fused.
type MutFunc[A, B any] func(*A) B

func (f MutFunc[A, B]) ProjectMut(value *A) future.Future[B] {
	return future.New(func(context.Context) (B, error) {
		return f(value), nil
	})
}

// MutAsyncFunc adapts a context-aware function to MutProjection.
type MutAsyncFunc[A, B any] func(context.Context, *A) (B, error)

func (f MutAsyncFunc[A, B]) ProjectMut(value *A) future.Future[B] {
	return future.New(func(ctx context.Context) (B, error) {
		return f(ctx, value)
	})
}
