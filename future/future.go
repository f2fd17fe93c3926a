package future

import (
	"context"
	"sync"
)

// Future is a single-result asynchronous computation.
type Future[T any] interface {
	// Await drives the computation to completion, blocking until a result
	// is available or ctx is canceled (if the computation observes it).
	Await(ctx context.Context) (T, error)
}

// Ready returns a Future that is already complete with value.
// Awaiting it never consults the context, so it succeeds even under an
// already-canceled context.
func Ready[T any](value T) Future[T] {
	return ready[T]{value: value}
}

type ready[T any] struct {
	value T
}

func (r ready[T]) Await(context.Context) (T, error) {
	return r.value, nil
}

// Fail returns a Future that is already complete with err.
func Fail[T any](err error) Future[T] {
	return failed[T]{err: err}
}

type failed[T any] struct {
	err error
}

func (f failed[T]) Await(context.Context) (T, error) {
	var zero T
	return zero, f.err
}

// New wraps fn as a single-shot Future. The first Await invokes fn exactly
// once; the outcome is cached, and every later Await returns it without
// re-invoking fn.
func New[T any](fn func(ctx context.Context) (T, error)) Future[T] {
	return &task[T]{fn: fn}
}

type task[T any] struct {
	once  sync.Once
	fn    func(ctx context.Context) (T, error)
	value T
	err   error
}

func (t *task[T]) Await(ctx context.Context) (T, error) {
	t.once.Do(func() {
		t.value, t.err = t.fn(ctx)
		t.fn = nil
	})
	return t.value, t.err
}
