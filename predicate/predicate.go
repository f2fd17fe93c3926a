package predicate

import (
	"context"

	"github.com/kbukum/streamkit/future"
	"github.com/kbukum/streamkit/projection"
)

// Predicate decides whether a value satisfies a condition. Test binds the
// value and returns a single-use future yielding the verdict.
type Predicate[T any] interface {
	Test(value T) future.Future[bool]
}

// MutPredicate is a Predicate over a pointer, allowing the check to mutate
// the value in place before the consumption decision is made.
type MutPredicate[T any] interface {
	TestMut(value *T) future.Future[bool]
}

// Func adapts a plain synchronous function to Predicate.
type Func[T any] func(T) bool

func (f Func[T]) Test(value T) future.Future[bool] {
	return projection.Func[T, bool](f).Project(value)
}

// AsyncFunc adapts a context-aware function to Predicate.
type AsyncFunc[T any] func(context.Context, T) (bool, error)

func (f AsyncFunc[T]) Test(value T) future.Future[bool] {
	return projection.AsyncFunc[T, bool](f).Project(value)
}

// MutFunc adapts a plain synchronous function to MutPredicate.
type MutFunc[T any] func(*T) bool

func (f MutFunc[T]) TestMut(value *T) future.Future[bool] {
	return projection.MutFunc[T, bool](f).ProjectMut(value)
}

// MutAsyncFunc adapts a context-aware function to MutPredicate.
type MutAsyncFunc[T any] func(context.Context, *T) (bool, error)

func (f MutAsyncFunc[T]) TestMut(value *T) future.Future[bool] {
	return projection.MutAsyncFunc[T, bool](f).ProjectMut(value)
}
