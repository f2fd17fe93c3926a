package stream

import (
	"context"
	"sync/atomic"

	"github.com/kbukum/streamkit/predicate"
)

// Peekable adds lookahead to an Iterator. It owns the wrapped source — no
// other component may pull from it — and caches already-pulled but not yet
// consumed items in a FIFO queue. Items are buffered only when a peek or
// conditional advance asks for them, and once an item is popped it is gone.
//
// Operations on one Peekable must not overlap: issuing a second peek or
// advance while a prior one is still in flight is a caller error, and
// panics.
type Peekable[T any] struct {
	source Iterator[T]
	queue  []T
	// done records that the source reported exhaustion, so a finished
	// source is never polled again.
	done   bool
	active atomic.Int32
}

// NewPeekable wraps source with a lookahead buffer. The Peekable becomes
// the sole owner of source; Close releases it along with any buffered items.
func NewPeekable[T any](source Iterator[T]) *Peekable[T] {
	return &Peekable[T]{source: source}
}

var _ Iterator[int] = (*Peekable[int])(nil)

func (p *Peekable[T]) enter() {
	if p.active.Add(1) > 1 {
		p.active.Add(-1)
		panic("streamkit: overlapping operations on Peekable; buffers are single-consumer")
	}
}

func (p *Peekable[T]) leave() {
	p.active.Add(-1)
}

// fill pulls from the source one item at a time until n items are buffered
// or the source is exhausted. Source errors propagate unchanged and buffer
// nothing.
func (p *Peekable[T]) fill(ctx context.Context, n int) error {
	for len(p.queue) < n && !p.done {
		val, ok, err := p.source.Next(ctx)
		if err != nil {
			return err
		}
		if !ok {
			p.done = true
			return nil
		}
		p.queue = append(p.queue, val)
	}
	return nil
}

// Peek returns the front item without consuming it, buffering it if
// necessary. Returns ok=false when the source is exhausted.
func (p *Peekable[T]) Peek(ctx context.Context) (T, bool, error) {
	p.enter()
	defer p.leave()

	var zero T
	if err := p.fill(ctx, 1); err != nil {
		return zero, false, err
	}
	if len(p.queue) == 0 {
		return zero, false, nil
	}
	return p.queue[0], true, nil
}

// PeekMut returns a pointer to the buffered front item, buffering it if
// necessary. The pointer is valid until the next operation on the buffer;
// mutations through it are visible to later peeks and to NextIf, because
// the queue holds the item itself.
func (p *Peekable[T]) PeekMut(ctx context.Context) (*T, bool, error) {
	p.enter()
	defer p.leave()

	return p.peekMut(ctx, 1)
}

// PeekMutN returns a pointer to the n-th not-yet-consumed item (1-based:
// n == 1 is the front), pulling from the source as needed to buffer n
// items. Returns ok=false when the source exhausts before depth n. The
// pointer carries the same validity caveat as PeekMut.
func (p *Peekable[T]) PeekMutN(ctx context.Context, n int) (*T, bool, error) {
	p.enter()
	defer p.leave()

	return p.peekMut(ctx, n)
}

func (p *Peekable[T]) peekMut(ctx context.Context, n int) (*T, bool, error) {
	if n <= 0 {
		return nil, false, nil
	}
	if err := p.fill(ctx, n); err != nil {
		return nil, false, err
	}
	if len(p.queue) < n {
		return nil, false, nil
	}
	return &p.queue[n-1], true, nil
}

// PeekN returns copies of up to n front items in production order, pulling
// from the source as needed. Fewer than n items are returned only when the
// source is exhausted.
func (p *Peekable[T]) PeekN(ctx context.Context, n int) ([]T, error) {
	p.enter()
	defer p.leave()

	if n <= 0 {
		return nil, nil
	}
	if err := p.fill(ctx, n); err != nil {
		return nil, err
	}
	if n > len(p.queue) {
		n = len(p.queue)
	}
	return append([]T(nil), p.queue[:n]...), nil
}

// NextIf consumes and returns the front item only if pred accepts it. On a
// false verdict the item stays buffered. The predicate is never invoked
// when the source is exhausted and nothing is buffered.
func (p *Peekable[T]) NextIf(ctx context.Context, pred predicate.Predicate[T]) (T, bool, error) {
	p.enter()
	defer p.leave()

	var zero T
	if err := p.fill(ctx, 1); err != nil {
		return zero, false, err
	}
	if len(p.queue) == 0 {
		return zero, false, nil
	}
	ok, err := pred.Test(p.queue[0]).Await(ctx)
	if err != nil || !ok {
		return zero, false, err
	}
	return p.pop(), true, nil
}

// NextIfMut is NextIf with mutable access: the predicate receives a pointer
// to the buffered item and may mutate it in place before deciding. A
// mutated item that is not consumed stays buffered in its mutated form.
func (p *Peekable[T]) NextIfMut(ctx context.Context, pred predicate.MutPredicate[T]) (T, bool, error) {
	p.enter()
	defer p.leave()

	var zero T
	if err := p.fill(ctx, 1); err != nil {
		return zero, false, err
	}
	if len(p.queue) == 0 {
		return zero, false, nil
	}
	ok, err := pred.TestMut(&p.queue[0]).Await(ctx)
	if err != nil || !ok {
		return zero, false, err
	}
	return p.pop(), true, nil
}

// Next advances the stream: it drains the buffered front if any, otherwise
// pulls directly from the source. Peekable is itself an Iterator.
func (p *Peekable[T]) Next(ctx context.Context) (T, bool, error) {
	p.enter()
	defer p.leave()

	if len(p.queue) > 0 {
		return p.pop(), true, nil
	}
	if p.done {
		var zero T
		return zero, false, nil
	}
	val, ok, err := p.source.Next(ctx)
	if err == nil && !ok {
		p.done = true
	}
	return val, ok, err
}

// Close drops any buffered items and closes the owned source. Like every
// other operation, Close must not overlap a pending peek or advance.
func (p *Peekable[T]) Close() error {
	p.enter()
	defer p.leave()

	p.queue = nil
	p.done = true
	return p.source.Close()
}

func (p *Peekable[T]) pop() T {
	val := p.queue[0]
	var zero T
	p.queue[0] = zero // release the popped slot
	p.queue = p.queue[1:]
	return val
}
