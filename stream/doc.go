// Package stream provides pull-based sequential access to asynchronous
// data sources, with lookahead.
//
// Streams are lazy — no work happens until values are pulled via Next,
// Collect, or Drain. Each pull may suspend (it blocks on the context or on
// the source's own I/O), providing natural backpressure without explicit
// flow control.
//
// Peekable wraps an Iterator with a lookahead buffer: consumers can inspect
// the next one or N not-yet-consumed items (optionally mutating them in
// place) and conditionally consume the front item based on a predicate,
// without breaking the source's single-consumption contract.
//
// # Usage
//
//	src := stream.FromSlice([]int{1, 2, 3})
//	p := stream.NewPeekable[int](src)
//	defer p.Close()
//
//	head, _ := p.PeekN(ctx, 2)                                       // [1 2]
//	v, ok, _ := p.NextIf(ctx, predicate.Func[int](func(n int) bool { // consumes 1
//	    return n == 1
//	}))
//
// Iterators are single-consumer. Operations on one Peekable must not
// overlap; overlapping calls panic.
package stream
