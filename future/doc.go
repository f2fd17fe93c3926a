// Package future provides a minimal single-result asynchronous computation
// type, used as the driving contract for projections and predicates.
//
// A Future is awaited with a context; the context carries the external
// driver's cancellation and is the only suspension mechanism. Futures
// created by New are single-shot and fused: the wrapped function runs at
// most once, and every Await after completion returns the cached outcome
// without re-invoking it.
//
// # Usage
//
//	f := future.New(func(ctx context.Context) (int, error) {
//	    return fetchCount(ctx)
//	})
//	n, err := f.Await(ctx)
package future
