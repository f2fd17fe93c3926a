// Package projection unifies synchronous and asynchronous transformations
// behind one capability.
//
// A Projection turns an input A into a future.Future[B]; callers drive the
// returned future without knowing whether the underlying function blocks.
// Plain functions adapt directly via the Func and AsyncFunc types, so a
// call site declared against Projection accepts either kind:
//
//	func classify[A any](ctx context.Context, v A, p projection.Projection[A, string]) (string, error) {
//	    return p.Project(v).Await(ctx)
//	}
//
//	classify(ctx, 3, projection.Func[int, string](strconv.Itoa))
//	classify(ctx, 3, projection.AsyncFunc[int, string](lookupName))
//
// The Mut variants take the input by pointer, for call sites that need to
// inspect or mutate a value in place before deciding what to do with it.
// The pointee must remain valid and un-aliased until the returned future
// completes.
package projection
