// Package predicate specializes projections to boolean results.
//
// A Predicate decides whether a value satisfies a condition, synchronously
// or asynchronously, and is driven through the same future contract as a
// projection. Prefer Predicate over Projection[T, bool] in signatures to
// keep them readable; stream.Peekable uses predicates to decide whether a
// buffered item should be consumed.
package predicate
