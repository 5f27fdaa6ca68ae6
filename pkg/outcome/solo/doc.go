// Package solo contains the single-value, synchronous combinators over
// Outcome[T]. These are the building blocks the pipe, chain and stream
// packages are assembled from.
//
// Highlights:
// - Bind: the railway switch; Err passes through, the function is never
//   called on the failure track
// - Map/MapError: transform one track, pass the other through
// - Try: adapt a (value, error) function
// - Validate/FailWith: turn rejection into failure
// - Tee/TeeBoth: side effects that leave the outcome unchanged
// - Finally: reduce to a concrete value via success/error/cancel handlers
package solo
