// Package outcome defines Outcome[T], an immutable tagged value that is
// exactly one of Ok (holding a success value) or Err (holding an opaque
// failure payload). It is the currency of every combinator and pipeline in
// this module.
//
// Construction:
// - Ok/Err: the two variants
// - Cancel: an Err flavored as cancellation, detectable via IsCancel
// - ErrFrom: carry a failure across a type switch untouched
//
// StepError is the structured failure payload attached by pipeline
// execution: the failing step's name and index wrapping its error, so a
// caller can report which logical operation failed and why.
package outcome
