// Package chain provides a fluent wrapper around Outcome[T] for building
// railway-style flows where the value type changes between steps.
//
// Key operations:
// - Start/From: begin a chain from an Outcome[T] or a plain value
// - Then: bind a function returning Outcome[U]
// - ThenTry: bind a function returning (U, error)
// - Map: bind a pure transformation (T -> U)
// - Validate/Ensure: same-type checks and success-track side effects
// - Finally: collapse the chain into a final value via handlers
//
// Type-switching operations are package-level functions because Go methods
// cannot introduce new type parameters. For same-type sequences prefer
// pipe.Compose, which also attributes failures to named steps.
package chain
