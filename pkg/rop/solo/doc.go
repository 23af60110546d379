// Package solo contains single-value, synchronous combinators over
// rop.Result. Every combinator takes its configuration and returns a unary
// function, so it can be used directly as a pipe stage.
//
// Highlights:
// - Succeed/Fail: construct a Result
// - Map/MapErr/Bimap: transform one or both branches
// - Then: switch from Result[A, B] to Result[C, B]
// - Inspect/InspectErr/DoubleInspect: side-effect helpers
// - Validate/FailOnError: turn a success into a failure on a failed check
// - FromPair/Try: bridge Go (value, error) returns into Result
// - Collect: gather many Results into one
// - Finally: reduce to a concrete value via success/failure handlers
package solo
