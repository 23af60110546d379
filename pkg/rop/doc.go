// Package rop defines Result[A, B], a value that is either a success (Ok)
// carrying an A or a failure (Err) carrying a B.
//
// A Result is immutable: its tag and payload are fixed by Ok or Err and every
// combinator in solo and tiny derives a new Result instead of changing one.
//
// Key operations:
// - Ok/Err: construct a Result
// - IsOk/IsErr/Value/Failure/ValueOr: inspect it
// - Match/Fold: branch on the tag with both handlers supplied
// - GetErrors/JoinErrors: helpers for failures built with errors.Join
package rop
