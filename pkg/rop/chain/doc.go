// Package chain provides a fluent wrapper around rop.Result[A, B]
// for building synchronous chains that may change the success type at
// every step, using solo primitives.
//
// Go methods cannot add type parameters, so type-changing steps are
// package functions taking the chain as their first argument.
//
// Key operations:
// - Start/FromValue: begin a chain from a Result or value
// - Then: switch to a new Result[C, B] via a function
// - ThenTry: call a function (C, error) and convert error to failure
// - Map/Bimap: transform the successful value, or both branches
// - ValidateAll: run several checks, stopping at or joining failures
// - Ensure: run side effects on success without changing the result
// - Finally: collapse the chain into a final value via handlers
package chain
