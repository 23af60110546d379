// Package tiny provides a minimal fluent Chain[A, B] for synchronous
// composition of rop.Result values whose types stay fixed along the chain.
//
// It keeps the API surface very small:
// - Start/FromValue: create a Chain
// - Then/Map/MapErr: compose result-returning or plain functions
// - While/RepeatUntil: loop a step while the value satisfies a condition
// - Or/And: pick among several chains
// - Ensure: trigger side effects per branch
// - Finally: reduce to a concrete value via handlers
//
// For steps that change the value type, use the curried combinators in solo
// with pipe.Pipe or pipe.Then.
package tiny
