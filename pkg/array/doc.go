// Package array provides slice combinators. Each combinator takes its
// configuration (a predicate, a count, an initial value) and returns a
// function over a slice, ready to be used as a pipe stage.
//
// No combinator mutates its input, and every returned slice is freshly
// allocated except for ForEach, which hands its input back as is.
// Lookups that may miss (Find, FindMap, First, Last, Nth) return a
// rop.Result carrying ErrNotFound or ErrOutOfRange.
package array
