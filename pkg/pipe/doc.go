// Package pipe threads a value through a sequence of unary functions, left to
// right, the way a shell pipe threads output into the next command.
//
// Key operations:
// - Pipe: same-type pipe over any number of functions; no functions is identity
// - Pipe1..Pipe10: typed pipes whose value type may change at every step
// - Start/From/Then/Run: build a typed Stage of any length, run it later
// - Compose: build a same-type pipe now, apply it later
//
// The engine does no recovery and no logging: a panic raised by a stage
// reaches the caller of Pipe unchanged. Use rop.Result stages when failures
// should travel as values instead.
package pipe
