package rop

import "fmt"

type tag uint8

const (
	errTag tag = iota
	okTag
)

// Result holds either a success value of type A or a failure value of type B.
// The zero Result is an Err carrying the zero B.
type Result[A, B any] struct {
	tag     tag
	value   A
	failure B
}

func Ok[A, B any](value A) Result[A, B] {
	return Result[A, B]{
		tag:   okTag,
		value: value,
	}
}

func Err[A, B any](failure B) Result[A, B] {
	return Result[A, B]{
		tag:     errTag,
		failure: failure,
	}
}

func (r Result[A, B]) IsOk() bool {
	return r.tag == okTag
}

func (r Result[A, B]) IsErr() bool {
	return r.tag == errTag
}

// Value returns the success value and true, or the zero A and false on Err.
func (r Result[A, B]) Value() (A, bool) {
	if r.tag == okTag {
		return r.value, true
	}
	var zero A
	return zero, false
}

// Failure returns the failure value and true, or the zero B and false on Ok.
func (r Result[A, B]) Failure() (B, bool) {
	if r.tag == errTag {
		return r.failure, true
	}
	var zero B
	return zero, false
}

func (r Result[A, B]) ValueOr(fallback A) A {
	if r.tag == okTag {
		return r.value
	}
	return fallback
}

// Match calls exactly one of the handlers depending on the tag.
// A nil handler for the active branch is skipped.
func (r Result[A, B]) Match(onOk func(A), onErr func(B)) {
	switch r.tag {
	case okTag:
		if onOk != nil {
			onOk(r.value)
		}
	default:
		if onErr != nil {
			onErr(r.failure)
		}
	}
}

func (r Result[A, B]) String() string {
	if r.tag == okTag {
		return fmt.Sprintf("Ok(%v)", r.value)
	}
	return fmt.Sprintf("Err(%v)", r.failure)
}

// Fold reduces a Result to a single value. Both branches are required.
func Fold[A, B, C any](r Result[A, B], onOk func(A) C, onErr func(B) C) C {
	if r.tag == okTag {
		return onOk(r.value)
	}
	return onErr(r.failure)
}
