package chain

import (
	"github.com/ib-77/pipes/pkg/rop"
	"github.com/ib-77/pipes/pkg/rop/solo"
)

// Chain wraps a rop.Result to enable fluent chaining
type Chain[A, B any] struct {
	result rop.Result[A, B]
}

// Start creates a new chain from a rop.Result
func Start[A, B any](result rop.Result[A, B]) *Chain[A, B] {
	return &Chain[A, B]{
		result: result,
	}
}

// FromValue creates a new chain from a successful value
func FromValue[A, B any](value A) *Chain[A, B] {
	return &Chain[A, B]{
		result: rop.Ok[A, B](value),
	}
}

// Result returns the underlying rop.Result
func (c *Chain[A, B]) Result() rop.Result[A, B] {
	return c.result
}

// Then chains a function that returns rop.Result[C, B]
func Then[A, B, C any](c *Chain[A, B], onOk func(A) rop.Result[C, B]) *Chain[C, B] {
	return &Chain[C, B]{
		result: solo.Then(onOk)(c.result),
	}
}

// ThenTry chains a function that returns (C, error)
func ThenTry[A, C any](c *Chain[A, error], tryOnOk func(A) (C, error)) *Chain[C, error] {
	return &Chain[C, error]{
		result: solo.Try(tryOnOk)(c.result),
	}
}

// Map chains a pure transformation function
func Map[A, B, C any](c *Chain[A, B], onOk func(A) C) *Chain[C, B] {
	return &Chain[C, B]{
		result: solo.Map[A, C, B](onOk)(c.result),
	}
}

// Bimap transforms whichever branch is active
func Bimap[A, B, C, D any](c *Chain[A, B], onOk func(A) C, onErr func(B) D) *Chain[C, D] {
	return &Chain[C, D]{
		result: solo.Bimap(onOk, onErr)(c.result),
	}
}

// ValidateAll runs every check against the success value. With breakOnError
// the first failed check ends the chain; otherwise all failures are joined.
func ValidateAll[A any](c *Chain[A, error], breakOnError bool, checks ...func(A) error) *Chain[A, error] {
	v, ok := c.result.Value()
	if !ok {
		return c
	}

	var err error
	for _, check := range checks {
		e := check(v)
		if e == nil {
			continue
		}
		if breakOnError {
			return &Chain[A, error]{result: rop.Err[A](e)}
		}
		err = rop.JoinErrors(err, e)
	}

	if !rop.IsNil(err) {
		return &Chain[A, error]{result: rop.Err[A](err)}
	}
	return c
}

// Ensure performs a side effect without changing the result
func (c *Chain[A, B]) Ensure(onOk func(A)) *Chain[A, B] {
	return &Chain[A, B]{
		result: solo.Inspect[A, B](onOk)(c.result),
	}
}

// Finally collapses the chain into a final value using solo.Finally
func Finally[A, B, C any](c *Chain[A, B], onOk func(A) C, onErr func(B) C) C {
	return solo.Finally(onOk, onErr)(c.result)
}
