package tiny

import (
	"github.com/ib-77/pipes/pkg/rop"
	"github.com/ib-77/pipes/pkg/rop/solo"
)

type Chain[A, B any] struct {
	res rop.Result[A, B]
}

func Start[A, B any](r rop.Result[A, B]) Chain[A, B] {
	return Chain[A, B]{res: r}
}

func FromValue[A, B any](v A) Chain[A, B] {
	return Start(rop.Ok[A, B](v))
}

func (c Chain[A, B]) Result() rop.Result[A, B] {
	return c.res
}

// Then composes functions that already return rop.Result[A, B]
func (c Chain[A, B]) Then(onOk func(A) rop.Result[A, B]) Chain[A, B] {
	return Chain[A, B]{res: solo.Then(onOk)(c.res)}
}

// Map transforms the successful value to a new value
func (c Chain[A, B]) Map(onOk func(A) A) Chain[A, B] {
	return Chain[A, B]{res: solo.Map[A, A, B](onOk)(c.res)}
}

func (c Chain[A, B]) MapErr(onErr func(B) B) Chain[A, B] {
	return Chain[A, B]{res: solo.MapErr[A](onErr)(c.res)}
}

func (c Chain[A, B]) RepeatUntil(onOk func(A) rop.Result[A, B], until func(A) bool) Chain[A, B] {
	if c.res.IsErr() {
		return c
	}

	for {
		c = c.Then(onOk)

		v, ok := c.res.Value()
		if !ok || !until(v) {
			return c
		}
	}
}

func (c Chain[A, B]) While(onOk func(A) rop.Result[A, B], while func(A) bool) Chain[A, B] {
	for {
		v, ok := c.res.Value()
		if !ok || !while(v) {
			return c
		}
		c = c.Then(onOk)
	}
}

// Or returns the first successful chain, or the first failed one if none succeeded
func (c Chain[A, B]) Or(alternatives ...Chain[A, B]) Chain[A, B] {
	if c.res.IsOk() {
		return c
	}
	for _, alt := range alternatives {
		if alt.res.IsOk() {
			return alt
		}
	}
	return c
}

// And returns the first failed chain, or the last one if all succeeded
func (c Chain[A, B]) And(required ...Chain[A, B]) Chain[A, B] {
	last := c
	for _, ch := range append([]Chain[A, B]{c}, required...) {
		if ch.res.IsErr() {
			return ch
		}
		last = ch
	}
	return last
}

// Ensure triggers side effects for success/failure without changing the result
func (c Chain[A, B]) Ensure(onOk func(A), onErr func(B)) Chain[A, B] {
	c.res.Match(onOk, onErr)
	return c
}

// Finally collapses the chain to a final value
func (c Chain[A, B]) Finally(onOk func(A) A, onErr func(B) A) A {
	return solo.Finally(onOk, onErr)(c.res)
}
