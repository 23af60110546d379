package solo

import (
	"errors"

	"github.com/ib-77/pipes/pkg/rop"
)

func Succeed[A, B any](input A) rop.Result[A, B] {
	return rop.Ok[A, B](input)
}

func Fail[A, B any](failure B) rop.Result[A, B] {
	return rop.Err[A](failure)
}

// Map transforms the success value. A failure passes through untouched.
func Map[A, B, C any](onOk func(A) B) func(rop.Result[A, C]) rop.Result[B, C] {
	return func(input rop.Result[A, C]) rop.Result[B, C] {
		if v, ok := input.Value(); ok {
			return rop.Ok[B, C](onOk(v))
		}
		failure, _ := input.Failure()
		return rop.Err[B](failure)
	}
}

// MapErr transforms the failure value. A success passes through untouched.
func MapErr[A, B, D any](onErr func(B) D) func(rop.Result[A, B]) rop.Result[A, D] {
	return func(input rop.Result[A, B]) rop.Result[A, D] {
		if failure, isErr := input.Failure(); isErr {
			return rop.Err[A](onErr(failure))
		}
		v, _ := input.Value()
		return rop.Ok[A, D](v)
	}
}

// Bimap transforms whichever branch is active; exactly one of onOk and onErr runs.
func Bimap[A, B, C, D any](onOk func(A) C, onErr func(B) D) func(rop.Result[A, B]) rop.Result[C, D] {
	return func(input rop.Result[A, B]) rop.Result[C, D] {
		return rop.Fold(input,
			func(v A) rop.Result[C, D] { return rop.Ok[C, D](onOk(v)) },
			func(failure B) rop.Result[C, D] { return rop.Err[C](onErr(failure)) })
	}
}

// Then switches to the Result produced by onOk. A failure passes through.
func Then[A, B, C any](onOk func(A) rop.Result[C, B]) func(rop.Result[A, B]) rop.Result[C, B] {
	return func(input rop.Result[A, B]) rop.Result[C, B] {
		if v, ok := input.Value(); ok {
			return onOk(v)
		}
		failure, _ := input.Failure()
		return rop.Err[C](failure)
	}
}

// Inspect runs onOk for its side effect and returns the input unchanged.
func Inspect[A, B any](onOk func(A)) func(rop.Result[A, B]) rop.Result[A, B] {
	return func(input rop.Result[A, B]) rop.Result[A, B] {
		if v, ok := input.Value(); ok {
			onOk(v)
		}
		return input
	}
}

func InspectErr[A, B any](onErr func(B)) func(rop.Result[A, B]) rop.Result[A, B] {
	return func(input rop.Result[A, B]) rop.Result[A, B] {
		if failure, isErr := input.Failure(); isErr {
			onErr(failure)
		}
		return input
	}
}

func DoubleInspect[A, B any](onOk func(A), onErr func(B)) func(rop.Result[A, B]) rop.Result[A, B] {
	return func(input rop.Result[A, B]) rop.Result[A, B] {
		input.Match(onOk, onErr)
		return input
	}
}

func Validate[A, B any](isValid func(A) bool, onInvalid func(A) B) func(rop.Result[A, B]) rop.Result[A, B] {
	return func(input rop.Result[A, B]) rop.Result[A, B] {
		v, ok := input.Value()
		if !ok || isValid(v) {
			return input
		}
		return rop.Err[A](onInvalid(v))
	}
}

func Finally[A, B, C any](onOk func(A) C, onErr func(B) C) func(rop.Result[A, B]) C {
	return func(input rop.Result[A, B]) C {
		return rop.Fold(input, onOk, onErr)
	}
}

func FromPair[A any](v A, err error) rop.Result[A, error] {
	if err != nil {
		return rop.Err[A](err)
	}
	return rop.Ok[A, error](v)
}

// Try calls a Go-style (value, error) function on the success value.
func Try[A, C any](onTryExecute func(A) (C, error)) func(rop.Result[A, error]) rop.Result[C, error] {
	return Then(func(v A) rop.Result[C, error] {
		out, err := onTryExecute(v)
		return FromPair(out, err)
	})
}

func FailOnError[A any](maybeErr func(A) error) func(rop.Result[A, error]) rop.Result[A, error] {
	return func(input rop.Result[A, error]) rop.Result[A, error] {
		v, ok := input.Value()
		if !ok {
			return input
		}
		if err := maybeErr(v); err != nil {
			return rop.Err[A](err)
		}
		return input
	}
}

// Collect turns a slice of Results into a Result of a slice. With breakOnError
// the first failure is returned as is; otherwise all failures are joined.
func Collect[A any](breakOnError bool) func([]rop.Result[A, error]) rop.Result[[]A, error] {
	return func(inputs []rop.Result[A, error]) rop.Result[[]A, error] {
		values := make([]A, 0, len(inputs))
		var err error

		for _, in := range inputs {
			if v, ok := in.Value(); ok {
				values = append(values, v)
				continue
			}

			failure, _ := in.Failure()
			if failure == nil {
				failure = errors.New("rop: failure without error")
			}
			if breakOnError {
				return rop.Err[[]A](failure)
			}
			err = rop.JoinErrors(err, failure)
		}

		if !rop.IsNil(err) {
			return rop.Err[[]A](err)
		}
		return rop.Ok[[]A, error](values)
	}
}
