// Package fn holds the small unary helpers most pipes start or end with.
package fn

func Identity[A any](value A) A {
	return value
}

// Inspect returns a stage that calls inspector with the value and passes the
// value on unchanged.
func Inspect[A any](inspector func(A)) func(A) A {
	return func(value A) A {
		inspector(value)
		return value
	}
}

// Map lifts f into a pipe stage.
func Map[A, B any](f func(A) B) func(A) B {
	return func(value A) B {
		return f(value)
	}
}

func Const[A, B any](b B) func(A) B {
	return func(A) B {
		return b
	}
}
