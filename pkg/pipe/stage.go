package pipe

// Stage is a typed pipeline from A to B built one function at a time.
// The zero Stage behaves like Start and is only usable when A and B are the same type.
type Stage[A, B any] struct {
	run func(A) B
	len int
}

// Start creates an empty stage that returns its input
func Start[A any]() Stage[A, A] {
	return Stage[A, A]{
		run: func(a A) A { return a },
	}
}

// From creates a stage from a single function
func From[A, B any](f func(A) B) Stage[A, B] {
	return Stage[A, B]{
		run: f,
		len: 1,
	}
}

// Then appends f to the stage
func Then[A, B, C any](s Stage[A, B], f func(B) C) Stage[A, C] {
	prev := s.Func()
	return Stage[A, C]{
		run: func(a A) C { return f(prev(a)) },
		len: s.len + 1,
	}
}

// Run feeds source through every function of the stage in order
func (s Stage[A, B]) Run(source A) B {
	return s.Func()(source)
}

// Func returns the stage as a plain function, usable as a step of another pipe
func (s Stage[A, B]) Func() func(A) B {
	if s.run == nil {
		return func(a A) B {
			v := any(a)
			if v == nil {
				var zero B
				return zero
			}
			return v.(B)
		}
	}
	return s.run
}

// Len is the number of functions in the stage
func (s Stage[A, B]) Len() int {
	return s.len
}
