package pipe

// Pipe applies fns to source from left to right and returns the last output.
// With no functions it returns source unchanged.
func Pipe[T any](source T, fns ...func(T) T) T {
	piped := source
	for _, f := range fns {
		piped = f(piped)
	}
	return piped
}

// Compose builds the pipeline now and applies it when the returned function is called.
func Compose[T any](fns ...func(T) T) func(T) T {
	staged := make([]func(T) T, len(fns))
	copy(staged, fns)

	return func(source T) T {
		return Pipe(source, staged...)
	}
}
