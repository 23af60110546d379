package pipe

// Fixed-arity pipes keep every intermediate type checked. PipeN takes N stages.

// Pipe1 applies f1 to source.
func Pipe1[A, B any](source A, f1 func(A) B) B {
	return f1(source)
}

// Pipe2 applies f1 then f2 to source: f2(f1(source)).
func Pipe2[A, B, C any](source A, f1 func(A) B, f2 func(B) C) C {
	return f2(f1(source))
}

func Pipe3[A, B, C, D any](source A, f1 func(A) B, f2 func(B) C, f3 func(C) D) D {
	return f3(f2(f1(source)))
}

func Pipe4[A, B, C, D, E any](source A, f1 func(A) B, f2 func(B) C, f3 func(C) D, f4 func(D) E) E {
	return f4(f3(f2(f1(source))))
}

func Pipe5[A, B, C, D, E, F any](source A, f1 func(A) B, f2 func(B) C, f3 func(C) D, f4 func(D) E, f5 func(E) F) F {
	return f5(f4(f3(f2(f1(source)))))
}

func Pipe6[A, B, C, D, E, F, G any](source A, f1 func(A) B, f2 func(B) C, f3 func(C) D, f4 func(D) E, f5 func(E) F, f6 func(F) G) G {
	return f6(f5(f4(f3(f2(f1(source))))))
}

func Pipe7[A, B, C, D, E, F, G, H any](source A, f1 func(A) B, f2 func(B) C, f3 func(C) D, f4 func(D) E, f5 func(E) F, f6 func(F) G, f7 func(G) H) H {
	return f7(f6(f5(f4(f3(f2(f1(source)))))))
}

func Pipe8[A, B, C, D, E, F, G, H, I any](source A, f1 func(A) B, f2 func(B) C, f3 func(C) D, f4 func(D) E, f5 func(E) F, f6 func(F) G, f7 func(G) H, f8 func(H) I) I {
	return f8(f7(f6(f5(f4(f3(f2(f1(source))))))))
}

func Pipe9[A, B, C, D, E, F, G, H, I, J any](source A, f1 func(A) B, f2 func(B) C, f3 func(C) D, f4 func(D) E, f5 func(E) F, f6 func(F) G, f7 func(G) H, f8 func(H) I, f9 func(I) J) J {
	return f9(f8(f7(f6(f5(f4(f3(f2(f1(source)))))))))
}

func Pipe10[A, B, C, D, E, F, G, H, I, J, K any](source A, f1 func(A) B, f2 func(B) C, f3 func(C) D, f4 func(D) E, f5 func(E) F, f6 func(F) G, f7 func(G) H, f8 func(H) I, f9 func(I) J, f10 func(J) K) K {
	return f10(f9(f8(f7(f6(f5(f4(f3(f2(f1(source))))))))))
}
