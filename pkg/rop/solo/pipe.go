package solo

import "github.com/ib-77/attempt/pkg/rop"

// Pipe runs same-typed steps left to right, stopping at the first failure.
// With no steps it returns initial.
func Pipe[T, E any](initial rop.Either[T, E], steps ...func(v T) rop.Either[T, E]) rop.Either[T, E] {
	res := initial
	for _, step := range steps {
		if res.IsFailure() {
			return res
		}
		res = step(res.Result())
	}
	return res
}

// Pipe2 chains two typed steps with AndThen.
func Pipe2[A, B, C, E any](initial rop.Either[A, E],
	ab func(A) rop.Either[B, E],
	bc func(B) rop.Either[C, E]) rop.Either[C, E] {
	return AndThen(AndThen(initial, ab), bc)
}

// Pipe3 chains three typed steps with AndThen.
func Pipe3[A, B, C, D, E any](initial rop.Either[A, E],
	ab func(A) rop.Either[B, E],
	bc func(B) rop.Either[C, E],
	cd func(C) rop.Either[D, E]) rop.Either[D, E] {
	return AndThen(Pipe2(initial, ab, bc), cd)
}

// Pipe4 chains four typed steps with AndThen.
func Pipe4[A, B, C, D, F, E any](initial rop.Either[A, E],
	ab func(A) rop.Either[B, E],
	bc func(B) rop.Either[C, E],
	cd func(C) rop.Either[D, E],
	df func(D) rop.Either[F, E]) rop.Either[F, E] {
	return AndThen(Pipe3(initial, ab, bc, cd), df)
}

// Pipe5 chains five typed steps with AndThen.
func Pipe5[A, B, C, D, F, G, E any](initial rop.Either[A, E],
	ab func(A) rop.Either[B, E],
	bc func(B) rop.Either[C, E],
	cd func(C) rop.Either[D, E],
	df func(D) rop.Either[F, E],
	fg func(F) rop.Either[G, E]) rop.Either[G, E] {
	return AndThen(Pipe4(initial, ab, bc, cd, df), fg)
}
