package compose

import (
	"github.com/shape-bound/heterogo/tuple"
)

// The ZipNOfM family is the fully typed front of the composer: N input tuples
// of length M, one concrete specialization per arity/length combination the
// program actually instantiates. No erasure in the result type, no runtime
// failure modes. Ragged lengths go through Compose instead.

func Zip2Of2[A1, A2, B1, B2 any](
	a tuple.T2[A1, A2],
	b tuple.T2[B1, B2],
) tuple.T2[tuple.T2[A1, B1], tuple.T2[A2, B2]] {
	return tuple.New2(
		tuple.New2(a.V1, b.V1),
		tuple.New2(a.V2, b.V2),
	)
}

func Zip2Of3[A1, A2, A3, B1, B2, B3 any](
	a tuple.T3[A1, A2, A3],
	b tuple.T3[B1, B2, B3],
) tuple.T3[tuple.T2[A1, B1], tuple.T2[A2, B2], tuple.T2[A3, B3]] {
	return tuple.New3(
		tuple.New2(a.V1, b.V1),
		tuple.New2(a.V2, b.V2),
		tuple.New2(a.V3, b.V3),
	)
}

func Zip2Of4[A1, A2, A3, A4, B1, B2, B3, B4 any](
	a tuple.T4[A1, A2, A3, A4],
	b tuple.T4[B1, B2, B3, B4],
) tuple.T4[tuple.T2[A1, B1], tuple.T2[A2, B2], tuple.T2[A3, B3], tuple.T2[A4, B4]] {
	return tuple.New4(
		tuple.New2(a.V1, b.V1),
		tuple.New2(a.V2, b.V2),
		tuple.New2(a.V3, b.V3),
		tuple.New2(a.V4, b.V4),
	)
}

func Zip3Of2[A1, A2, B1, B2, C1, C2 any](
	a tuple.T2[A1, A2],
	b tuple.T2[B1, B2],
	c tuple.T2[C1, C2],
) tuple.T2[tuple.T3[A1, B1, C1], tuple.T3[A2, B2, C2]] {
	return tuple.New2(
		tuple.New3(a.V1, b.V1, c.V1),
		tuple.New3(a.V2, b.V2, c.V2),
	)
}

func Zip3Of3[A1, A2, A3, B1, B2, B3, C1, C2, C3 any](
	a tuple.T3[A1, A2, A3],
	b tuple.T3[B1, B2, B3],
	c tuple.T3[C1, C2, C3],
) tuple.T3[tuple.T3[A1, B1, C1], tuple.T3[A2, B2, C2], tuple.T3[A3, B3, C3]] {
	return tuple.New3(
		tuple.New3(a.V1, b.V1, c.V1),
		tuple.New3(a.V2, b.V2, c.V2),
		tuple.New3(a.V3, b.V3, c.V3),
	)
}

func Zip3Of4[A1, A2, A3, A4, B1, B2, B3, B4, C1, C2, C3, C4 any](
	a tuple.T4[A1, A2, A3, A4],
	b tuple.T4[B1, B2, B3, B4],
	c tuple.T4[C1, C2, C3, C4],
) tuple.T4[tuple.T3[A1, B1, C1], tuple.T3[A2, B2, C2], tuple.T3[A3, B3, C3], tuple.T3[A4, B4, C4]] {
	return tuple.New4(
		tuple.New3(a.V1, b.V1, c.V1),
		tuple.New3(a.V2, b.V2, c.V2),
		tuple.New3(a.V3, b.V3, c.V3),
		tuple.New3(a.V4, b.V4, c.V4),
	)
}
