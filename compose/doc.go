// Package compose implements the heterogeneous truncating zip.
//
// Given n fixed-length heterogeneous sequences it produces one sequence of
// length min(len(inputs)) whose i-th element is the group of the i-th
// elements of every input. The shape of the result — its length and the arity
// of every group — is settled before any element is read: the Composer
// compiles one plan per distinct combination of input shapes, caches it
// through a specialize.Specializer, and reuses it for every later batch of
// that shape.
//
// Two fronts share the same policy:
//
//   - the ZipNOfM family: fully typed, one generic function per arity/length
//     combination, result types preserved position by position;
//   - Compose: erased, variadic, accepts any tuple.Sequence mix and truncates
//     ragged lengths to the shortest input.
//
// Composing fewer than two sequences is a caller bug and fails at plan time
// with ErrSingleInput or ErrNoInputs. Heterogeneity across positions is never
// an error.
package compose
