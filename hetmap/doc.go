// Package hetmap provides a map whose keys may differ in shape, not just in
// value. Every key — a pair, a triple, a scalar, anything implementing
// Hasher64 — is reduced to one fixed-width Canonical form before it reaches
// the single homogeneous backing store the Map wraps.
//
// The reduction is lossy on purpose: the map retains only the canonical form
// and the value, so there is no delete, no key iteration, and no collision
// detection. Two unequal keys that canonicalize equally silently share one
// entry. Callers wanting collision safety should store a fingerprint of the
// original key alongside the value and verify it on lookup.
package hetmap
