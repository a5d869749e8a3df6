package specialize

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"

	"github.com/shape-bound/heterogo/tuple"
)

// Signature identifies one distinct combination of input shapes with a single
// fixed-width value.
type Signature uint64

// SignatureOf digests the given shapes, in order, into a Signature. The same
// shapes always produce the same signature; distinct combinations may collide
// like any hash.
func SignatureOf(shapes ...tuple.Shape) Signature {
	d := xxhash.New()
	var buf [8]byte
	for _, s := range shapes {
		binary.BigEndian.PutUint64(buf[:], s.Sum64())
		d.Write(buf[:])
	}
	return Signature(d.Sum64())
}

// Specializer resolves a shape signature into one reusable artifact, running
// build at most once per distinct signature it has retained. Build errors are
// retained too: a shape combination that failed to specialize once fails
// identically on every later call.
type Specializer interface {
	Specialize(sig Signature, build func() (any, error)) (any, error)
}
