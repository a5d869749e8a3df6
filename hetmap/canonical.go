package hetmap

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/cespare/xxhash/v2"

	"github.com/shape-bound/heterogo/tuple"
)

// Canonical is the single fixed-width form every key reduces to before it
// touches the backing store.
type Canonical uint64

// Hasher64 lets a key supply its own canonical form directly. It takes
// precedence over the built-in reduction.
type Hasher64 interface {
	Sum64() uint64
}

// Canonicalize reduces key to its Canonical form. It is pure: equal source
// keys always reduce to the same canonical key. Shape participates in
// identity, so a pair and a triple sharing a prefix reduce differently.
// Collisions between unequal keys remain possible and are not detected.
func Canonicalize(key any) Canonical {
	if h, ok := key.(Hasher64); ok {
		return Canonical(h.Sum64())
	}
	if seq, ok := key.(tuple.Sequence); ok {
		return canonicalizeSequence(seq)
	}
	d := xxhash.New()
	writeElem(d, key)
	return Canonical(d.Sum64())
}

func canonicalizeSequence(seq tuple.Sequence) Canonical {
	d := xxhash.New()
	d.WriteString(strconv.Itoa(seq.Len()))
	for i := 0; i < seq.Len(); i++ {
		d.WriteString("/")
		writeElem(d, seq.At(i))
	}
	return Canonical(d.Sum64())
}

func writeElem(d *xxhash.Digest, v any) {
	d.WriteString(typeNameOf(v))
	d.WriteString("=")
	d.WriteString(fmt.Sprintf("%v", v))
}

func typeNameOf(v any) string {
	if v == nil {
		return "nil"
	}
	return reflect.TypeOf(v).String()
}
