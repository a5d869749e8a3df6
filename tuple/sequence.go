package tuple

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Sequence is the erased view of a fixed-length heterogeneous tuple.
// Length and per-position types are fixed once the value exists; At never
// changes what it returns for a given index.
type Sequence interface {
	Len() int
	At(i int) any
}

// Group is an erased fixed-arity sequence. It is the element type of composed
// sequences and doubles as a heterogeneous map key when no typed tuple fits.
type Group struct {
	elems []any
}

// NewGroup copies elems into a fresh Group. The Group never aliases the
// caller's slice.
func NewGroup(elems ...any) Group {
	cp := make([]any, len(elems))
	copy(cp, elems)
	return Group{elems: cp}
}

func (g Group) Len() int { return len(g.elems) }

func (g Group) At(i int) any {
	if i < 0 || i >= len(g.elems) {
		panic(indexMessage(i, len(g.elems)))
	}
	return g.elems[i]
}

// Shape captures what specialization dispatches on: arity plus the dynamic
// type at each position. Values do not participate.
type Shape struct {
	arity int
	types []string
}

// ShapeOf reads the shape of seq. It touches every position once.
func ShapeOf(seq Sequence) Shape {
	n := seq.Len()
	types := make([]string, n)
	for i := 0; i < n; i++ {
		types[i] = typeNameOf(seq.At(i))
	}
	return Shape{arity: n, types: types}
}

func (s Shape) Arity() int { return s.arity }

// Sum64 digests the shape into a fixed-width value. Equal shapes always
// digest equally; distinct shapes may collide like any hash.
func (s Shape) Sum64() uint64 {
	d := xxhash.New()
	d.WriteString(strconv.Itoa(s.arity))
	for _, t := range s.types {
		d.WriteString("/")
		d.WriteString(t)
	}
	return d.Sum64()
}

func (s Shape) String() string {
	return "(" + strings.Join(s.types, ", ") + ")"
}

func typeNameOf(v any) string {
	if v == nil {
		return "nil"
	}
	return reflect.TypeOf(v).String()
}

func indexMessage(i, arity int) string {
	return fmt.Sprintf("tuple: index %d out of range for arity %d", i, arity)
}
