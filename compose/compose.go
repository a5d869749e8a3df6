package compose

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/shape-bound/heterogo/specialize"
	"github.com/shape-bound/heterogo/tuple"
)

var (
	// ErrNoInputs reports a call with zero sequences. There is nothing to
	// compose and nothing sensible to return; this is a caller bug.
	ErrNoInputs = errors.New("compose: no input sequences")

	// ErrSingleInput reports a call with exactly one sequence. A composition
	// needs at least two inputs.
	ErrSingleInput = errors.New("compose: a single sequence cannot be composed")
)

// Composed is the result of zipping n sequences: a sequence of length
// min(len(inputs)) whose i-th element groups the i-th element of every input.
// Composed implements tuple.Sequence, so compositions nest.
type Composed struct {
	groups []tuple.Group
	arity  int
}

func (c Composed) Len() int { return len(c.groups) }

// Arity is the number of inputs that were composed, i.e. the length of every
// group.
func (c Composed) Arity() int { return c.arity }

func (c Composed) At(i int) any { return c.Group(i) }

// Group returns the i-th group. Panics when i is out of range.
func (c Composed) Group(i int) tuple.Group {
	if i < 0 || i >= len(c.groups) {
		panic(fmt.Sprintf("compose: group index %d out of range for length %d", i, len(c.groups)))
	}
	return c.groups[i]
}

// All iterates the groups once, in order.
func (c Composed) All() tuple.Seq[tuple.Sequence] {
	return func(yield func(tuple.Sequence) bool) {
		for _, g := range c.groups {
			if !yield(g) {
				return
			}
		}
	}
}

// plan is the shape-level outcome of a composition: fully determined before
// any value flows through it.
type plan struct {
	length int
	arity  int
}

func compilePlan(shapes []tuple.Shape) (plan, error) {
	switch len(shapes) {
	case 0:
		return plan{}, ErrNoInputs
	case 1:
		return plan{}, ErrSingleInput
	}
	m := shapes[0].Arity()
	for _, s := range shapes[1:] {
		if s.Arity() < m {
			m = s.Arity()
		}
	}
	return plan{length: m, arity: len(shapes)}, nil
}

func (p plan) apply(seqs []tuple.Sequence) Composed {
	groups := make([]tuple.Group, p.length)
	row := make([]any, p.arity)
	for i := 0; i < p.length; i++ {
		for j, s := range seqs {
			row[j] = s.At(i)
		}
		groups[i] = tuple.NewGroup(row...)
	}
	return Composed{groups: groups, arity: p.arity}
}

// Composer compiles one plan per distinct combination of input shapes and
// reuses it for every later batch of that shape. The plan cache is whatever
// Specializer the Composer was built with.
type Composer struct {
	spec   specialize.Specializer
	logger *zap.Logger
}

type Option func(*Composer)

// WithLogger routes the composer's debug output to logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Composer) {
		if logger != nil {
			c.logger = logger
		}
	}
}

const defaultMemoSize = 256

// NewComposer returns a Composer backed by spec. A nil spec gets a fresh
// default memo.
func NewComposer(spec specialize.Specializer, opts ...Option) *Composer {
	if spec == nil {
		spec = specialize.NewMemo(defaultMemoSize)
	}
	c := &Composer{
		spec:   spec,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compose zips seqs into a Composed sequence, truncating to the shortest
// input. Excess elements of longer inputs are dropped, never an error.
// Fails with ErrNoInputs or ErrSingleInput before any element is read.
func (c *Composer) Compose(seqs ...tuple.Sequence) (Composed, error) {
	shapes := make([]tuple.Shape, len(seqs))
	for i, s := range seqs {
		shapes[i] = tuple.ShapeOf(s)
	}
	sig := specialize.SignatureOf(shapes...)

	raw, err := c.spec.Specialize(sig, func() (any, error) {
		p, err := compilePlan(shapes)
		if err != nil {
			return nil, err
		}
		c.logger.Debug("compiled composition plan",
			zap.Uint64("signature", uint64(sig)),
			zap.Int("inputs", p.arity),
			zap.Int("length", p.length),
		)
		return p, nil
	})
	if err != nil {
		return Composed{}, err
	}
	return raw.(plan).apply(seqs), nil
}

var defaultComposer = NewComposer(nil)

// Compose zips seqs through a process-wide default Composer.
func Compose(seqs ...tuple.Sequence) (Composed, error) {
	return defaultComposer.Compose(seqs...)
}
