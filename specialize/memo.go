package specialize

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/shape-bound/heterogo/specreport"
)

type entry struct {
	artifact any
	err      error
}

// Memo is the default Specializer: a double-buffered, size-capped cache of
// specialization artifacts. When the live table fills up, the buffers rotate
// and the stale table is dropped, so the most recent maxSize entries always
// survive a rotation.
type Memo struct {
	id       uuid.UUID
	tables   [2]*sync.Map
	headIdx  uint32
	size     atomic.Uint32
	maxSize  uint32
	logger   *zap.Logger
	registry *specreport.Registry
}

type MemoOption func(*Memo)

// WithLogger routes the memo's debug output to logger.
func WithLogger(logger *zap.Logger) MemoOption {
	return func(m *Memo) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithRegistry reports every Specialize call into reg.
func WithRegistry(reg *specreport.Registry) MemoOption {
	return func(m *Memo) {
		m.registry = reg
	}
}

func NewMemo(maxSize uint32, opts ...MemoOption) *Memo {
	if maxSize == 0 {
		panic("maxSize should be greater than 0")
	}
	m := &Memo{
		id:      uuid.New(),
		tables:  [2]*sync.Map{{}, {}},
		maxSize: maxSize,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Memo) Specialize(sig Signature, build func() (any, error)) (any, error) {
	if e, ok := m.load(sig); ok {
		if m.registry != nil {
			m.registry.Record(uint64(sig), false, specreport.EmptySpan())
		}
		return e.artifact, e.err
	}

	from := time.Now()
	artifact, err := build()
	to := time.Now()

	m.store(sig, entry{artifact: artifact, err: err})
	m.logger.Debug("compiled new specialization",
		zap.String("memo_id", m.id.String()),
		zap.Uint64("signature", uint64(sig)),
		zap.Error(err),
	)
	if m.registry != nil {
		m.registry.Record(uint64(sig), true, specreport.SpanBetween(from, to))
	}
	return artifact, err
}

func (m *Memo) load(sig Signature) (entry, bool) {
	headIdx := m.headIdx
	if v, ok := m.tables[headIdx].Load(sig); ok {
		return v.(entry), true
	}
	if v, ok := m.tables[1-headIdx].Load(sig); ok {
		return v.(entry), true
	}
	return entry{}, false
}

func (m *Memo) store(sig Signature, e entry) {
	if swapped := m.size.CompareAndSwap(m.maxSize, 0); swapped {
		m.headIdx = 1 - m.headIdx
		m.tables[m.headIdx] = &sync.Map{}
	}
	m.tables[m.headIdx].Store(sig, e)
	m.size.Add(1)
}
