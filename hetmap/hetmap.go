package hetmap

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/shape-bound/heterogo/shared/helper"
	"github.com/shape-bound/heterogo/tuple"
)

// ErrNoSuchKey is returned by Get when the canonical key is absent from the
// backing store.
var ErrNoSuchKey = fmt.Errorf("hetmap: key not found")

// Map lets keys of differing shape address a single homogeneous backing
// store. Every key is canonicalized before storage or lookup; the original
// key is never retained, so the map cannot enumerate or reconstruct keys.
// A Map holds exactly one store reference and is the store's only owner.
type Map[V any] struct {
	id     uuid.UUID
	store  Store
	hash   func(any) Canonical
	logger *zap.Logger
}

type Option[V any] func(*Map[V])

// WithHash swaps the canonicalizer for a host-supplied one. fn must be pure:
// equal source keys must produce equal canonical keys.
func WithHash[V any](fn func(any) Canonical) Option[V] {
	return func(m *Map[V]) {
		if fn != nil {
			m.hash = fn
		}
	}
}

// WithLogger routes the map's debug output to logger.
func WithLogger[V any](logger *zap.Logger) Option[V] {
	return func(m *Map[V]) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// Wrap takes sole ownership of store. No copy of stored entries occurs; a
// populated store stays populated. A nil store gets a fresh PlainStore.
func Wrap[V any](store Store, opts ...Option[V]) *Map[V] {
	if store == nil {
		store = NewPlainStore()
	}
	m := &Map[V]{
		id:     uuid.New(),
		store:  store,
		hash:   Canonicalize,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// New wraps a fresh single-goroutine store.
func New[V any](opts ...Option[V]) *Map[V] {
	return Wrap[V](NewPlainStore(), opts...)
}

type loaded struct {
	value any
	ok    bool
}

// Get canonicalizes key and looks the canonical form up in the backing store.
// Fails with ErrNoSuchKey when absent. No side effects.
func (m *Map[V]) Get(key any) (V, error) {
	canonical := m.hash(key)
	res := matchStore(m.store,
		func(s *PlainStore) loaded {
			v, ok := s.get(canonical)
			return loaded{value: v, ok: ok}
		},
		func(s *SyncStore) loaded {
			v, ok := s.get(canonical)
			return loaded{value: v, ok: ok}
		},
	)
	if !res.ok {
		m.logger.Debug("canonical key absent",
			zap.String("map_id", m.id.String()),
			zap.Uint64("canonical", uint64(canonical)),
		)
		var zero V
		return zero, fmt.Errorf("%w: canonical %d", ErrNoSuchKey, canonical)
	}
	return helper.GetTypedValueOf[V](func() (any, error) {
		return res.value, nil
	})
}

// Set canonicalizes key and inserts or overwrites the entry. A colliding
// canonical key is overwritten even when it came from a different-shaped
// source key.
func (m *Map[V]) Set(key any, value V) {
	canonical := m.hash(key)
	matchStore(m.store,
		func(s *PlainStore) struct{} {
			s.set(canonical, value)
			return struct{}{}
		},
		func(s *SyncStore) struct{} {
			s.set(canonical, value)
			return struct{}{}
		},
	)
	m.logger.Debug("stored value",
		zap.String("map_id", m.id.String()),
		zap.Uint64("canonical", uint64(canonical)),
	)
}

// Populate issues one Set per yielded key/value pair and reports how many
// writes happened. Each pair may carry a differently shaped key; all converge
// on the same canonical-key type.
func Populate[V any](m *Map[V], pairs tuple.Seq[tuple.T2[any, V]]) int {
	n := 0
	pairs(func(p tuple.T2[any, V]) bool {
		m.Set(p.V1, p.V2)
		n++
		return true
	})
	return n
}
