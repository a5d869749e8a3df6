package hetmap

import (
	"fmt"
	"sync"
)

// Store is the sealed marker for homogeneous Canonical->value backing stores.
// Only the store types defined here implement it.
type Store interface {
	store()
}

// PlainStore is a map-backed store for single-goroutine use. It performs no
// internal synchronization; callers needing shared access serialize
// externally or pick SyncStore.
type PlainStore struct {
	m map[Canonical]any
}

func NewPlainStore() *PlainStore {
	return &PlainStore{m: make(map[Canonical]any)}
}

func (s *PlainStore) store() {}

func (s *PlainStore) get(k Canonical) (any, bool) {
	v, ok := s.m[k]
	return v, ok
}

func (s *PlainStore) set(k Canonical, v any) {
	s.m[k] = v
}

// SyncStore is a sync.Map-backed store, safe for concurrent use to the extent
// sync.Map is.
type SyncStore struct {
	m *sync.Map
}

func NewSyncStore() *SyncStore {
	return &SyncStore{m: &sync.Map{}}
}

func (s *SyncStore) store() {}

func (s *SyncStore) get(k Canonical) (any, bool) {
	return s.m.Load(k)
}

func (s *SyncStore) set(k Canonical, v any) {
	s.m.Store(k, v)
}

func matchStore[T any](
	st Store,
	plainCallback func(*PlainStore) T,
	syncCallback func(*SyncStore) T,
) T {
	switch st := st.(type) {
	case *PlainStore:
		return plainCallback(st)
	case *SyncStore:
		return syncCallback(st)
	default:
		// Store is sealed, so this is a bug in the code.
		panic(fmt.Sprintf("exhaustive match fallback, store type: %T", st))
	}
}
