package hetmap_test

import (
	"testing"

	"github.com/shape-bound/heterogo/compose"
	"github.com/shape-bound/heterogo/hetmap"
	"github.com/shape-bound/heterogo/tuple"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMap_SetOverwrites(t *testing.T) {
	m := hetmap.New[string]()
	key := tuple.New2(1, 2)

	m.Set(key, "v1")
	m.Set(key, "v2")

	got, err := m.Get(key)
	require.NoError(t, err)
	assert.Equal(t, "v2", got)
}

func TestMap_CrossShapeCoexistence(t *testing.T) {
	m := hetmap.New[int]()
	pair := tuple.New2(1, 2)
	triple := tuple.New3(1, 2, 3)

	m.Set(pair, 10)
	m.Set(triple, 20)

	got, err := m.Get(pair)
	require.NoError(t, err)
	assert.Equal(t, 10, got)

	got, err = m.Get(triple)
	require.NoError(t, err)
	assert.Equal(t, 20, got)
}

func TestMap_GetMissingKey(t *testing.T) {
	m := hetmap.New[int]()
	m.Set(tuple.New2("a", "b"), 1)

	_, err := m.Get(tuple.New2("c", "d"))
	assert.ErrorIs(t, err, hetmap.ErrNoSuchKey)
}

func TestMap_MixedArityKeys(t *testing.T) {
	m := hetmap.New[complex128]()

	m.Set(tuple.New2(1, 2), 1i)
	m.Set(tuple.New3(3, 4, 5), 2i)
	m.Set(tuple.New1(6), 3i)

	got, err := m.Get(tuple.New2(1, 2))
	require.NoError(t, err)
	assert.Equal(t, 1i, got)

	got, err = m.Get(tuple.New3(3, 4, 5))
	require.NoError(t, err)
	assert.Equal(t, 2i, got)

	got, err = m.Get(tuple.New1(6))
	require.NoError(t, err)
	assert.Equal(t, 3i, got)
}

func TestMap_ScalarKeys(t *testing.T) {
	m := hetmap.New[string]()
	m.Set("name", "value")
	m.Set(7, "seven")

	got, err := m.Get("name")
	require.NoError(t, err)
	assert.Equal(t, "value", got)

	got, err = m.Get(7)
	require.NoError(t, err)
	assert.Equal(t, "seven", got)
}

func TestWrap_KeepsExistingEntries(t *testing.T) {
	store := hetmap.NewPlainStore()

	first := hetmap.Wrap[int](store)
	first.Set(tuple.New2("a", 1), 100)

	second := hetmap.Wrap[int](store)
	got, err := second.Get(tuple.New2("a", 1))
	require.NoError(t, err)
	assert.Equal(t, 100, got)
}

func TestMap_SyncStore(t *testing.T) {
	m := hetmap.Wrap[string](hetmap.NewSyncStore())
	m.Set(tuple.New2(1, "x"), "hello")

	got, err := m.Get(tuple.New2(1, "x"))
	require.NoError(t, err)
	assert.Equal(t, "hello", got)

	_, err = m.Get(tuple.New2(2, "x"))
	assert.ErrorIs(t, err, hetmap.ErrNoSuchKey)
}

func TestMap_CustomHashCollisionOverwrites(t *testing.T) {
	// A constant canonicalizer collapses every key into one entry: the
	// documented overwrite-on-collision behavior, made observable.
	m := hetmap.New[string](hetmap.WithHash[string](func(any) hetmap.Canonical {
		return hetmap.Canonical(42)
	}))

	m.Set(tuple.New2(1, 2), "first")
	m.Set(tuple.New3("a", "b", "c"), "second")

	got, err := m.Get(tuple.New2(1, 2))
	require.NoError(t, err)
	assert.Equal(t, "second", got, "colliding canonical keys silently overwrite")
}

type namedKey struct {
	hash uint64
}

func (k namedKey) Sum64() uint64 { return k.hash }

func TestMap_Hasher64Key(t *testing.T) {
	m := hetmap.New[int]()
	m.Set(namedKey{hash: 7}, 70)

	got, err := m.Get(namedKey{hash: 7})
	require.NoError(t, err)
	assert.Equal(t, 70, got)

	_, err = m.Get(namedKey{hash: 8})
	assert.ErrorIs(t, err, hetmap.ErrNoSuchKey)
}

func TestPopulate(t *testing.T) {
	m := hetmap.New[complex128]()
	pairs := tuple.Seq[tuple.T2[any, complex128]](func(yield func(tuple.T2[any, complex128]) bool) {
		if !yield(tuple.New2[any, complex128](tuple.New2(1, 2), 1i)) {
			return
		}
		if !yield(tuple.New2[any, complex128](tuple.New3(3, 4, 5), 2i)) {
			return
		}
		yield(tuple.New2[any, complex128](tuple.New1(6), 3i))
	})

	n := hetmap.Populate(m, pairs)
	assert.Equal(t, 3, n)

	got, err := m.Get(tuple.New3(3, 4, 5))
	require.NoError(t, err)
	assert.Equal(t, 2i, got)
}

func TestPopulate_FromComposedBatch(t *testing.T) {
	keys, err := compose.Compose(
		tuple.New2("user", "order"),
		tuple.New2(1, 2),
	)
	require.NoError(t, err)

	values := []complex128{1i, 2i}
	m := hetmap.New[complex128]()

	i := 0
	keys.All()(func(key tuple.Sequence) bool {
		m.Set(key, values[i])
		i++
		return true
	})

	got, err := m.Get(tuple.NewGroup("user", 1))
	require.NoError(t, err)
	assert.Equal(t, 1i, got)

	got, err = m.Get(tuple.NewGroup("order", 2))
	require.NoError(t, err)
	assert.Equal(t, 2i, got)
}
