package specreport_test

import (
	"testing"
	"time"

	"github.com/shape-bound/heterogo/specialize"
	"github.com/shape-bound/heterogo/specreport"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_RecordAndSnapshot(t *testing.T) {
	reg := specreport.NewRegistry(nil)
	from := time.Now()
	reg.Record(1, true, specreport.SpanBetween(from, from.Add(time.Millisecond)))
	reg.Record(1, false, specreport.EmptySpan())

	events := reg.Snapshot()
	require.Len(t, events, 2)
	assert.Equal(t, uint64(1), events[0].Signature)
	assert.True(t, events[0].Fresh)
	assert.False(t, events[1].Fresh)
}

func TestRegistry_SnapshotIsACopy(t *testing.T) {
	reg := specreport.NewRegistry(nil)
	reg.Record(1, true, specreport.EmptySpan())

	events := reg.Snapshot()
	events[0].Signature = 99

	assert.Equal(t, uint64(1), reg.Snapshot()[0].Signature)
}

func TestRegistry_Reset(t *testing.T) {
	reg := specreport.NewRegistry(nil)
	reg.Record(1, true, specreport.EmptySpan())
	reg.Reset()
	assert.Empty(t, reg.Snapshot())

	reg.Record(2, true, specreport.EmptySpan())
	assert.Len(t, reg.Snapshot(), 1)
}

func TestRegistry_CloseStopsRecording(t *testing.T) {
	reg := specreport.NewRegistry(nil)
	reg.Record(1, true, specreport.EmptySpan())
	reg.Close()
	reg.Record(2, true, specreport.EmptySpan())

	assert.Len(t, reg.Snapshot(), 1)
	reg.Close() // closing twice is a no-op
}

func TestRegistry_WiredIntoMemo(t *testing.T) {
	reg := specreport.NewRegistry(nil)
	memo := specialize.NewMemo(8, specialize.WithRegistry(reg))

	build := func() (any, error) { return "artifact", nil }
	_, err := memo.Specialize(specialize.Signature(5), build)
	require.NoError(t, err)
	_, err = memo.Specialize(specialize.Signature(5), build)
	require.NoError(t, err)

	events := reg.Snapshot()
	require.Len(t, events, 2)
	assert.True(t, events[0].Fresh, "first sighting of a signature builds")
	assert.False(t, events[1].Fresh, "second sighting reuses")
	assert.Equal(t, uint64(5), events[1].Signature)
}
