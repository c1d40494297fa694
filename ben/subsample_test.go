package ben

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeIterator replays a fixed slice of Records, the same shape a
// ben.Reader or xben.Reader produces.
type fakeIterator struct {
	records []Record
	pos     int
}

func (f *fakeIterator) Next() (Record, bool, error) {
	if f.pos >= len(f.records) {
		return Record{}, false, nil
	}
	rec := f.records[f.pos]
	f.pos++
	return rec, true, nil
}

func drain(t *testing.T, it RecordIterator) []Record {
	t.Helper()
	var out []Record
	for {
		rec, ok, err := it.Next()
		require.NoError(t, err)
		if !ok {
			return out
		}
		out = append(out, rec)
	}
}

func TestSubsampleIndices(t *testing.T) {
	inner := &fakeIterator{records: []Record{
		{Assignment: []uint16{1}, Count: 1},
		{Assignment: []uint16{2}, Count: 1},
		{Assignment: []uint16{3}, Count: 1},
		{Assignment: []uint16{4}, Count: 1},
	}}
	sub := NewSubsample(inner, Indices([]int{2, 4, 4, 2}))
	got := drain(t, sub)
	require.Len(t, got, 2)
	assert.Equal(t, []uint16{2}, got[0].Assignment)
	assert.Equal(t, uint16(1), got[0].Count)
	assert.Equal(t, []uint16{4}, got[1].Assignment)
}

func TestSubsampleIndicesWithinMkvChainGroup(t *testing.T) {
	// A single group spans expanded samples 1-5; selecting indices 2 and 4
	// should both land inside it and report Count 2.
	inner := &fakeIterator{records: []Record{
		{Assignment: []uint16{9}, Count: 5},
	}}
	sub := NewSubsample(inner, Indices([]int{2, 4}))
	got := drain(t, sub)
	require.Len(t, got, 1)
	assert.Equal(t, uint16(2), got[0].Count)
}

func TestSubsampleRangeStopsEarly(t *testing.T) {
	inner := &fakeIterator{records: []Record{
		{Assignment: []uint16{1}, Count: 1},
		{Assignment: []uint16{2}, Count: 1},
		{Assignment: []uint16{3}, Count: 1},
	}}
	sub := NewSubsample(inner, Range(1, 2))
	got := drain(t, sub)
	require.Len(t, got, 2)
	assert.Equal(t, 2, inner.pos, "Range(1,2) must stop pulling before the third record")
}

func TestSubsampleEvery(t *testing.T) {
	inner := &fakeIterator{records: []Record{
		{Assignment: []uint16{1}, Count: 1},
		{Assignment: []uint16{2}, Count: 1},
		{Assignment: []uint16{3}, Count: 1},
		{Assignment: []uint16{4}, Count: 1},
		{Assignment: []uint16{5}, Count: 1},
	}}
	sub := NewSubsample(inner, Every(2, 1))
	got := drain(t, sub)
	var assignments [][]uint16
	for _, r := range got {
		assignments = append(assignments, r.Assignment)
	}
	assert.Equal(t, [][]uint16{{1}, {3}, {5}}, assignments)
}
