package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"LocalSketch/internal/geom"
)

func snap(ids ...uint64) Snapshot {
	s := Snapshot{}
	for _, id := range ids {
		s = append(s, Trace{ID: id, Points: []geom.Point{geom.Pt(float64(id), 0)}})
	}
	return s
}

func TestHistoryUndoRedo(t *testing.T) {
	h := NewHistory(10)
	_, ok := h.Undo()
	assert.False(t, ok, "undo on empty history")
	_, ok = h.Redo()
	assert.False(t, ok, "redo on empty history")

	s1, s2 := snap(1), snap(1, 2)
	h.Record(s1)
	h.Record(s2)

	got, ok := h.Undo()
	require.True(t, ok)
	assert.Equal(t, s1, got)

	got, ok = h.Redo()
	require.True(t, ok)
	assert.Equal(t, s2, got)

	_, ok = h.Redo()
	assert.False(t, ok)
}

func TestHistoryBranchTruncation(t *testing.T) {
	h := NewHistory(10)
	s1, s2, s3 := snap(1), snap(1, 2), snap(1, 3)
	h.Record(s1)
	h.Record(s2)

	got, ok := h.Undo()
	require.True(t, ok)
	assert.Equal(t, s1, got)

	h.Record(s3)
	assert.Equal(t, 0, h.Cursor())
	_, ok = h.Redo()
	assert.False(t, ok, "s2 branch is gone")

	got, ok = h.Undo()
	require.True(t, ok)
	assert.Equal(t, s1, got)
	assert.Equal(t, 2, h.Len())
}

func TestHistoryCap(t *testing.T) {
	const limit = 4
	h := NewHistory(limit)
	for i := 1; i <= limit+1; i++ {
		h.Record(snap(uint64(i)))
	}
	require.Equal(t, limit, h.Len())

	// the current entry plus every undo step
	seen := []uint64{5}
	for {
		s, ok := h.Undo()
		if !ok {
			break
		}
		seen = append(seen, s[0].ID)
	}
	assert.Equal(t, []uint64{5, 4, 3, 2}, seen)
	assert.Len(t, seen, limit)
}

func TestHistorySnapshotsAreCopies(t *testing.T) {
	h := NewHistory(0)
	s1 := snap(1)
	h.Record(s1)
	h.Record(snap(1, 2))
	s1[0].Points[0].X = 77

	got, ok := h.Undo()
	require.True(t, ok)
	assert.Equal(t, 1.0, got[0].Points[0].X)

	got[0].Points[0].X = 55
	h.Redo()
	got, _ = h.Undo()
	assert.Equal(t, 1.0, got[0].Points[0].X)
}

func TestHistoryClear(t *testing.T) {
	h := NewHistory(3)
	h.Record(snap(1))
	h.Record(snap(2))
	h.Clear()
	assert.Equal(t, 0, h.Len())
	assert.False(t, h.CanUndo())
	assert.False(t, h.CanRedo())
}
