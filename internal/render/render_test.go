package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"LocalSketch/internal/geom"
)

type prim struct {
	id      int
	stroke  Stroke
	updates int
}

// recorder is a Target keeping its primitives in a slice.
type recorder struct {
	next  int
	prims []*prim
	ops   []string
}

func (r *recorder) Insert(i int, s Stroke) Primitive {
	r.next++
	p := &prim{id: r.next, stroke: s}
	r.prims = append(r.prims, nil)
	copy(r.prims[i+1:], r.prims[i:])
	r.prims[i] = p
	r.ops = append(r.ops, "insert")
	return p
}

func (r *recorder) Update(p Primitive, s Stroke) {
	pp := p.(*prim)
	pp.stroke = s
	pp.updates++
	r.ops = append(r.ops, "update")
}

func (r *recorder) Remove(p Primitive) {
	for i, q := range r.prims {
		if q == p {
			r.prims = append(r.prims[:i], r.prims[i+1:]...)
			break
		}
	}
	r.ops = append(r.ops, "remove")
}

func (r *recorder) paths() []string {
	out := make([]string, len(r.prims))
	for i, p := range r.prims {
		out[i] = p.stroke.PathData()
	}
	return out
}

var black = color.NRGBA{A: 0xff}
var red = color.NRGBA{R: 0xf3, G: 0x17, B: 0x17, A: 0xff}

func item(id uint64, c color.Color, xy ...float64) Item {
	it := Item{ID: id, Color: c}
	for i := 0; i+1 < len(xy); i += 2 {
		it.Points = append(it.Points, geom.Pt(xy[i], xy[i+1]))
	}
	return it
}

func TestGeometryFlipsY(t *testing.T) {
	cmds := Geometry([]geom.Point{geom.Pt(1, 10), geom.Pt(2, 20)}, 100)
	assert.Equal(t, []Command{{MoveTo, 1, 90}, {LineTo, 2, 80}}, cmds)
	assert.Equal(t, "M1,90L2,80", Stroke{Commands: cmds}.PathData())
}

func TestGeometryDotIsDoubled(t *testing.T) {
	cmds := Geometry([]geom.Point{geom.Pt(5, 5)}, 10)
	require.Len(t, cmds, 2)
	assert.Equal(t, Command{MoveTo, 5, 5}, cmds[0])
	assert.Equal(t, Command{LineTo, 5, 5}, cmds[1])
	assert.Nil(t, Geometry(nil, 10))
}

func TestPathDataFractions(t *testing.T) {
	s := Stroke{Commands: []Command{{MoveTo, 0.5, 1.25}, {LineTo, -3, 4}}}
	assert.Equal(t, "M0.5,1.25L-3,4", s.PathData())
}

func TestSyncCreatesAndSkipsUnchanged(t *testing.T) {
	rec := &recorder{}
	r := NewReconciler(rec, 3)

	items := []Item{item(1, black, 0, 0, 10, 10), item(2, black, 5, 5)}
	st := r.Sync(items, 100)
	assert.Equal(t, Stats{Created: 2}, st)
	assert.Equal(t, []string{"M0,100L10,90", "M5,95L5,95"}, rec.paths())
	assert.Equal(t, CapRound, rec.prims[1].stroke.Cap)
	assert.Equal(t, 3.0, rec.prims[0].stroke.Width)

	st = r.Sync(items, 100)
	assert.False(t, st.Changed(), "nothing to do on an unchanged list")
}

func TestSyncUpdatesGrowingTrace(t *testing.T) {
	rec := &recorder{}
	r := NewReconciler(rec, 3)

	active := item(7, red, 0, 0)
	r.Sync([]Item{active}, 50)
	active.Points = append(active.Points, geom.Pt(1, 1))
	st := r.Sync([]Item{active}, 50)
	assert.Equal(t, Stats{Updated: 1}, st)
	assert.Equal(t, "M0,50L1,49", rec.paths()[0])

	// committing only changes the color
	active.Color = black
	st = r.Sync([]Item{active}, 50)
	assert.Equal(t, Stats{Updated: 1}, st)
	assert.True(t, SameColor(black, rec.prims[0].stroke.Color))
}

func TestSyncRemovesFromMiddleWithoutRestyling(t *testing.T) {
	rec := &recorder{}
	r := NewReconciler(rec, 2)
	a, b, c := item(1, black, 0, 0), item(2, black, 1, 1), item(3, black, 2, 2)
	r.Sync([]Item{a, b, c}, 10)
	rec.ops = nil

	st := r.Sync([]Item{a, c}, 10)
	assert.Equal(t, Stats{Deleted: 1}, st)
	assert.Equal(t, []string{"remove"}, rec.ops)
	assert.Equal(t, []uint64{1, 3}, r.IDs())
	for _, p := range rec.prims {
		assert.Zero(t, p.updates)
	}
}

func TestSyncReinsertsInOrder(t *testing.T) {
	rec := &recorder{}
	r := NewReconciler(rec, 2)
	a, b, c := item(1, black, 0, 0), item(2, black, 1, 1), item(3, black, 2, 2)
	r.Sync([]Item{a, c}, 10)

	// an undo brings b back between a and c
	st := r.Sync([]Item{a, b, c}, 10)
	assert.Equal(t, Stats{Created: 1}, st)
	assert.Equal(t, []uint64{1, 2, 3}, r.IDs())
	assert.Equal(t, []string{"M0,10L0,10", "M1,9L1,9", "M2,8L2,8"}, rec.paths())
}

func TestSyncMovesOutOfOrderEntry(t *testing.T) {
	rec := &recorder{}
	r := NewReconciler(rec, 2)
	a, b := item(1, black, 0, 0), item(2, black, 1, 1)
	r.Sync([]Item{a, b}, 10)

	st := r.Sync([]Item{b, a}, 10)
	assert.Equal(t, 1, st.Moved)
	assert.Equal(t, []uint64{2, 1}, r.IDs())
	assert.Len(t, rec.prims, 2)
}

func TestSyncHeightChangeRedrawsAll(t *testing.T) {
	rec := &recorder{}
	r := NewReconciler(rec, 2)
	r.Sync([]Item{item(1, black, 0, 0), item(2, black, 1, 1)}, 10)

	st := r.Sync([]Item{item(1, black, 0, 0), item(2, black, 1, 1)}, 20)
	assert.Equal(t, Stats{Updated: 2}, st)
	assert.Equal(t, "M0,20L0,20", rec.paths()[0])
}

func TestSyncWidthChange(t *testing.T) {
	rec := &recorder{}
	r := NewReconciler(rec, 2)
	items := []Item{item(1, black, 0, 0)}
	r.Sync(items, 10)
	r.Width = 6
	assert.Equal(t, Stats{Updated: 1}, r.Sync(items, 10))
	assert.Equal(t, 6.0, rec.prims[0].stroke.Width)
}

func TestSyncShrinkAndReset(t *testing.T) {
	rec := &recorder{}
	r := NewReconciler(rec, 2)
	r.Sync([]Item{item(1, black, 0, 0), item(2, black, 1, 1), item(3, black, 1, 1)}, 10)

	st := r.Sync(nil, 10)
	assert.Equal(t, Stats{Deleted: 3}, st)
	assert.Empty(t, rec.prims)

	r.Sync([]Item{item(4, black, 0, 0)}, 10)
	r.Reset()
	assert.Empty(t, rec.prims)
	assert.Equal(t, 0, r.Len())
}

func TestHex(t *testing.T) {
	assert.Equal(t, "#000000", Hex(color.Black))
	assert.Equal(t, "#f31717", Hex(red))
	assert.Equal(t, "#ff000080", Hex(color.NRGBA{R: 0xff, A: 0x80}))

	c, err := ParseHex("#f31717")
	require.NoError(t, err)
	assert.Equal(t, red, c)

	c, err = ParseHex("#fff")
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, c)

	_, err = ParseHex("red")
	assert.Error(t, err)
}

func TestSameColor(t *testing.T) {
	assert.True(t, SameColor(color.Black, color.NRGBA{A: 0xff}))
	assert.False(t, SameColor(color.Black, red))
	assert.False(t, SameColor(nil, red))
	assert.True(t, SameColor(nil, nil))
}

func TestHexOpacity(t *testing.T) {
	hex, op := HexOpacity(color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xff})
	assert.Equal(t, "#102030", hex)
	assert.Equal(t, 1.0, op)

	_, op = HexOpacity(color.Transparent)
	assert.Equal(t, 0.0, op)
}
