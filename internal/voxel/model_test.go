package voxel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voxel-lab/internal/vecmath"
)

type event struct {
	inserted bool
	h        Handle
	coord    GridCoord
	mode     InsertMode
}

type recordingObserver struct {
	events []event
}

func (r *recordingObserver) BlockInserted(h Handle, b *Block, mode InsertMode) {
	r.events = append(r.events, event{inserted: true, h: h, coord: b.Coord, mode: mode})
}

func (r *recordingObserver) BlockRemoved(h Handle, b Block) {
	r.events = append(r.events, event{h: h, coord: b.Coord})
}

func TestInsertOccupiedIsNoop(t *testing.T) {
	obs := &recordingObserver{}
	m := NewModel(obs)

	h1, ok := m.Insert(C(1, 2, 3), InsertAnimated)
	require.True(t, ok)
	h2, ok := m.Insert(C(1, 2, 3), InsertPreview)
	assert.False(t, ok)
	assert.Equal(t, h1, h2)
	assert.Equal(t, 1, m.Len())
	assert.Len(t, obs.events, 1)

	b, ok := m.Get(h1)
	require.True(t, ok)
	assert.Equal(t, Entering, b.Anim.Kind)
	assert.False(t, b.Preview)
}

func TestInsertModes(t *testing.T) {
	m := NewModel()
	hp, _ := m.Insert(C(0, 0, 0), InsertPreview)
	hs, _ := m.Insert(C(1, 0, 0), InsertSettled)

	p, _ := m.Get(hp)
	assert.True(t, p.Preview)
	assert.Equal(t, Idle, p.Anim.Kind)
	assert.Equal(t, float32(1), p.Presence)

	s, _ := m.Get(hs)
	assert.False(t, s.Preview)
	assert.Equal(t, Idle, s.Anim.Kind)
}

func TestInsertThenRemoveKeepsCount(t *testing.T) {
	m := NewModel()
	m.Seed(LAB, InsertAnimated)
	before := m.Len()

	h, ok := m.Insert(C(20, 20, 20), InsertAnimated)
	require.True(t, ok)
	assert.True(t, m.Remove(h))
	assert.Equal(t, before, m.Len())

	_, ok = m.At(C(20, 20, 20))
	assert.False(t, ok)
}

func TestRemoveLastHealsAtOrigin(t *testing.T) {
	obs := &recordingObserver{}
	m := NewModel(obs)
	h, _ := m.Insert(C(4, 4, 4), InsertAnimated)

	assert.False(t, m.Remove(h))
	require.Equal(t, 1, m.Len())
	assert.True(t, m.FallbackOnly())

	oh, ok := m.At(Origin)
	require.True(t, ok)
	b, _ := m.Get(oh)
	assert.Equal(t, Idle, b.Anim.Kind)
	assert.Equal(t, float32(1), b.Presence)

	last := obs.events[len(obs.events)-1]
	assert.True(t, last.inserted)
	assert.Equal(t, InsertSettled, last.mode)
}

func TestHealEmptyModel(t *testing.T) {
	obs := &recordingObserver{}
	m := NewModel(obs)
	m.Seed(nil, InsertAnimated)

	require.True(t, m.Heal())
	assert.Equal(t, []GridCoord{Origin}, m.Coords())
	assert.True(t, m.FallbackOnly())
	require.Len(t, obs.events, 1)
	assert.Equal(t, InsertSettled, obs.events[0].mode)

	assert.False(t, m.Heal(), "a non-empty model is left alone")
	assert.Equal(t, 1, m.Len())
}

func TestStaleHandle(t *testing.T) {
	m := NewModel()
	h, _ := m.Insert(C(1, 0, 0), InsertAnimated)
	m.Insert(C(2, 0, 0), InsertAnimated)
	m.Remove(h)

	// Slot gets reused; the old handle must not reach the new block.
	h2, _ := m.Insert(C(3, 0, 0), InsertAnimated)
	assert.NotEqual(t, h, h2)
	_, ok := m.Get(h)
	assert.False(t, ok)
	assert.Equal(t, 2, m.Len())
	m.Remove(h)
	assert.Equal(t, 2, m.Len())

	_, ok = m.Get(Handle{})
	assert.False(t, ok)
}

func TestNeighborCoordSixFaces(t *testing.T) {
	m := NewModel()
	src := C(2, -1, 5)
	h, _ := m.Insert(src, InsertAnimated)

	seen := map[GridCoord]bool{}
	for _, n := range FaceNormals {
		c, ok := m.NeighborCoord(h, n)
		require.True(t, ok)
		seen[c] = true

		d := [3]int{c.X - src.X, c.Y - src.Y, c.Z - src.Z}
		sum := 0
		for _, v := range d {
			if v < 0 {
				v = -v
			}
			sum += v
		}
		assert.Equal(t, 1, sum, "normal %v", n)
	}
	assert.Len(t, seen, 6)
}

func TestNeighborCoordRoundsNormal(t *testing.T) {
	m := NewModel()
	h, _ := m.Insert(C(0, 0, 0), InsertAnimated)
	c, ok := m.NeighborCoord(h, vecmath.V3(0.0001, 0.9998, -0.02))
	require.True(t, ok)
	assert.Equal(t, C(0, 1, 0), c)

	_, ok = m.NeighborCoord(Handle{}, vecmath.UnitZ)
	assert.False(t, ok)
}

func TestClearAllThenInsert(t *testing.T) {
	m := NewModel()
	m.Seed(LAB, InsertAnimated)
	require.Equal(t, len(LAB), m.Len())

	removed := m.ClearAll()
	assert.Equal(t, len(LAB), removed)
	require.Equal(t, 1, m.Len())
	assert.Equal(t, []GridCoord{Origin}, m.Coords())

	oh, _ := m.At(Origin)
	before := *mustGet(t, m, oh)

	_, ok := m.Insert(C(1, 0, 0), InsertAnimated)
	require.True(t, ok)
	assert.Equal(t, 2, m.Len())
	assert.Equal(t, before, *mustGet(t, m, oh))
	assert.False(t, m.FallbackOnly())

	// Clearing again removes both and heals once more.
	m.ClearAll()
	assert.Equal(t, []GridCoord{Origin}, m.Coords())
}

func TestClearAllOnFallbackIsNoop(t *testing.T) {
	m := NewModel()
	h, _ := m.Insert(C(1, 1, 1), InsertAnimated)
	m.Remove(h)
	assert.Equal(t, 0, m.ClearAll())
	assert.Equal(t, 1, m.Len())
}

func TestUniqueCoords(t *testing.T) {
	m := NewModel()
	m.Seed(LAB, InsertAnimated)
	m.Seed(LAB, InsertPreview)
	seen := map[GridCoord]int{}
	for _, c := range m.Coords() {
		seen[c]++
	}
	for c, n := range seen {
		assert.Equal(t, 1, n, c.String())
	}
	assert.Equal(t, len(LAB), m.Len())
}

func mustGet(t *testing.T, m *Model, h Handle) *Block {
	t.Helper()
	b, ok := m.Get(h)
	require.True(t, ok)
	return b
}
