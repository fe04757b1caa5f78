package voxel

import (
	"fmt"

	"voxel-lab/internal/vecmath"
)

// Handle addresses a block in a Model. The zero Handle is never valid, and a handle goes stale
// once its block is removed even if the slot is reused.
type Handle struct {
	index uint32
	gen   uint32
}

// Valid reports whether h was ever issued by a model.
func (h Handle) Valid() bool { return h.gen != 0 }

func (h Handle) String() string {
	return fmt.Sprintf("#%d.%d", h.index, h.gen)
}

// Observer is told about every insertion and removal. Inserted runs after the block is stored,
// so the observer may initialize its visual and animation state in place.
type Observer interface {
	BlockInserted(h Handle, b *Block, mode InsertMode)
	BlockRemoved(h Handle, b Block)
}

type slot struct {
	gen   uint32
	alive bool
	block Block
}

// Model holds the placed blocks. No two blocks share a GridCoord, and after any removal the
// model is never empty: removing the last block re-inserts a settled block at Origin.
type Model struct {
	slots     []slot
	free      []uint32
	byCoord   map[GridCoord]Handle
	observers []Observer
	fallback  Handle
}

// NewModel returns an empty model. Call Seed to fill it.
func NewModel(observers ...Observer) *Model {
	return &Model{
		byCoord:   make(map[GridCoord]Handle),
		observers: observers,
	}
}

// Len returns the number of blocks.
func (m *Model) Len() int { return len(m.byCoord) }

// Seed inserts every coordinate in coords with the given mode.
func (m *Model) Seed(coords []GridCoord, mode InsertMode) {
	for _, c := range coords {
		m.Insert(c, mode)
	}
}

// Insert places a block at coord. If coord is occupied nothing changes and the existing handle is
// returned with inserted=false.
func (m *Model) Insert(coord GridCoord, mode InsertMode) (h Handle, inserted bool) {
	if existing, ok := m.byCoord[coord]; ok {
		return existing, false
	}

	var idx uint32
	if n := len(m.free); n > 0 {
		idx = m.free[n-1]
		m.free = m.free[:n-1]
	} else {
		m.slots = append(m.slots, slot{})
		idx = uint32(len(m.slots) - 1)
	}
	s := &m.slots[idx]
	s.gen++
	s.alive = true
	s.block = newBlock(coord, mode)
	h = Handle{index: idx, gen: s.gen}
	m.byCoord[coord] = h

	for _, o := range m.observers {
		o.BlockInserted(h, &s.block, mode)
	}
	return h, true
}

// Remove deletes the block behind h. When that leaves the model empty, a settled block is put
// back at Origin. It reports whether the model still holds anything besides that fallback block,
// so callers can loop on it. A stale handle removes nothing.
func (m *Model) Remove(h Handle) bool {
	s := m.slot(h)
	if s == nil {
		return !m.FallbackOnly()
	}

	removed := s.block
	s.alive = false
	s.block = Block{}
	delete(m.byCoord, removed.Coord)
	m.free = append(m.free, h.index)
	if h == m.fallback {
		m.fallback = Handle{}
	}

	for _, o := range m.observers {
		o.BlockRemoved(h, removed)
	}

	m.Heal()
	return !m.FallbackOnly()
}

// Heal puts a settled block at Origin when the model is empty and reports whether it did.
func (m *Model) Heal() bool {
	if len(m.byCoord) != 0 {
		return false
	}
	m.fallback, _ = m.Insert(Origin, InsertSettled)
	return true
}

// FallbackOnly reports whether the only block left is the one re-inserted after the model ran empty.
func (m *Model) FallbackOnly() bool {
	return len(m.byCoord) == 1 && m.fallback.Valid() && m.slot(m.fallback) != nil
}

// ClearAll removes blocks one by one through Remove until only the fallback origin block remains.
// It returns how many blocks were removed.
func (m *Model) ClearAll() int {
	n := 0
	for !m.FallbackOnly() {
		h, ok := m.first()
		if !ok {
			break
		}
		m.Remove(h)
		n++
	}
	return n
}

// NeighborCoord returns the cell adjacent to h's block across the face with the given normal.
func (m *Model) NeighborCoord(h Handle, faceNormal vecmath.Vec3) (GridCoord, bool) {
	s := m.slot(h)
	if s == nil {
		return GridCoord{}, false
	}
	return s.block.Coord.Add(FromRounded(faceNormal)), true
}

// Get returns the block behind h. The pointer stays valid until the next Insert.
func (m *Model) Get(h Handle) (*Block, bool) {
	s := m.slot(h)
	if s == nil {
		return nil, false
	}
	return &s.block, true
}

// At returns the handle of the block at coord.
func (m *Model) At(coord GridCoord) (Handle, bool) {
	h, ok := m.byCoord[coord]
	return h, ok
}

// Each calls fn for every block in slot order. fn must not insert or remove.
func (m *Model) Each(fn func(h Handle, b *Block)) {
	for i := range m.slots {
		s := &m.slots[i]
		if !s.alive {
			continue
		}
		fn(Handle{index: uint32(i), gen: s.gen}, &s.block)
	}
}

// Coords returns the coordinate of every block in slot order.
func (m *Model) Coords() []GridCoord {
	out := make([]GridCoord, 0, len(m.byCoord))
	m.Each(func(_ Handle, b *Block) { out = append(out, b.Coord) })
	return out
}

func newBlock(coord GridCoord, mode InsertMode) Block {
	b := Block{Coord: coord, ModeFill: 1, Presence: 1}
	switch mode {
	case InsertAnimated:
		b.Anim.Kind = Entering
		b.Presence = 0
	case InsertPreview:
		b.Preview = true
	}
	return b
}

func (m *Model) first() (Handle, bool) {
	for i := range m.slots {
		if m.slots[i].alive {
			return Handle{index: uint32(i), gen: m.slots[i].gen}, true
		}
	}
	return Handle{}, false
}

func (m *Model) slot(h Handle) *slot {
	if !h.Valid() || int(h.index) >= len(m.slots) {
		return nil
	}
	s := &m.slots[h.index]
	if !s.alive || s.gen != h.gen {
		return nil
	}
	return s
}
