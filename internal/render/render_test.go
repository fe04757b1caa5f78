package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voxel-lab/internal/vecmath"
	"voxel-lab/internal/voxel"
)

func TestObserverFeedsSideTable(t *testing.T) {
	rec := NewRecorder()
	m := voxel.NewModel(Observer{R: rec})

	h1, _ := m.Insert(voxel.C(1, 0, 0), voxel.InsertSettled)
	h2, _ := m.Insert(voxel.C(2, 0, 0), voxel.InsertSettled)
	m.Remove(h1)

	assert.Equal(t, 1, rec.Live())
	assert.True(t, rec.Tracks(h2))
	assert.False(t, rec.Tracks(h1))
	require.Len(t, rec.Events, 3)
	assert.Equal(t, Event{Handle: h1, Coord: voxel.C(1, 0, 0)}, rec.Events[2])
}

func TestBuild(t *testing.T) {
	m := voxel.NewModel()
	h, _ := m.Insert(voxel.C(1, 2, 0), voxel.InsertSettled)
	b, _ := m.Get(h)
	b.Visual.Offset = vecmath.V3(0, 5, 0)
	b.Visual.FillOpacity = 0.5

	cam := Camera{Position: vecmath.V3(0, 0, 200), Up: vecmath.V3(0, 1, 0), Fovy: 45}
	s := Build(m, cam, 10, vecmath.V3(-1, 0, 0), true)

	require.Len(t, s.Entities, 1)
	e := s.Entities[0]
	assert.Equal(t, h, e.Handle)
	assert.Equal(t, vecmath.V3(0, 25, 0), e.Position)
	assert.Equal(t, float32(10), e.Size)
	assert.Equal(t, float32(0.5), e.Visual.FillOpacity)
	assert.True(t, s.Edit)
	assert.Equal(t, cam, s.Camera)
}

func TestRecorderCopiesSubmission(t *testing.T) {
	rec := NewRecorder()
	s := Submission{Entities: []Entity{{Size: 1}}}
	rec.Draw(s)
	s.Entities[0].Size = 99

	assert.Equal(t, 1, rec.Frames)
	assert.Equal(t, float32(1), rec.Last.Entities[0].Size)
}
