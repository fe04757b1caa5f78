// Package render describes what the lab hands to a renderer each frame. The renderer keeps its own
// side table from block handles to drawable entities, fed by Add and Remove.
package render

import (
	"voxel-lab/internal/palette"
	"voxel-lab/internal/vecmath"
	"voxel-lab/internal/voxel"
)

// Camera is a look-at camera. Fovy is the vertical field of view in degrees, or the visible
// height in world units when Orthographic is set.
type Camera struct {
	Position     vecmath.Vec3
	Target       vecmath.Vec3
	Up           vecmath.Vec3
	Fovy         float32
	Orthographic bool
}

// Entity is one block as drawn this frame.
type Entity struct {
	Handle   voxel.Handle
	Position vecmath.Vec3
	Size     float32
	Visual   voxel.VisualState
}

// Submission is one frame: the camera and every block's transform and style.
type Submission struct {
	Camera   Camera
	Entities []Entity
	Edit     bool
}

// Faces holds the fill color of each cube face.
type Faces struct {
	Right, Left, Top, Bottom, Front, Back palette.Color
}

// DefaultFaces is a light-from-above grey shading.
var DefaultFaces = Faces{
	Right:  0x999999,
	Left:   0xCCCCCC,
	Top:    0xEEEEEE,
	Bottom: 0x777777,
	Front:  0xDDDDDD,
	Back:   0xAAAAAA,
}

// Renderer draws submissions. Add and Remove arrive in scene order as blocks come and go.
type Renderer interface {
	Add(h voxel.Handle, coord voxel.GridCoord)
	Remove(h voxel.Handle)
	Draw(s Submission)
}

// Observer adapts a Renderer to a voxel.Observer so it can be registered on a model.
type Observer struct {
	R Renderer
}

// BlockInserted implements voxel.Observer.
func (o Observer) BlockInserted(h voxel.Handle, b *voxel.Block, _ voxel.InsertMode) {
	o.R.Add(h, b.Coord)
}

// BlockRemoved implements voxel.Observer.
func (o Observer) BlockRemoved(h voxel.Handle, _ voxel.Block) {
	o.R.Remove(h)
}

// Build collects a submission from the model. Entities are in the model's slot order.
func Build(m *voxel.Model, cam Camera, cellSize float32, shift vecmath.Vec3, edit bool) Submission {
	s := Submission{
		Camera:   cam,
		Entities: make([]Entity, 0, m.Len()),
		Edit:     edit,
	}
	m.Each(func(h voxel.Handle, b *voxel.Block) {
		s.Entities = append(s.Entities, Entity{
			Handle:   h,
			Position: b.Coord.World(cellSize, shift).Add(b.Visual.Offset),
			Size:     cellSize,
			Visual:   b.Visual,
		})
	})
	return s
}
