package scene

import (
	"sort"

	rl "github.com/gen2brain/raylib-go/raylib"

	"voxel-lab/internal/primitives"
	"voxel-lab/internal/render"
	"voxel-lab/internal/vecmath"
	"voxel-lab/internal/voxel"
)

const (
	gridExtent     = 12
	gridMinorAlpha = 40
	gridMajorAlpha = 90
	gridMajorStep  = 5
)

var (
	// Reused every frame to avoid per-frame color allocations.
	backgroundColor = rl.NewColor(250, 250, 250, 255)
	gridMinorColor  = rl.NewColor(30, 136, 229, gridMinorAlpha)
	gridMajorColor  = rl.NewColor(30, 136, 229, gridMajorAlpha)
)

// entity is the scene's record for one block handle.
type entity struct {
	coord voxel.GridCoord
	// index into the last submission's entity list, or -1 when the block was added after it.
	index int
}

// Scene draws submitted frames with raylib. It implements render.Renderer: Add and Remove keep a
// side table from block handles to entities, Draw stores the frame, and Render draws the stored
// frame between BeginDrawing and EndDrawing.
type Scene struct {
	Camera rl.Camera3D
	// GridVisible shows a guide grid under the blocks in edit mode.
	GridVisible bool
	CellSize    float32
	Shift       vecmath.Vec3

	cube     *primitives.Cube
	entities map[voxel.Handle]*entity
	last     render.Submission
	buf      []render.Entity
	order    []int
}

// New returns a scene that draws cubes with the given face colors. Grid is visible by default.
func New(faces render.Faces, cellSize float32, shift vecmath.Vec3) *Scene {
	s := &Scene{
		GridVisible: true,
		CellSize:    cellSize,
		Shift:       shift,
		cube:        primitives.NewCube(faces),
		entities:    make(map[voxel.Handle]*entity),
	}
	s.Camera.Up = rl.NewVector3(0, 1, 0)
	s.Camera.Fovy = 45
	s.Camera.Projection = rl.CameraPerspective
	return s
}

// SetGridVisible sets whether the edit-mode grid is drawn.
func (s *Scene) SetGridVisible(visible bool) {
	s.GridVisible = visible
}

// Add implements render.Renderer.
func (s *Scene) Add(h voxel.Handle, coord voxel.GridCoord) {
	s.entities[h] = &entity{coord: coord, index: -1}
}

// Remove implements render.Renderer.
func (s *Scene) Remove(h voxel.Handle) {
	delete(s.entities, h)
}

// Draw implements render.Renderer. It only records the frame; Render does the drawing.
func (s *Scene) Draw(sub render.Submission) {
	s.buf = append(s.buf[:0], sub.Entities...)
	s.last = sub
	s.last.Entities = s.buf
	for i, e := range s.last.Entities {
		if ent, ok := s.entities[e.Handle]; ok {
			ent.index = i
		}
	}
	s.Camera = toCamera(sub.Camera)
}

// Render draws the last submitted frame. Blocks are translucent, so they are drawn back to front
// without writing depth.
func (s *Scene) Render() {
	rl.ClearBackground(backgroundColor)
	rl.BeginMode3D(s.Camera)

	if s.last.Edit && s.GridVisible {
		drawEditGrid(s.CellSize, s.Shift)
	}

	s.sortBackToFront()
	rl.DisableDepthMask()
	rl.DisableBackfaceCulling()
	for _, i := range s.order {
		e := s.last.Entities[i]
		stroke := primitives.Color(e.Visual.StrokeColor, e.Visual.StrokeOpacity)
		s.cube.Draw(toVector3(e.Position), e.Size, e.Visual.FillOpacity, stroke)
	}
	rl.EnableBackfaceCulling()
	rl.EnableDepthMask()

	rl.EndMode3D()
}

// sortBackToFront fills order with the indexes of tracked entities, farthest from the camera first.
func (s *Scene) sortBackToFront() {
	s.order = s.order[:0]
	for _, ent := range s.entities {
		if ent.index >= 0 && ent.index < len(s.last.Entities) {
			s.order = append(s.order, ent.index)
		}
	}
	eye := s.last.Camera.Position
	dist := func(i int) float32 {
		d := s.last.Entities[i].Position.Sub(eye)
		return d.Dot(d)
	}
	sort.Slice(s.order, func(a, b int) bool {
		da, db := dist(s.order[a]), dist(s.order[b])
		if da != db {
			return da > db
		}
		return s.order[a] < s.order[b]
	})
}

// drawEditGrid draws a guide grid on the plane under the lowest row of cells.
func drawEditGrid(cellSize float32, shift vecmath.Vec3) {
	y := (shift.Y() - 0.5) * cellSize
	extent := float32(gridExtent) * cellSize

	var start, end rl.Vector3
	for i := -gridExtent; i <= gridExtent; i++ {
		c := gridMinorColor
		if i%gridMajorStep == 0 {
			c = gridMajorColor
		}
		off := (float32(i) + 0.5) * cellSize
		start.X, start.Y, start.Z = off, y, -extent
		end.X, end.Y, end.Z = off, y, extent
		rl.DrawLine3D(start, end, c)
		start.X, start.Y, start.Z = -extent, y, off
		end.X, end.Y, end.Z = extent, y, off
		rl.DrawLine3D(start, end, c)
	}
}

func toVector3(v vecmath.Vec3) rl.Vector3 { return rl.NewVector3(v[0], v[1], v[2]) }

func fromVector3(v rl.Vector3) vecmath.Vec3 { return vecmath.V3(v.X, v.Y, v.Z) }

func toCamera(c render.Camera) rl.Camera3D {
	cam := rl.Camera3D{
		Position:   toVector3(c.Position),
		Target:     toVector3(c.Target),
		Up:         toVector3(c.Up),
		Fovy:       c.Fovy,
		Projection: rl.CameraPerspective,
	}
	if c.Orthographic {
		cam.Projection = rl.CameraOrthographic
	}
	return cam
}
