package primitives

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"voxel-lab/internal/palette"
	"voxel-lab/internal/render"
)

// Face indexes the six cube faces, in the order their colors appear in render.Faces.
type Face int

const (
	FaceRight Face = iota
	FaceLeft
	FaceTop
	FaceBottom
	FaceFront
	FaceBack
)

// unitQuads holds the corners of each face of a unit cube centered at the origin, wound
// counter-clockwise when seen from outside.
var unitQuads = [6][4]rl.Vector3{
	FaceRight:  {{X: 0.5, Y: -0.5, Z: 0.5}, {X: 0.5, Y: -0.5, Z: -0.5}, {X: 0.5, Y: 0.5, Z: -0.5}, {X: 0.5, Y: 0.5, Z: 0.5}},
	FaceLeft:   {{X: -0.5, Y: -0.5, Z: -0.5}, {X: -0.5, Y: -0.5, Z: 0.5}, {X: -0.5, Y: 0.5, Z: 0.5}, {X: -0.5, Y: 0.5, Z: -0.5}},
	FaceTop:    {{X: -0.5, Y: 0.5, Z: 0.5}, {X: 0.5, Y: 0.5, Z: 0.5}, {X: 0.5, Y: 0.5, Z: -0.5}, {X: -0.5, Y: 0.5, Z: -0.5}},
	FaceBottom: {{X: -0.5, Y: -0.5, Z: -0.5}, {X: 0.5, Y: -0.5, Z: -0.5}, {X: 0.5, Y: -0.5, Z: 0.5}, {X: -0.5, Y: -0.5, Z: 0.5}},
	FaceFront:  {{X: -0.5, Y: -0.5, Z: 0.5}, {X: 0.5, Y: -0.5, Z: 0.5}, {X: 0.5, Y: 0.5, Z: 0.5}, {X: -0.5, Y: 0.5, Z: 0.5}},
	FaceBack:   {{X: 0.5, Y: -0.5, Z: -0.5}, {X: -0.5, Y: -0.5, Z: -0.5}, {X: -0.5, Y: 0.5, Z: -0.5}, {X: 0.5, Y: 0.5, Z: -0.5}},
}

// Cube draws flat-shaded cubes with one fill color per face and an edge stroke.
// Scaled face geometry is cached per size, since every block in a scene shares one size.
type Cube struct {
	faces [6]palette.Color
	cache map[float32][6][4]rl.Vector3
}

// NewCube returns a cube drawer using the given face colors.
func NewCube(f render.Faces) *Cube {
	return &Cube{
		faces: [6]palette.Color{
			FaceRight:  f.Right,
			FaceLeft:   f.Left,
			FaceTop:    f.Top,
			FaceBottom: f.Bottom,
			FaceFront:  f.Front,
			FaceBack:   f.Back,
		},
		cache: make(map[float32][6][4]rl.Vector3),
	}
}

// Color converts a packed color and opacity in [0,1] to a raylib color.
func Color(c palette.Color, opacity float32) rl.Color {
	if opacity < 0 {
		opacity = 0
	}
	if opacity > 1 {
		opacity = 1
	}
	return rl.NewColor(c.R(), c.G(), c.B(), uint8(opacity*255+0.5))
}

// quads returns the face corners for a cube of the given size, building them on first use.
func (c *Cube) quads(size float32) [6][4]rl.Vector3 {
	if q, ok := c.cache[size]; ok {
		return q
	}
	var q [6][4]rl.Vector3
	for f := range unitQuads {
		for i, v := range unitQuads[f] {
			q[f][i] = rl.Vector3Scale(v, size)
		}
	}
	c.cache[size] = q
	return q
}

// Draw draws one cube centered at position. Must be called between BeginMode3D and EndMode3D.
// fill is the opacity of every face; stroke colors the twelve edges.
func (c *Cube) Draw(position rl.Vector3, size, fill float32, stroke rl.Color) {
	q := c.quads(size)
	if fill > 0 {
		for f := range q {
			col := Color(c.faces[f], fill)
			a := rl.Vector3Add(q[f][0], position)
			b := rl.Vector3Add(q[f][1], position)
			cc := rl.Vector3Add(q[f][2], position)
			d := rl.Vector3Add(q[f][3], position)
			rl.DrawTriangle3D(a, b, cc, col)
			rl.DrawTriangle3D(a, cc, d, col)
		}
	}
	if stroke.A > 0 {
		rl.DrawCubeWiresV(position, rl.NewVector3(size, size, size), stroke)
	}
}
