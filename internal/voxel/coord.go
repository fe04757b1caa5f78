// Package voxel is the authoritative block set: integer grid cells, each holding at most one block,
// stored in an arena and addressed by generation-checked handles.
package voxel

import (
	"fmt"

	"voxel-lab/internal/vecmath"
)

// GridCoord identifies a voxel cell. Comparable, so it keys maps directly.
type GridCoord struct {
	X, Y, Z int
}

// Origin is the cell the model falls back to when it would otherwise be empty.
var Origin = GridCoord{}

// C builds a GridCoord.
func C(x, y, z int) GridCoord { return GridCoord{X: x, Y: y, Z: z} }

// Add returns c offset by o.
func (c GridCoord) Add(o GridCoord) GridCoord {
	return GridCoord{X: c.X + o.X, Y: c.Y + o.Y, Z: c.Z + o.Z}
}

// Vec returns the coordinate as a float vector.
func (c GridCoord) Vec() vecmath.Vec3 {
	return vecmath.V3(float32(c.X), float32(c.Y), float32(c.Z))
}

// World returns the resting center of the cell: (c + shift) * cellSize.
func (c GridCoord) World(cellSize float32, shift vecmath.Vec3) vecmath.Vec3 {
	return c.Vec().Add(shift).Mul(cellSize)
}

func (c GridCoord) String() string {
	return fmt.Sprintf("(%d,%d,%d)", c.X, c.Y, c.Z)
}

// FromRounded converts a rounded vector into a coordinate.
func FromRounded(v vecmath.Vec3) GridCoord {
	r := vecmath.Round(v)
	return GridCoord{X: r[0], Y: r[1], Z: r[2]}
}

// FaceNormals are the six axis-aligned unit normals of a cube.
var FaceNormals = [6]vecmath.Vec3{
	{1, 0, 0}, {-1, 0, 0},
	{0, 1, 0}, {0, -1, 0},
	{0, 0, 1}, {0, 0, -1},
}
