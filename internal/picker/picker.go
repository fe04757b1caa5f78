// Package picker resolves screen positions to blocks: a ray is cast from the camera through the
// position and tested against every block's box, nearest hit first.
package picker

import (
	"sort"

	"github.com/chewxy/math32"

	"voxel-lab/internal/vecmath"
	"voxel-lab/internal/voxel"
)

// Ray is a half line. Dir need not be unit length; distances are in units of Dir.
type Ray struct {
	Origin vecmath.Vec3
	Dir    vecmath.Vec3
}

// At returns the point at parameter t.
func (r Ray) At(t float32) vecmath.Vec3 { return r.Origin.Add(r.Dir.Mul(t)) }

// Hit is one intersected block.
type Hit struct {
	Handle   voxel.Handle
	Point    vecmath.Vec3
	Normal   vecmath.Vec3
	Distance float32
}

// Picker returns the blocks under a screen position, nearest first. An empty result is a miss.
type Picker interface {
	Pick(x, y float32) []Hit
}

// RayFunc builds the camera ray through a screen position.
type RayFunc func(x, y float32) Ray

// Blocks casts rays against the drawn boxes of a model's blocks.
type Blocks struct {
	Model    *voxel.Model
	CellSize float32
	Shift    vecmath.Vec3
}

// Box returns the box a block is drawn in: its resting cell moved by its visual offset.
func (bl Blocks) Box(b *voxel.Block) Box {
	c := b.Coord.World(bl.CellSize, bl.Shift).Add(b.Visual.Offset)
	half := bl.CellSize / 2
	return Box{
		Min: c.Sub(vecmath.V3(half, half, half)),
		Max: c.Add(vecmath.V3(half, half, half)),
	}
}

// Cast returns every block the ray enters, nearest first.
func (bl Blocks) Cast(r Ray) []Hit {
	var hits []Hit
	bl.Model.Each(func(h voxel.Handle, b *voxel.Block) {
		t, n, ok := bl.Box(b).Intersect(r)
		if !ok {
			return
		}
		hits = append(hits, Hit{Handle: h, Point: r.At(t), Normal: n, Distance: t})
	})
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].Distance < hits[j].Distance })
	return hits
}

// RayPicker combines a camera ray source with a block caster.
type RayPicker struct {
	Rays   RayFunc
	Blocks Blocks
}

// Pick implements Picker.
func (p RayPicker) Pick(x, y float32) []Hit {
	if p.Rays == nil || p.Blocks.Model == nil {
		return nil
	}
	return p.Blocks.Cast(p.Rays(x, y))
}

// Box is an axis-aligned box.
type Box struct {
	Min, Max vecmath.Vec3
}

const parallelEps = 1e-9

// Intersect runs the slab test. It returns the entry distance and the outward normal of the face
// the ray enters through. Rays starting inside the box, or pointing away from it, miss.
func (b Box) Intersect(r Ray) (t float32, normal vecmath.Vec3, ok bool) {
	tMin := float32(math32.Inf(-1))
	tMax := float32(math32.Inf(1))
	axis := -1

	for i := 0; i < 3; i++ {
		o, d := r.Origin[i], r.Dir[i]
		if math32.Abs(d) < parallelEps {
			// Parallel to this slab: inside it or a miss.
			if o < b.Min[i] || o > b.Max[i] {
				return 0, vecmath.Zero, false
			}
			continue
		}
		t0 := (b.Min[i] - o) / d
		t1 := (b.Max[i] - o) / d
		if t0 > t1 {
			t0, t1 = t1, t0
		}
		if t0 > tMin {
			tMin = t0
			axis = i
		}
		if t1 < tMax {
			tMax = t1
		}
		if tMin > tMax {
			return 0, vecmath.Zero, false
		}
	}
	if axis < 0 || tMin < 0 {
		return 0, vecmath.Zero, false
	}

	if r.Dir[axis] > 0 {
		normal[axis] = -1
	} else {
		normal[axis] = 1
	}
	return tMin, normal, true
}
