package orientation

import "voxel-lab/internal/vecmath"

// Facing is a target direction built from quarter turns: Yaw about +Y, Pitch about the camera's
// horizontal axis. Each is kept in [-1, 1] so the direction never points away from the reference.
type Facing struct {
	Yaw   int
	Pitch int
}

// Step adds quarter turns and clamps the result.
func (f Facing) Step(dyaw, dpitch int) Facing {
	return Facing{Yaw: clampTurn(f.Yaw + dyaw), Pitch: clampTurn(f.Pitch + dpitch)}
}

// Direction returns the unit direction the facing points at. Zero turns point along +Z. At full pitch
// the direction is straight up or down and yaw has no visible effect; Yaw is still kept, so it shows
// again once pitch steps back.
func (f Facing) Direction() vecmath.Vec3 {
	// Quarter turns have exact sines and cosines.
	ys, yc := float32(f.Yaw), float32(1-abs(f.Yaw))
	ps, pc := float32(f.Pitch), float32(1-abs(f.Pitch))
	return vecmath.V3(ys*pc, ps, yc*pc)
}

func clampTurn(n int) int {
	if n < -1 {
		return -1
	}
	if n > 1 {
		return 1
	}
	return n
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
