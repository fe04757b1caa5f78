package picker

import (
	"github.com/go-gl/mathgl/mgl32"

	"voxel-lab/internal/vecmath"
)

// PerspectiveRays builds screen rays for a perspective camera at eye looking at target. fovy is in
// degrees; screen positions have their origin at the top left, as window coordinates do.
func PerspectiveRays(eye, target, up vecmath.Vec3, fovy float32, width, height int) RayFunc {
	if width <= 0 || height <= 0 {
		return func(float32, float32) Ray { return Ray{Origin: eye, Dir: target.Sub(eye)} }
	}
	view := mgl32.LookAtV(eye, target, up)
	proj := mgl32.Perspective(mgl32.DegToRad(fovy), float32(width)/float32(height), 0.01, 1000)

	return func(x, y float32) Ray {
		wy := float32(height) - y
		near, errN := mgl32.UnProject(mgl32.Vec3{x, wy, 0}, view, proj, 0, 0, width, height)
		far, errF := mgl32.UnProject(mgl32.Vec3{x, wy, 1}, view, proj, 0, 0, width, height)
		if errN != nil || errF != nil {
			return Ray{Origin: eye, Dir: target.Sub(eye)}
		}
		return Ray{Origin: eye, Dir: vecmath.Normalize(far.Sub(near))}
	}
}

// OrthographicRays builds screen rays for an orthographic camera at eye looking at target that
// shows viewHeight world units from the top of the screen to the bottom. All rays are parallel.
func OrthographicRays(eye, target, up vecmath.Vec3, viewHeight float32, width, height int) RayFunc {
	forward := vecmath.Normalize(target.Sub(eye))
	if width <= 0 || height <= 0 || forward == vecmath.Zero {
		return func(float32, float32) Ray { return Ray{Origin: eye, Dir: forward} }
	}
	right := vecmath.Normalize(forward.Cross(up))
	trueUp := right.Cross(forward)
	scale := viewHeight / float32(height)

	return func(x, y float32) Ray {
		dx := (x - float32(width)/2) * scale
		dy := (float32(height)/2 - y) * scale
		origin := eye.Add(right.Mul(dx)).Add(trueUp.Mul(dy))
		return Ray{Origin: origin, Dir: forward}
	}
}

// CameraRays picks the ray builder that matches the camera's projection.
func CameraRays(eye, target, up vecmath.Vec3, fovy float32, orthographic bool, width, height int) RayFunc {
	if orthographic {
		return OrthographicRays(eye, target, up, fovy, width, height)
	}
	return PerspectiveRays(eye, target, up, fovy, width, height)
}
