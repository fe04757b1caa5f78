// Package vecmath holds the small set of float32 3D helpers the lab needs on top of mgl32.
// Angles are radians; rotation vectors encode the axis as direction and the angle as length.
package vecmath

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Vec3 is the vector type used across the lab.
type Vec3 = mgl32.Vec3

// V3 builds a Vec3.
func V3(x, y, z float32) Vec3 { return Vec3{x, y, z} }

// Zero is the zero vector.
var Zero = Vec3{}

// UnitZ is +Z, the default reference direction.
var UnitZ = Vec3{0, 0, 1}

// Length returns |v|. mgl32's Len goes through float64; this stays in float32.
func Length(v Vec3) float32 {
	return math32.Sqrt(v.Dot(v))
}

// Normalize returns v scaled to unit length, or the zero vector when v has no length.
func Normalize(v Vec3) Vec3 {
	l := Length(v)
	if l == 0 {
		return Zero
	}
	return v.Mul(1 / l)
}

// SetLength returns v pointing the same way with length l. A zero v stays zero.
func SetLength(v Vec3, l float32) Vec3 {
	return Normalize(v).Mul(l)
}

// AngleTo returns the angle between a and b in [0, π]. Either being zero yields π/2,
// which matches what a cosine of 0 means for callers that only compare directions.
func AngleTo(a, b Vec3) float32 {
	denom := Length(a) * Length(b)
	if denom == 0 {
		return math32.Pi / 2
	}
	c := a.Dot(b) / denom
	return math32.Acos(Clamp(c, -1, 1))
}

// RotateAxisAngle rotates v about axis by angle. A zero axis leaves v unchanged.
func RotateAxisAngle(v, axis Vec3, angle float32) Vec3 {
	n := Normalize(axis)
	if n == Zero {
		return v
	}
	return mgl32.QuatRotate(angle, n).Rotate(v)
}

// RotateByVector applies a rotation vector (axis * angle) to v. Rotation vectors shorter than eps
// are treated as no rotation so a near-zero axis is never normalized.
func RotateByVector(v, rotation Vec3, eps float32) Vec3 {
	angle := Length(rotation)
	if angle <= eps {
		return v
	}
	return mgl32.QuatRotate(angle, rotation.Mul(1/angle)).Rotate(v)
}

// Lerp interpolates from a to b; t=0 gives a, t=1 gives b.
func Lerp(a, b Vec3, t float32) Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}

// Distance returns |a-b|.
func Distance(a, b Vec3) float32 {
	return Length(a.Sub(b))
}

// Round rounds each component half away from zero to an int.
func Round(v Vec3) [3]int {
	return [3]int{roundInt(v[0]), roundInt(v[1]), roundInt(v[2])}
}

func roundInt(f float32) int {
	if f < 0 {
		return -int(math32.Floor(-f + 0.5))
	}
	return int(math32.Floor(f + 0.5))
}

// Clamp limits f to [lo, hi].
func Clamp(f, lo, hi float32) float32 {
	if f < lo {
		return lo
	}
	if f > hi {
		return hi
	}
	return f
}

// Clamp01 limits f to [0, 1].
func Clamp01(f float32) float32 { return Clamp(f, 0, 1) }
