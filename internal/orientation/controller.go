// Package orientation implements the camera's rotational spring.
//
// The controller's state is a rotation vector (axis scaled by angle). Every frame it computes the
// rotation that carries a fixed reference direction onto the target direction and pulls the current
// rotation toward it with a critically damped spring, integrated with semi-implicit Euler.
package orientation

import (
	"github.com/chewxy/math32"

	"voxel-lab/internal/vecmath"
)

// Config holds spring and camera constants.
type Config struct {
	// SpringConstant is k in force = -k*(cur-target) - c*speed.
	SpringConstant float32
	// Damping is c. Zero means critical damping, 2*sqrt(k).
	Damping float32
	// MaxDelta caps a single integration step in seconds. Zero disables the cap.
	MaxDelta float32

	// Reference is the direction that maps to zero rotation.
	Reference vecmath.Vec3
	// Distance is how far the camera sits from the origin along +Z before rotation.
	Distance float32
	// InitialTilt is added to the spring's rotation before placing the camera.
	InitialTilt vecmath.Vec3
	// ZeroEps is the rotation length below which no rotation is applied.
	ZeroEps float32
}

// DefaultConfig returns the stock spring and camera.
func DefaultConfig() Config {
	return Config{
		SpringConstant: 50,
		MaxDelta:       0.1,
		Reference:      vecmath.UnitZ,
		Distance:       200,
		InitialTilt:    vecmath.V3(-0.4, -0.4, 0),
		ZeroEps:        1e-8,
	}
}

// Controller is the orientation state: current rotation, rotation speed and the last target direction.
type Controller struct {
	cfg     Config
	damping float32

	current vecmath.Vec3
	speed   vecmath.Vec3
	target  vecmath.Vec3

	skip bool
}

// New returns a controller at rest with zero rotation.
func New(cfg Config) *Controller {
	if cfg.Reference == vecmath.Zero {
		cfg.Reference = vecmath.UnitZ
	}
	c := &Controller{cfg: cfg, target: cfg.Reference}
	c.SetSpringConstant(cfg.SpringConstant)
	return c
}

// SetSpringConstant changes k. If the damping was not set explicitly it stays critical for the new k.
func (c *Controller) SetSpringConstant(k float32) {
	c.cfg.SpringConstant = k
	c.damping = c.cfg.Damping
	if c.damping == 0 {
		c.damping = 2 * math32.Sqrt(k)
	}
}

// Config returns the controller's configuration.
func (c *Controller) Config() Config { return c.cfg }

// Damping returns the effective damping coefficient.
func (c *Controller) Damping() float32 { return c.damping }

// Rotation returns the current rotation vector.
func (c *Controller) Rotation() vecmath.Vec3 { return c.current }

// Speed returns the current rotation speed.
func (c *Controller) Speed() vecmath.Vec3 { return c.speed }

// Target returns the last target direction passed to Tick.
func (c *Controller) Target() vecmath.Vec3 { return c.target }

// SkipNext makes the next Tick record its target but not integrate. Use it after the window lost
// focus so the gap is not integrated as one huge step.
func (c *Controller) SkipNext() { c.skip = true }

// Reset puts the controller back at rest.
func (c *Controller) Reset() {
	c.current, c.speed = vecmath.Zero, vecmath.Zero
	c.target = c.cfg.Reference
	c.skip = false
}

// TargetRotation returns the rotation vector that carries the reference direction onto dir.
// A direction parallel to the reference gives the zero vector. That includes a direction exactly
// opposite the reference: the axis is undefined there too, so there is no half-turn. A zero dir
// gives the current rotation, so only damping acts.
func (c *Controller) TargetRotation(dir vecmath.Vec3) vecmath.Vec3 {
	if vecmath.Length(dir) == 0 {
		return c.current
	}
	axis := c.cfg.Reference.Cross(dir)
	if vecmath.Length(axis) == 0 {
		return vecmath.Zero
	}
	return vecmath.SetLength(axis, vecmath.AngleTo(c.cfg.Reference, dir))
}

// Tick integrates the spring by dt seconds toward dir and returns the new rotation.
func (c *Controller) Tick(dir vecmath.Vec3, dt float32) vecmath.Vec3 {
	c.target = dir
	if c.skip {
		c.skip = false
		return c.current
	}
	if c.cfg.MaxDelta > 0 && dt > c.cfg.MaxDelta {
		dt = c.cfg.MaxDelta
	}
	if dt <= 0 {
		return c.current
	}

	target := c.TargetRotation(dir)
	force := c.current.Sub(target).Mul(-c.cfg.SpringConstant).Sub(c.speed.Mul(c.damping))
	c.speed = c.speed.Add(force.Mul(dt))
	c.current = c.current.Add(c.speed.Mul(dt))
	return c.current
}

// CameraRotation is the rotation applied to the camera: the spring rotation plus the initial tilt.
func (c *Controller) CameraRotation() vecmath.Vec3 {
	return c.current.Add(c.cfg.InitialTilt)
}

// CameraPosition places the camera: (0, 0, Distance) rotated by CameraRotation. The camera looks
// at the origin.
func (c *Controller) CameraPosition() vecmath.Vec3 {
	return vecmath.RotateByVector(vecmath.V3(0, 0, c.cfg.Distance), c.CameraRotation(), c.cfg.ZeroEps)
}

// CameraUp is +Y carried along by CameraRotation, so the camera never loses its up vector.
func (c *Controller) CameraUp() vecmath.Vec3 {
	return vecmath.RotateByVector(vecmath.V3(0, 1, 0), c.CameraRotation(), c.cfg.ZeroEps)
}
