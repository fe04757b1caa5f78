// Package input turns raw pointer and keyboard state into the per-frame commands the lab reacts to.
// Mappers are polled once per frame; pointer motion between polls is simply overwritten.
package input

import (
	"voxel-lab/internal/vecmath"
)

// Button identifies a pointer button.
type Button uint8

const (
	ButtonNone Button = iota
	ButtonLeft
	ButtonRight
	ButtonMiddle
)

func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonRight:
		return "right"
	case ButtonMiddle:
		return "middle"
	}
	return "none"
}

// Turn is a facing step in quarter turns.
type Turn struct {
	Yaw, Pitch int
}

// Frame is one frame's worth of input.
type Frame struct {
	// Direction is the normalized target direction derived from the pointer. Only meaningful when
	// HasDirection is set; otherwise the previous direction is kept.
	Direction    vecmath.Vec3
	HasDirection bool

	Click      Button
	ClickX     float32
	ClickY     float32
	Facing     Turn
	ToggleMode bool
	ClearAll   bool
	FocusLost  bool
}

// Mapper produces a Frame each time it is polled.
type Mapper interface {
	Poll() Frame
}

// PointerDirection maps a pointer position to a target direction: the offset from the screen
// center, with +Y up, pushed forward by stall along +Z. A larger stall makes the camera follow
// the pointer less eagerly.
func PointerDirection(x, y, width, height, stall float32) vecmath.Vec3 {
	return vecmath.Normalize(vecmath.V3(x-width/2, -(y - height/2), stall))
}
