package scene

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"voxel-lab/internal/input"
)

// Key bindings.
const (
	KeyToggleMode = rl.KeyE
	KeyClearAll   = rl.KeyC
	KeyPitchUp    = rl.KeyW
	KeyPitchDown  = rl.KeyS
	KeyYawLeft    = rl.KeyA
	KeyYawRight   = rl.KeyD
)

// Input is an input.Mapper over raylib's keyboard, mouse and window focus.
type Input struct {
	// Stall pushes the pointer direction forward; larger values soften the camera's reaction.
	Stall float32
	// Suppressed, if set and true, turns keyboard commands off (e.g. while the console is open).
	Suppressed func() bool

	lastMouse rl.Vector2
	seen      bool
	focused   bool
}

// NewInput returns a mapper. The window is assumed focused at start.
func NewInput(stall float32) *Input {
	return &Input{Stall: stall, focused: true}
}

// Poll implements input.Mapper. Call once per frame after the window exists.
func (in *Input) Poll() input.Frame {
	var f input.Frame

	// A change of focus in either direction skips one integration step: while unfocused the
	// window may have been starved of frames.
	focused := rl.IsWindowFocused()
	if focused != in.focused {
		f.FocusLost = true
		in.focused = focused
	}

	mouse := rl.GetMousePosition()
	if !in.seen || mouse != in.lastMouse {
		w, h := float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight())
		f.Direction = input.PointerDirection(mouse.X, mouse.Y, w, h, in.Stall)
		f.HasDirection = true
		in.lastMouse, in.seen = mouse, true
	}

	switch {
	case rl.IsMouseButtonPressed(rl.MouseButtonLeft):
		f.Click = input.ButtonLeft
	case rl.IsMouseButtonPressed(rl.MouseButtonRight):
		f.Click = input.ButtonRight
	case rl.IsMouseButtonPressed(rl.MouseButtonMiddle):
		f.Click = input.ButtonMiddle
	}
	f.ClickX, f.ClickY = mouse.X, mouse.Y

	if in.Suppressed != nil && in.Suppressed() {
		f.Click = input.ButtonNone
		return f
	}

	f.ToggleMode = rl.IsKeyPressed(KeyToggleMode)
	f.ClearAll = rl.IsKeyPressed(KeyClearAll)
	if rl.IsKeyPressed(KeyPitchUp) {
		f.Facing.Pitch++
	}
	if rl.IsKeyPressed(KeyPitchDown) {
		f.Facing.Pitch--
	}
	if rl.IsKeyPressed(KeyYawLeft) {
		f.Facing.Yaw--
	}
	if rl.IsKeyPressed(KeyYawRight) {
		f.Facing.Yaw++
	}
	return f
}
