package voxel

import (
	"time"

	"voxel-lab/internal/palette"
	"voxel-lab/internal/vecmath"
)

// VisualState is what the renderer draws for a block.
type VisualState struct {
	FillOpacity   float32
	StrokeOpacity float32
	StrokeColor   palette.Color
	// Offset is added to the block's resting world position.
	Offset vecmath.Vec3
}

// AnimationKind tags AnimationState.
type AnimationKind uint8

const (
	Idle AnimationKind = iota
	Entering
	ModeSwitching
)

func (k AnimationKind) String() string {
	switch k {
	case Idle:
		return "idle"
	case Entering:
		return "entering"
	case ModeSwitching:
		return "mode-switching"
	}
	return "unknown"
}

// AnimationState is the block's current animation. Start is the entrance start for Entering and the
// switch start for ModeSwitching; FromColor and FromFill are only meaningful for ModeSwitching.
type AnimationState struct {
	Kind      AnimationKind
	Start     time.Duration
	FromColor palette.Color
	FromFill  float32
}

// Block is one placed voxel. Visual and Anim are written only by the animation scheduler.
type Block struct {
	Coord  GridCoord
	Visual VisualState
	Anim   AnimationState

	// Presence is the entrance ratio in [0,1]; 1 once the block has fully entered.
	Presence float32
	// ModeFill is the mode-dependent fill ratio in [0,1], multiplied into the fill opacity.
	ModeFill float32
	// Preview marks a block placed in the reduced-opacity edit style that has not been committed yet.
	Preview bool
}

// InsertMode selects how a new block appears.
type InsertMode uint8

const (
	// InsertAnimated plays the entrance animation.
	InsertAnimated InsertMode = iota
	// InsertPreview skips the entrance and shows the dimmed, inverted-stroke preview style at once.
	InsertPreview
	// InsertSettled shows the block at its resting style immediately.
	InsertSettled
)

func (m InsertMode) String() string {
	switch m {
	case InsertAnimated:
		return "animated"
	case InsertPreview:
		return "preview"
	case InsertSettled:
		return "settled"
	}
	return "unknown"
}

// ParseInsertMode maps "animated" and "preview" to their modes.
func ParseInsertMode(s string) (InsertMode, bool) {
	switch s {
	case "animated":
		return InsertAnimated, true
	case "preview":
		return InsertPreview, true
	}
	return InsertAnimated, false
}
