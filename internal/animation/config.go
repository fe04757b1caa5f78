// Package animation drives block visuals over time: a staggered entrance for new blocks and a
// global crossfade whenever edit mode is toggled. Everything is a function of absolute elapsed
// time, so skipped or late frames never overshoot.
package animation

import (
	"time"

	"voxel-lab/internal/easing"
	"voxel-lab/internal/palette"
	"voxel-lab/internal/vecmath"
)

// Style is the resting look of blocks in each mode.
type Style struct {
	FillOpacity   float32
	StrokeOpacity float32
	NormalStroke  palette.Color
	EditStroke    palette.Color
	// EditFill is the fill ratio blocks fade to in edit mode.
	EditFill float32
	// PreviewRatio further scales EditFill for uncommitted preview blocks.
	PreviewRatio float32
}

// Config holds timing and curves for the scheduler.
type Config struct {
	Duration time.Duration
	CellSize float32
	// DelayDirection is dotted with a block's scaled coordinate to give its entrance delay in
	// milliseconds. Its length sets how fast the sweep crosses the layout.
	DelayDirection vecmath.Vec3
	// EnterFrom is the offset a block starts its entrance from.
	EnterFrom vecmath.Vec3

	EntranceCurve easing.Curve
	SwitchCurve   easing.Curve
	// FillInCurve is used when leaving edit mode, FillOutCurve when entering it.
	FillInCurve  easing.Curve
	FillOutCurve easing.Curve

	Style Style
}

// DefaultConfig returns the stock timings and look.
func DefaultConfig() Config {
	return Config{
		Duration:       200 * time.Millisecond,
		CellSize:       30,
		DelayDirection: vecmath.SetLength(vecmath.V3(1, 1, 1), 5),
		EnterFrom:      vecmath.V3(0, 10, 0),
		EntranceCurve:  easing.EaseOut,
		SwitchCurve:    easing.Ease,
		FillInCurve:    easing.EaseIn,
		FillOutCurve:   easing.EaseOut,
		Style: Style{
			FillOpacity:   0.8,
			StrokeOpacity: 0.2,
			NormalStroke:  0x000000,
			EditStroke:    0x1E88E5,
			EditFill:      0.25,
			PreviewRatio:  0.5,
		},
	}
}
