package engineconfig

import (
	"time"

	"voxel-lab/internal/animation"
	"voxel-lab/internal/easing"
	"voxel-lab/internal/orientation"
	"voxel-lab/internal/render"
	"voxel-lab/internal/vecmath"
	"voxel-lab/internal/voxel"
)

func vec(a [3]float32) vecmath.Vec3 { return vecmath.V3(a[0], a[1], a[2]) }

// OrientationSettings returns the spring and camera settings.
func (c Config) OrientationSettings() orientation.Config {
	return orientation.Config{
		SpringConstant: c.Spring.Constant,
		Damping:        c.Spring.Damping,
		MaxDelta:       c.Spring.MaxDelta,
		Reference:      vecmath.Normalize(vec(c.Camera.Reference)),
		Distance:       c.Camera.Distance,
		InitialTilt:    vec(c.Camera.InitialTilt),
		ZeroEps:        c.Camera.ZeroEps,
	}
}

// AnimationSettings returns the scheduler settings. The delay direction is scaled to DelayMagnitude.
func (c Config) AnimationSettings() animation.Config {
	a := c.Animation
	return animation.Config{
		Duration:       time.Duration(a.DurationMS) * time.Millisecond,
		CellSize:       c.Grid.CellSize,
		DelayDirection: vecmath.SetLength(vec(a.DelayDirection), a.DelayMagnitude),
		EnterFrom:      vec(a.EnterFrom),
		EntranceCurve:  easing.FromPoints(a.EntranceCurve),
		SwitchCurve:    easing.FromPoints(a.SwitchCurve),
		FillInCurve:    easing.FromPoints(a.FillInCurve),
		FillOutCurve:   easing.FromPoints(a.FillOutCurve),
		Style: animation.Style{
			FillOpacity:   c.Style.FillOpacity,
			StrokeOpacity: c.Style.StrokeOpacity,
			NormalStroke:  c.Style.Stroke,
			EditStroke:    c.Style.EditStroke,
			EditFill:      c.Style.EditFillRatio,
			PreviewRatio:  c.Style.PreviewRatio,
		},
	}
}

// Faces returns the per-face fill colors.
func (c Config) Faces() render.Faces {
	f := c.Style.Faces
	return render.Faces{
		Right: f.Right, Left: f.Left,
		Top: f.Top, Bottom: f.Bottom,
		Front: f.Front, Back: f.Back,
	}
}

// SeedCoords returns the seed layout.
func (c Config) SeedCoords() []voxel.GridCoord {
	return voxel.CoordsFromTriples(c.Seed)
}

// InsertMode returns the edit insert mode, defaulting to preview.
func (c Config) InsertMode() voxel.InsertMode {
	if m, ok := voxel.ParseInsertMode(c.Edit.InsertMode); ok {
		return m
	}
	return voxel.InsertPreview
}

// Shift returns the layout shift in cells.
func (c Config) Shift() vecmath.Vec3 { return vec(c.Grid.Shift) }
