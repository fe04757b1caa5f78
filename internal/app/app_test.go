package app

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voxel-lab/internal/commands"
	"voxel-lab/internal/engineconfig"
	"voxel-lab/internal/input"
	"voxel-lab/internal/logger"
	"voxel-lab/internal/picker"
	"voxel-lab/internal/render"
	"voxel-lab/internal/vecmath"
	"voxel-lab/internal/voxel"
)

const step = 16 * time.Millisecond

type fixedPicker []picker.Hit

func (p fixedPicker) Pick(float32, float32) []picker.Hit { return p }

func newLab(t *testing.T, cfg engineconfig.Config) (*State, *render.Recorder) {
	t.Helper()
	rec := render.NewRecorder()
	return New(cfg, rec, logger.NewWithPath(""), 0), rec
}

func run(s *State, from time.Duration, frames int, in input.Frame) time.Duration {
	now := from
	for i := 0; i < frames; i++ {
		s.Update(in, now, nil)
		now += step
	}
	return now
}

func hitAt(t *testing.T, s *State, c voxel.GridCoord, normal vecmath.Vec3) picker.Hit {
	t.Helper()
	h, ok := s.Model().At(c)
	require.True(t, ok)
	return picker.Hit{Handle: h, Normal: normal}
}

func TestSeedAndSideTable(t *testing.T) {
	s, rec := newLab(t, engineconfig.Default())
	assert.Equal(t, len(voxel.LAB), s.Model().Len())
	assert.Equal(t, len(voxel.LAB), rec.Live())
	assert.Equal(t, len(voxel.LAB), s.Scheduler().ActiveEntrances())
}

func TestEmptySeedStartsWithOriginBlock(t *testing.T) {
	cfg := engineconfig.Default()
	cfg.Seed = nil
	s, rec := newLab(t, cfg)
	require.Equal(t, 1, s.Model().Len())
	h, ok := s.Model().At(voxel.Origin)
	require.True(t, ok)
	assert.True(t, rec.Tracks(h))

	now := run(s, 0, 30, input.Frame{})
	s.Update(input.Frame{ToggleMode: true}, now, nil)
	now = run(s, now+step, 20, input.Frame{})
	s.Update(input.Frame{Click: input.ButtonRight}, now, fixedPicker{hitAt(t, s, voxel.Origin, vecmath.V3(1, 0, 0))})
	assert.Equal(t, 2, s.Model().Len())
}

func TestClearAllThenInsertScenario(t *testing.T) {
	s, rec := newLab(t, engineconfig.Default())
	now := run(s, 0, 120, input.Frame{})

	s.Update(input.Frame{ClearAll: true}, now, nil)
	require.Equal(t, 1, s.Model().Len())
	assert.Equal(t, []voxel.GridCoord{voxel.Origin}, s.Model().Coords())
	assert.Equal(t, 1, rec.Live())

	oh, _ := s.Model().At(voxel.Origin)
	before := *mustBlock(t, s, oh)

	s.Insert(voxel.C(1, 0, 0), voxel.InsertAnimated)
	assert.Equal(t, 2, s.Model().Len())
	assert.Equal(t, before, *mustBlock(t, s, oh))
}

func TestEntranceCompletes(t *testing.T) {
	s, rec := newLab(t, engineconfig.Default())
	run(s, 0, 120, input.Frame{})

	assert.Equal(t, 0, s.Scheduler().ActiveEntrances())
	st := s.cfg.Style
	for _, e := range rec.Last.Entities {
		assert.Equal(t, st.FillOpacity, e.Visual.FillOpacity)
		assert.Equal(t, st.StrokeOpacity, e.Visual.StrokeOpacity)
	}
	s.Model().Each(func(_ voxel.Handle, b *voxel.Block) {
		assert.Equal(t, voxel.Idle, b.Anim.Kind)
	})
}

func TestPointerDrivesSpring(t *testing.T) {
	s, _ := newLab(t, engineconfig.Default())
	dir := s.PointerDirection(1280, 0)
	now := run(s, 0, 300, input.Frame{Direction: dir, HasDirection: true})

	target := s.Controller().TargetRotation(dir)
	assert.InDelta(t, 0, vecmath.Distance(target, s.Controller().Rotation()), 1e-3)

	// Without new pointer input the last direction is held.
	run(s, now, 10, input.Frame{})
	assert.Equal(t, dir, s.Controller().Target())
}

func TestFocusLossSkipsOneIntegration(t *testing.T) {
	s, _ := newLab(t, engineconfig.Default())
	dir := vecmath.Normalize(vecmath.V3(1, 0, 1))
	now := run(s, 0, 5, input.Frame{Direction: dir, HasDirection: true})
	before := s.Controller().Rotation()
	framesBefore := s.Stats().Frames

	// A long gap, signaled as focus loss.
	now += 5 * time.Second
	s.Update(input.Frame{FocusLost: true}, now, nil)
	assert.Equal(t, before, s.Controller().Rotation())
	assert.Equal(t, framesBefore+1, s.Stats().Frames)
	assert.Equal(t, 0, s.Scheduler().ActiveEntrances(), "animations still advance")

	s.Update(input.Frame{}, now+step, nil)
	assert.NotEqual(t, before, s.Controller().Rotation())
}

func TestEditClicks(t *testing.T) {
	s, rec := newLab(t, engineconfig.Default())
	now := run(s, 0, 120, input.Frame{})
	n := s.Model().Len()

	// Clicks outside edit mode do nothing.
	s.Update(input.Frame{Click: input.ButtonLeft}, now, fixedPicker{hitAt(t, s, voxel.C(4, 0, 0), vecmath.V3(0, 0, 1))})
	assert.Equal(t, n, s.Model().Len())

	now += step
	s.Update(input.Frame{ToggleMode: true}, now, nil)
	require.True(t, s.Edit())
	now = run(s, now+step, 20, input.Frame{})

	s.Update(input.Frame{Click: input.ButtonRight}, now, fixedPicker{hitAt(t, s, voxel.C(4, 0, 0), vecmath.V3(0, 0, 1))})
	h, ok := s.Model().At(voxel.C(4, 0, 1))
	require.True(t, ok)
	b := mustBlock(t, s, h)
	assert.True(t, b.Preview)
	assert.Equal(t, s.cfg.Style.EditStroke.Invert(), b.Visual.StrokeColor)
	assert.True(t, rec.Tracks(h))

	now += step
	s.Update(input.Frame{Click: input.ButtonLeft}, now, fixedPicker{hitAt(t, s, voxel.C(6, 3, 0), vecmath.V3(0, 1, 0))})
	_, ok = s.Model().At(voxel.C(6, 3, 0))
	assert.False(t, ok)
	assert.Equal(t, n, s.Model().Len())

	// No hits: nothing changes.
	s.Update(input.Frame{Click: input.ButtonLeft}, now+step, fixedPicker{})
	assert.Equal(t, n, s.Model().Len())
}

func TestAnimatedInsertMode(t *testing.T) {
	s, _ := newLab(t, engineconfig.Default())
	now := run(s, 0, 120, input.Frame{})
	s.SetInsertMode(voxel.InsertAnimated)
	s.Update(input.Frame{ToggleMode: true}, now, nil)

	s.Update(input.Frame{Click: input.ButtonRight}, now+step, fixedPicker{hitAt(t, s, voxel.C(0, 0, 0), vecmath.V3(0, -1, 0))})
	h, ok := s.Model().At(voxel.C(0, -1, 0))
	require.True(t, ok)
	b := mustBlock(t, s, h)
	assert.False(t, b.Preview)
	assert.Equal(t, 1, s.Scheduler().ActiveEntrances())
}

func TestFacingDrivesSpringInEditMode(t *testing.T) {
	s, _ := newLab(t, engineconfig.Default())
	s.Update(input.Frame{Facing: input.Turn{Yaw: 1}}, 0, nil)
	assert.Equal(t, 0, s.Facing().Yaw, "facing is ignored outside edit mode")

	s.Update(input.Frame{ToggleMode: true}, step, nil)
	s.Update(input.Frame{Facing: input.Turn{Yaw: 1}}, 2*step, nil)
	run(s, 3*step, 400, input.Frame{Direction: vecmath.V3(0, 1, 0), HasDirection: true})

	assert.Equal(t, vecmath.V3(1, 0, 0), s.Controller().Target())
}

func TestDeterministicReplay(t *testing.T) {
	frames := input.Orbit(90, 1280, 720, 200, 2000)
	frames[30].ToggleMode = true
	frames[60].ToggleMode = true

	replay := func() render.Submission {
		s, rec := newLab(t, engineconfig.Default())
		script := input.NewScript(frames...)
		now := time.Duration(0)
		for !script.Done() {
			s.Update(script.Poll(), now, nil)
			now += step
		}
		return rec.Last
	}
	assert.Equal(t, replay(), replay())
}

func TestBuiltInPicker(t *testing.T) {
	cfg := engineconfig.Default()
	cfg.Seed = [][3]int{{0, 0, 0}}
	cfg.Grid.Shift = [3]float32{}
	cfg.Camera.InitialTilt = [3]float32{}
	s, _ := newLab(t, cfg)
	now := run(s, 0, 30, input.Frame{})
	s.Update(input.Frame{ToggleMode: true}, now, nil)

	s.Update(input.Frame{Click: input.ButtonRight, ClickX: 640, ClickY: 360}, now+step, nil)
	_, ok := s.Model().At(voxel.C(0, 0, 1))
	assert.True(t, ok)
}

func TestBuiltInPickerPerspective(t *testing.T) {
	cfg := engineconfig.Default()
	cfg.Window.Orthographic = false
	cfg.Seed = [][3]int{{0, 0, 0}}
	cfg.Grid.Shift = [3]float32{}
	cfg.Camera.InitialTilt = [3]float32{}
	s, rec := newLab(t, cfg)
	now := run(s, 0, 30, input.Frame{})
	assert.False(t, rec.Last.Camera.Orthographic)
	assert.Equal(t, float32(45), rec.Last.Camera.Fovy)

	s.Update(input.Frame{ToggleMode: true}, now, nil)
	s.Update(input.Frame{Click: input.ButtonLeft, ClickX: 640, ClickY: 360}, now+step, nil)
	assert.Equal(t, 1, s.Model().Len(), "removing the last block heals at the origin")
	h, _ := s.Model().At(voxel.Origin)
	assert.Equal(t, voxel.Idle, mustBlock(t, s, h).Anim.Kind)
}

func TestOrthographicCameraUsesViewportHeight(t *testing.T) {
	s, rec := newLab(t, engineconfig.Default())
	s.SetViewport(800, 500)
	s.Update(input.Frame{}, 0, nil)
	assert.True(t, rec.Last.Camera.Orthographic)
	assert.Equal(t, float32(500), rec.Last.Camera.Fovy)
}

func TestConsoleCommands(t *testing.T) {
	s, _ := newLab(t, engineconfig.Default())
	reg := commands.NewRegistry()
	s.RegisterCommands(reg)

	exec := func(line string) error {
		handled, err := reg.Run(line)
		require.True(t, handled, line)
		return err
	}

	require.NoError(t, exec(":add -1 0 0"))
	_, ok := s.Model().At(voxel.C(-1, 0, 0))
	assert.True(t, ok)
	require.NoError(t, exec(":remove -1 0 0"))
	assert.Error(t, exec(":remove -1 0 0"))
	assert.Error(t, exec(":add 1 2"))

	require.NoError(t, exec(":insert animated"))
	assert.Equal(t, voxel.InsertAnimated, s.InsertMode())
	assert.Error(t, exec(":insert sideways"))

	require.NoError(t, exec(":spring -k 80"))
	assert.Equal(t, float32(80), s.Controller().Config().SpringConstant)
	assert.Error(t, exec(":spring -k 0"))

	assert.Error(t, exec(":face yaw 1"), "needs edit mode")
	require.NoError(t, exec(":mode"))
	require.NoError(t, exec(":face yaw 1"))
	require.NoError(t, exec(":face pitch -1"))
	assert.Equal(t, 1, s.Facing().Yaw)
	assert.Equal(t, -1, s.Facing().Pitch)
	assert.Error(t, exec(":face roll 1"))

	now := run(s, 0, 30, input.Frame{})
	require.NotEqual(t, vecmath.Zero, s.Controller().Rotation())
	require.NoError(t, exec(":recenter"))
	assert.Equal(t, vecmath.Zero, s.Controller().Rotation())
	assert.Equal(t, vecmath.Zero, s.Controller().Speed())
	run(s, now, 1, input.Frame{})

	path := filepath.Join(t.TempDir(), "saved.yaml")
	require.NoError(t, exec(":save "+path))
	saved, err := engineconfig.Load(path)
	require.NoError(t, err)
	assert.Equal(t, float32(80), saved.Spring.Constant)
	assert.Equal(t, voxel.InsertAnimated, saved.InsertMode())
	assert.Equal(t, s.cfg.Seed, saved.Seed)
	assert.Error(t, exec(":save a b"))

	require.NoError(t, exec(":clear"))
	assert.Equal(t, 1, s.Model().Len())
	require.NoError(t, exec(":stats"))
	require.NoError(t, exec(":help"))
	assert.ErrorIs(t, exec(":warp"), commands.ErrUnknownCommand)
}

func mustBlock(t *testing.T, s *State, h voxel.Handle) *voxel.Block {
	t.Helper()
	b, ok := s.Model().Get(h)
	require.True(t, ok)
	return b
}
