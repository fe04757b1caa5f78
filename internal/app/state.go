// Package app is the lab's frame step. All mutable state lives in one State value that the host
// loop threads through Update; there are no globals.
package app

import (
	"time"

	"voxel-lab/internal/animation"
	"voxel-lab/internal/engineconfig"
	"voxel-lab/internal/input"
	"voxel-lab/internal/logger"
	"voxel-lab/internal/orientation"
	"voxel-lab/internal/picker"
	"voxel-lab/internal/render"
	"voxel-lab/internal/vecmath"
	"voxel-lab/internal/voxel"
)

// State is the whole lab: blocks, their animations, the orientation spring and edit settings.
type State struct {
	cfg      engineconfig.Config
	log      *logger.Logger
	renderer render.Renderer

	model *voxel.Model
	sched *animation.Scheduler
	ctl   *orientation.Controller

	direction  vecmath.Vec3
	facing     orientation.Facing
	insertMode voxel.InsertMode

	camera        render.Camera
	width, height int

	now     time.Duration
	started bool
	frames  int
}

// New builds the lab from cfg and seeds the layout with its entrance sweep starting at start.
// r receives block adds and removes as they happen and one submission per frame.
func New(cfg engineconfig.Config, r render.Renderer, log *logger.Logger, start time.Duration) *State {
	s := &State{
		cfg:        cfg,
		log:        log,
		renderer:   r,
		sched:      animation.NewScheduler(cfg.AnimationSettings()),
		ctl:        orientation.New(cfg.OrientationSettings()),
		insertMode: cfg.InsertMode(),
		width:      cfg.Window.Width,
		height:     cfg.Window.Height,
		now:        start,
	}
	s.direction = s.ctl.Config().Reference
	s.model = voxel.NewModel(s.sched, render.Observer{R: r})

	s.sched.SetNow(start)
	seed := cfg.SeedCoords()
	s.sched.Sweep(start, func() { s.model.Seed(seed, voxel.InsertAnimated) })
	if s.model.Heal() {
		s.log.Warn("seed is empty, placed a block at the origin")
	}
	s.camera = s.currentCamera()
	s.log.Info("scene seeded with %d blocks", s.model.Len())
	return s
}

// Model returns the block set.
func (s *State) Model() *voxel.Model { return s.model }

// Scheduler returns the animation scheduler.
func (s *State) Scheduler() *animation.Scheduler { return s.sched }

// Controller returns the orientation spring.
func (s *State) Controller() *orientation.Controller { return s.ctl }

// Camera returns the camera submitted with the last frame.
func (s *State) Camera() render.Camera { return s.camera }

// Edit reports whether edit mode is on.
func (s *State) Edit() bool { return s.sched.Edit() }

// Facing returns the edit-mode facing.
func (s *State) Facing() orientation.Facing { return s.facing }

// InsertMode returns how clicks insert blocks.
func (s *State) InsertMode() voxel.InsertMode { return s.insertMode }

// SetInsertMode changes how clicks insert blocks.
func (s *State) SetInsertMode(m voxel.InsertMode) {
	s.insertMode = m
	s.log.Info("insert mode %s", m)
}

// SetViewport records the screen size used for pointer mapping, the orthographic view height and
// the built-in picker.
func (s *State) SetViewport(width, height int) {
	s.width, s.height = width, height
}

// Blocks returns a caster over the current blocks, laid out as they are drawn.
func (s *State) Blocks() picker.Blocks {
	return picker.Blocks{Model: s.model, CellSize: s.cfg.Grid.CellSize, Shift: s.cfg.Shift()}
}

// Picker returns a picker that casts from the last submitted camera.
func (s *State) Picker() picker.Picker {
	c := s.camera
	return picker.RayPicker{
		Rays:   picker.CameraRays(c.Position, c.Target, c.Up, c.Fovy, c.Orthographic, s.width, s.height),
		Blocks: s.Blocks(),
	}
}

// PointerDirection maps a screen position to a target direction for the current viewport.
func (s *State) PointerDirection(x, y float32) vecmath.Vec3 {
	return input.PointerDirection(x, y, float32(s.width), float32(s.height), s.cfg.Camera.StallRatio)
}

// Settings returns the configuration the lab started with, updated with changes made while it runs
// (spring constant, insert mode).
func (s *State) Settings() engineconfig.Config {
	cfg := s.cfg
	cfg.Spring.Constant = s.ctl.Config().SpringConstant
	cfg.Edit.InsertMode = s.insertMode.String()
	return cfg
}

// Stats is a snapshot for the overlay and the console.
type Stats struct {
	Frames    int
	Blocks    int
	Entering  int
	Edit      bool
	Switching bool
	Switch    float32 // crossfade progress in [0,1] while Switching
	Rotation  float32
	Insert    voxel.InsertMode
}

// Stats returns the current counters.
func (s *State) Stats() Stats {
	switchProgress, _ := s.sched.SwitchProgress(s.now)
	return Stats{
		Frames:    s.frames,
		Blocks:    s.model.Len(),
		Entering:  s.sched.ActiveEntrances(),
		Edit:      s.sched.Edit(),
		Switching: s.sched.Switching(),
		Switch:    switchProgress,
		Rotation:  vecmath.Length(s.ctl.Rotation()),
		Insert:    s.insertMode,
	}
}

func (s *State) currentCamera() render.Camera {
	cam := render.Camera{
		Position:     s.ctl.CameraPosition(),
		Target:       vecmath.Zero,
		Up:           s.ctl.CameraUp(),
		Fovy:         s.cfg.Window.Fovy,
		Orthographic: s.cfg.Window.Orthographic,
	}
	if cam.Orthographic {
		cam.Fovy = float32(s.height)
	}
	return cam
}
