package app

import (
	"time"

	"voxel-lab/internal/input"
	"voxel-lab/internal/orientation"
	"voxel-lab/internal/picker"
	"voxel-lab/internal/render"
	"voxel-lab/internal/vecmath"
	"voxel-lab/internal/voxel"
)

// Update runs one frame at time now. Commands in, including clicks resolved through pick, are
// applied first against what the previous frame showed. Then the target direction is derived, the
// spring is integrated, the frame is submitted and the animations advance. pick may be nil, in
// which case the built-in picker is used.
func (s *State) Update(in input.Frame, now time.Duration, pick picker.Picker) {
	s.sched.SetNow(now)
	s.applyCommands(in, now, pick)

	// 1. target direction
	dir := s.direction
	if s.sched.Edit() {
		dir = s.facing.Direction()
	} else if in.HasDirection && vecmath.Length(in.Direction) > 0 {
		s.direction = in.Direction
		dir = in.Direction
	}

	// 2. integrate
	var dt float32
	if s.started {
		dt = float32((now - s.now).Seconds())
	}
	s.ctl.Tick(dir, dt)

	// 3. submit
	s.camera = s.currentCamera()
	s.renderer.Draw(render.Build(s.model, s.camera, s.cfg.Grid.CellSize, s.cfg.Shift(), s.sched.Edit()))

	// 4. animate
	s.sched.Advance(s.model, now)

	s.now = now
	s.started = true
	s.frames++
}

func (s *State) applyCommands(in input.Frame, now time.Duration, pick picker.Picker) {
	if in.FocusLost {
		s.ctl.SkipNext()
		s.log.Info("focus lost, skipping one integration step")
	}
	if in.ToggleMode {
		s.ToggleModeAt(now)
	}
	if in.ClearAll {
		s.ClearAll()
	}
	if in.Facing != (input.Turn{}) {
		s.Face(in.Facing.Yaw, in.Facing.Pitch)
	}
	if in.Click != input.ButtonNone {
		if pick == nil {
			pick = s.Picker()
		}
		s.Click(in.Click, pick.Pick(in.ClickX, in.ClickY))
	}
}

// ToggleModeAt flips edit mode, starting the crossfade at now.
func (s *State) ToggleModeAt(now time.Duration) {
	edit := s.sched.ToggleMode(s.model, now)
	if edit {
		s.facing = orientation.Facing{}
		s.log.Info("edit mode on")
	} else {
		s.log.Info("edit mode off")
	}
}

// ToggleMode flips edit mode at the current frame time.
func (s *State) ToggleMode() { s.ToggleModeAt(s.now) }

// ClearAll removes every block, leaving the single origin block.
func (s *State) ClearAll() {
	n := s.model.ClearAll()
	s.log.Info("cleared %d blocks", n)
}

// Face steps the edit-mode facing by quarter turns. Outside edit mode it does nothing.
func (s *State) Face(dyaw, dpitch int) {
	if !s.sched.Edit() {
		return
	}
	s.facing = s.facing.Step(dyaw, dpitch)
}

// Click applies a pick result: the left button removes the nearest block, any other button inserts
// next to it across the hit face. It does nothing outside edit mode or without hits.
func (s *State) Click(b input.Button, hits []picker.Hit) {
	if !s.sched.Edit() || len(hits) == 0 {
		return
	}
	hit := hits[0]
	if b == input.ButtonLeft {
		blk, ok := s.model.Get(hit.Handle)
		if !ok {
			return
		}
		coord := blk.Coord
		s.model.Remove(hit.Handle)
		s.log.Info("removed block at %s", coord)
		return
	}
	coord, ok := s.model.NeighborCoord(hit.Handle, hit.Normal)
	if !ok {
		return
	}
	s.Insert(coord, s.insertMode)
}

// Insert places a block at coord with the given mode.
func (s *State) Insert(coord voxel.GridCoord, mode voxel.InsertMode) voxel.Handle {
	h, inserted := s.model.Insert(coord, mode)
	if inserted {
		s.log.Info("inserted %s block at %s", mode, coord)
	}
	return h
}

// RemoveAt removes the block at coord, reporting whether there was one.
func (s *State) RemoveAt(coord voxel.GridCoord) bool {
	h, ok := s.model.At(coord)
	if !ok {
		return false
	}
	s.model.Remove(h)
	s.log.Info("removed block at %s", coord)
	return true
}
