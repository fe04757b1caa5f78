package animation

import (
	"time"

	"voxel-lab/internal/palette"
	"voxel-lab/internal/vecmath"
	"voxel-lab/internal/voxel"
)

type entrance struct {
	start time.Duration
	delay time.Duration
}

// Scheduler owns every block's VisualState and AnimationState. Register it as an observer on the
// model so inserts and removals enqueue and cancel entrances.
type Scheduler struct {
	cfg Config

	now      time.Duration
	entering map[voxel.Handle]entrance

	sweeping   bool
	sweepStart time.Duration

	edit        bool
	switching   bool
	switchStart time.Duration
}

// NewScheduler returns a scheduler in normal (non-edit) mode.
func NewScheduler(cfg Config) *Scheduler {
	if cfg.Duration <= 0 {
		cfg.Duration = DefaultConfig().Duration
	}
	return &Scheduler{
		cfg:      cfg,
		entering: make(map[voxel.Handle]entrance),
	}
}

// Config returns the scheduler's configuration.
func (s *Scheduler) Config() Config { return s.cfg }

// SetNow records the current time. Blocks inserted outside a sweep start their entrance then.
func (s *Scheduler) SetNow(now time.Duration) { s.now = now }

// Edit reports whether edit mode is on.
func (s *Scheduler) Edit() bool { return s.edit }

// Switching reports whether a mode crossfade is running.
func (s *Scheduler) Switching() bool { return s.switching }

// ActiveEntrances returns how many blocks are still entering.
func (s *Scheduler) ActiveEntrances() int { return len(s.entering) }

// Sweep runs fn with sweep timing on: every animated insert made by fn shares start and is
// delayed by its position along DelayDirection, which staggers the layout diagonally.
func (s *Scheduler) Sweep(start time.Duration, fn func()) {
	s.sweeping, s.sweepStart = true, start
	defer func() { s.sweeping = false }()
	fn()
}

// Delay returns the entrance delay for a block at coord. It is negative for cells behind the origin
// along DelayDirection, so those blocks start early.
func (s *Scheduler) Delay(coord voxel.GridCoord) time.Duration {
	ms := coord.Vec().Mul(s.cfg.CellSize).Dot(s.cfg.DelayDirection)
	return time.Duration(float64(ms) * float64(time.Millisecond))
}

// BlockInserted sets up a new block's look for its insert mode and queues its entrance.
func (s *Scheduler) BlockInserted(h voxel.Handle, b *voxel.Block, mode voxel.InsertMode) {
	if b.Preview && !s.edit {
		// Preview only means something in edit mode.
		b.Preview = false
	}
	b.ModeFill = s.targetFill(b)
	b.Visual.StrokeColor = s.targetColor(b)

	if mode == voxel.InsertAnimated {
		e := entrance{start: s.now}
		if s.sweeping {
			e = entrance{start: s.sweepStart, delay: s.Delay(b.Coord)}
		}
		s.entering[h] = e
		b.Anim = voxel.AnimationState{Kind: voxel.Entering, Start: e.start}
		b.Presence = 0
	} else {
		b.Anim = voxel.AnimationState{Kind: voxel.Idle}
		b.Presence = 1
	}
	s.compose(b)
}

// BlockRemoved cancels the block's entrance.
func (s *Scheduler) BlockRemoved(h voxel.Handle, _ voxel.Block) {
	delete(s.entering, h)
}

// ToggleMode flips edit mode and starts a crossfade from whatever every block looks like right
// now. Re-triggering mid-fade captures the half-faded state. Leaving edit mode commits previews.
// It returns the new mode.
func (s *Scheduler) ToggleMode(m *voxel.Model, now time.Duration) bool {
	s.SetMode(m, !s.edit, now)
	return s.edit
}

// SetMode switches to the given mode, starting a crossfade even if the mode is unchanged.
func (s *Scheduler) SetMode(m *voxel.Model, edit bool, now time.Duration) {
	s.edit = edit
	s.switching = true
	s.switchStart = now
	m.Each(func(_ voxel.Handle, b *voxel.Block) {
		if !edit {
			b.Preview = false
		}
		b.Anim.Kind = voxel.ModeSwitching
		b.Anim.Start = now
		b.Anim.FromColor = b.Visual.StrokeColor
		b.Anim.FromFill = b.ModeFill
	})
}

// EntranceProgress returns the clamped entrance progress of h at now, or false when h is not entering.
func (s *Scheduler) EntranceProgress(h voxel.Handle, now time.Duration) (float32, bool) {
	e, ok := s.entering[h]
	if !ok {
		return 0, false
	}
	return vecmath.Clamp01(s.progress(now - e.start - e.delay)), true
}

// SwitchProgress returns the clamped crossfade progress at now, or false when no switch is running.
func (s *Scheduler) SwitchProgress(now time.Duration) (float32, bool) {
	if !s.switching {
		return 0, false
	}
	return vecmath.Clamp01(s.progress(now - s.switchStart)), true
}

// Advance moves every running animation to now and rewrites each block's VisualState.
func (s *Scheduler) Advance(m *voxel.Model, now time.Duration) {
	s.now = now

	for h, e := range s.entering {
		b, ok := m.Get(h)
		if !ok {
			delete(s.entering, h)
			continue
		}
		p := vecmath.Clamp01(s.progress(now - e.start - e.delay))
		b.Presence = s.cfg.EntranceCurve.At(p)
		if p >= 1 {
			b.Presence = 1
			delete(s.entering, h)
			if b.Anim.Kind == voxel.Entering {
				b.Anim = voxel.AnimationState{Kind: voxel.Idle}
			}
		}
	}

	if s.switching {
		p := vecmath.Clamp01(s.progress(now - s.switchStart))
		colorT := s.cfg.SwitchCurve.At(p)
		fillCurve := s.cfg.FillInCurve
		if s.edit {
			fillCurve = s.cfg.FillOutCurve
		}
		fillT := fillCurve.At(p)

		m.Each(func(h voxel.Handle, b *voxel.Block) {
			if b.Anim.Kind != voxel.ModeSwitching {
				return
			}
			b.Visual.StrokeColor = palette.Lerp(b.Anim.FromColor, s.targetColor(b), colorT)
			b.ModeFill = lerp(b.Anim.FromFill, s.targetFill(b), fillT)
			if p >= 1 {
				b.Anim = s.settledState(h, b)
			}
		})
		if p >= 1 {
			s.switching = false
		}
	}

	m.Each(func(_ voxel.Handle, b *voxel.Block) { s.compose(b) })
}

// settledState is the state a block returns to once the crossfade is over.
func (s *Scheduler) settledState(h voxel.Handle, b *voxel.Block) voxel.AnimationState {
	if e, ok := s.entering[h]; ok {
		return voxel.AnimationState{Kind: voxel.Entering, Start: e.start}
	}
	return voxel.AnimationState{Kind: voxel.Idle}
}

func (s *Scheduler) targetFill(b *voxel.Block) float32 {
	switch {
	case !s.edit:
		return 1
	case b.Preview:
		return s.cfg.Style.EditFill * s.cfg.Style.PreviewRatio
	default:
		return s.cfg.Style.EditFill
	}
}

func (s *Scheduler) targetColor(b *voxel.Block) palette.Color {
	switch {
	case !s.edit:
		return s.cfg.Style.NormalStroke
	case b.Preview:
		return s.cfg.Style.EditStroke.Invert()
	default:
		return s.cfg.Style.EditStroke
	}
}

// compose derives the drawn values from presence and the mode fill.
func (s *Scheduler) compose(b *voxel.Block) {
	st := s.cfg.Style
	b.Visual.FillOpacity = st.FillOpacity * b.Presence * b.ModeFill
	b.Visual.StrokeOpacity = st.StrokeOpacity * b.Presence
	b.Visual.Offset = s.cfg.EnterFrom.Mul(1 - b.Presence)
}

func (s *Scheduler) progress(elapsed time.Duration) float32 {
	return float32(float64(elapsed) / float64(s.cfg.Duration))
}

func lerp(a, b, t float32) float32 {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	return a + (b-a)*t
}
