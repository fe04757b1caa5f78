package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"

	"voxel-lab/internal/app"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// Only refresh overlay text every N frames to reduce allocations.
	updateInterval = 30
)

var textColor = rl.NewColor(0, 128, 0, 255)

// Debug holds the runtime overlays (FPS, memory, scene stats). All overlays are off by default.
type Debug struct {
	ShowFPS      bool
	ShowMemAlloc bool
	ShowStats    bool
	// Stats supplies the scene counters for the stats overlay.
	Stats func() app.Stats

	frameCount   uint32
	lines        []string
	lastMemStats runtime.MemStats
}

// New returns a Debug system with all overlays hidden.
func New(stats func() app.Stats) *Debug {
	return &Debug{Stats: stats}
}

// SetShowFPS sets whether the FPS counter is drawn (top-right).
func (d *Debug) SetShowFPS(show bool) {
	d.ShowFPS = show
	d.frameCount = 0
}

// SetShowMemAlloc sets whether heap usage is drawn.
func (d *Debug) SetShowMemAlloc(show bool) {
	d.ShowMemAlloc = show
	d.frameCount = 0
}

// SetShowStats sets whether block/mode counters are drawn.
func (d *Debug) SetShowStats(show bool) {
	d.ShowStats = show
	d.frameCount = 0
}

// Lines returns the overlay text that Draw would show this frame, refreshing it on the update interval.
func (d *Debug) Lines() []string {
	refresh := d.frameCount%updateInterval == 0
	d.frameCount++
	if !refresh {
		return d.lines
	}

	d.lines = d.lines[:0]
	if d.ShowFPS {
		d.lines = append(d.lines, fmt.Sprintf("FPS: %d", rl.GetFPS()))
	}
	if d.ShowMemAlloc {
		runtime.ReadMemStats(&d.lastMemStats)
		d.lines = append(d.lines, fmt.Sprintf("Mem: %.2f MiB", float64(d.lastMemStats.Alloc)/(1024*1024)))
	}
	if d.ShowStats && d.Stats != nil {
		d.lines = append(d.lines, FormatStats(d.Stats())...)
	}
	return d.lines
}

// Draw renders the enabled overlays at the top-right. Call after the scene and console.
func (d *Debug) Draw() {
	screenW := int32(rl.GetScreenWidth())
	y := int32(padding)
	for _, text := range d.Lines() {
		w := rl.MeasureText(text, fontSize)
		rl.DrawText(text, screenW-w-padding, y, fontSize, textColor)
		y += lineHeight
	}
}

// FormatStats renders stats as overlay lines.
func FormatStats(s app.Stats) []string {
	mode := "view"
	if s.Edit {
		mode = "edit"
	}
	if s.Switching {
		mode += fmt.Sprintf(" (switching %d%%)", int(s.Switch*100+0.5))
	}
	return []string{
		fmt.Sprintf("Blocks: %d", s.Blocks),
		fmt.Sprintf("Entering: %d", s.Entering),
		fmt.Sprintf("Mode: %s", mode),
		fmt.Sprintf("Insert: %s", s.Insert),
		fmt.Sprintf("Rotation: %.3f", s.Rotation),
	}
}
