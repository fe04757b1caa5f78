package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"voxel-lab/internal/app"
	"voxel-lab/internal/commands"
	"voxel-lab/internal/debug"
	"voxel-lab/internal/engineconfig"
	"voxel-lab/internal/env"
	"voxel-lab/internal/graphics"
	"voxel-lab/internal/input"
	"voxel-lab/internal/logger"
	"voxel-lab/internal/render"
	"voxel-lab/internal/scene"
	"voxel-lab/internal/terminal"
)

type options struct {
	configPath string
	headless   bool
	frames     int
	hz         int
	window     engineconfig.WindowConfig
}

func main() {
	var opts options
	flag.StringVar(&opts.configPath, "config", "", "config file (default $"+engineconfig.ConfigPathEnv+" or "+engineconfig.ConfigPath+")")
	flag.BoolVar(&opts.headless, "headless", false, "run a scripted session without a window")
	flag.IntVar(&opts.frames, "frames", 600, "frames to run in headless mode")
	flag.IntVar(&opts.hz, "hz", 60, "frame rate of the headless clock")
	flag.IntVar(&opts.window.Width, "width", 0, "window width (overrides config)")
	flag.IntVar(&opts.window.Height, "height", 0, "window height (overrides config)")
	flag.Parse()

	if err := run(opts); err != nil {
		fmt.Fprintln(os.Stderr, "lab:", err)
		os.Exit(1)
	}
}

func run(opts options) error {
	if _, err := env.Load(env.DefaultPath); err != nil {
		return fmt.Errorf("load %s: %w", env.DefaultPath, err)
	}
	cfg, err := engineconfig.Load(engineconfig.ResolvePath(opts.configPath))
	if err != nil {
		return err
	}
	if err := cfg.OverrideWindow(opts.window); err != nil {
		return err
	}

	log := logger.NewWithPath(cfg.Log.Path)
	level, err := logger.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	log.SetLevel(level)
	log.SetCapacity(cfg.Log.Capacity)

	if opts.headless {
		return runHeadless(cfg, log, opts)
	}
	runWindow(cfg, log)
	return nil
}

// runHeadless drives the lab from a scripted orbit on a fixed clock and logs the final counters.
func runHeadless(cfg engineconfig.Config, log *logger.Logger, opts options) error {
	if opts.frames <= 0 || opts.hz <= 0 {
		return errors.New("-frames and -hz must be positive")
	}
	rec := render.NewRecorder()
	lab := app.New(cfg, rec, log, 0)

	w, h := float32(cfg.Window.Width), float32(cfg.Window.Height)
	frames := input.Orbit(opts.frames, w, h, h/3, cfg.Camera.StallRatio)
	// Visit edit mode for the middle third so both crossfades run.
	if n := len(frames); n >= 3 {
		frames[n/3].ToggleMode = true
		frames[2*n/3].ToggleMode = true
	}
	script := input.NewScript(frames...)

	step := time.Second / time.Duration(opts.hz)
	for i := 0; !script.Done(); i++ {
		lab.Update(script.Poll(), time.Duration(i)*step, nil)
	}

	st := lab.Stats()
	log.Info("headless run done: frames=%d blocks=%d drawn=%d entering=%d edit=%t rotation=%.3f",
		st.Frames, st.Blocks, len(rec.Last.Entities), st.Entering, st.Edit, st.Rotation)
	return nil
}

func runWindow(cfg engineconfig.Config, log *logger.Logger) {
	prefs, _ := engineconfig.LoadPrefs(engineconfig.PrefsPath)

	scn := scene.New(cfg.Faces(), cfg.Grid.CellSize, cfg.Shift())
	lab := app.New(cfg, scn, log, 0)
	pick := scene.Picker{Scene: scn, Blocks: lab.Blocks()}

	dbg := debug.New(lab.Stats)
	dbg.SetShowFPS(prefs.ShowFPS)
	dbg.SetShowStats(prefs.ShowStats)

	reg := commands.NewRegistry()
	lab.RegisterCommands(reg)
	registerEngineCommands(reg, log, dbg, scn, &prefs)
	term := terminal.New(log, reg)

	in := scene.NewInput(cfg.Camera.StallRatio)
	in.Suppressed = term.IsOpen

	update := func(now time.Duration) {
		term.Update()
		lab.SetViewport(graphics.ScreenSize())
		lab.Update(in.Poll(), now, pick)
	}
	draw := func() {
		scn.Render()
		term.Draw()
		dbg.Draw()
	}
	log.Info("press ` for the console, E to toggle edit mode, C to clear")
	graphics.Run(cfg.Window, update, draw)
}

// registerEngineCommands adds the commands that only make sense with a window.
func registerEngineCommands(reg *commands.Registry, log *logger.Logger, dbg *debug.Debug, scn *scene.Scene, prefs *engineconfig.EnginePrefs) {
	save := func() {
		if err := engineconfig.SavePrefs(engineconfig.PrefsPath, *prefs); err != nil {
			log.Warn("save prefs: %v", err)
		}
	}
	reg.Register("fps", "toggle the FPS counter", nil, func([]string) error {
		prefs.ShowFPS = !prefs.ShowFPS
		dbg.SetShowFPS(prefs.ShowFPS)
		save()
		return nil
	})
	reg.Register("overlay", "toggle the stats overlay", nil, func([]string) error {
		prefs.ShowStats = !prefs.ShowStats
		dbg.SetShowStats(prefs.ShowStats)
		save()
		return nil
	})
	reg.Register("mem", "toggle the heap counter", nil, func([]string) error {
		dbg.SetShowMemAlloc(!dbg.ShowMemAlloc)
		return nil
	})
	reg.Register("grid", "toggle the edit-mode grid", nil, func([]string) error {
		scn.SetGridVisible(!scn.GridVisible)
		return nil
	})
}
