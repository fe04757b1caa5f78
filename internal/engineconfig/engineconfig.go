package engineconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jinzhu/copier"
	"gopkg.in/yaml.v3"

	"voxel-lab/internal/easing"
	"voxel-lab/internal/logger"
	"voxel-lab/internal/palette"
	"voxel-lab/internal/voxel"
)

// ConfigPath is the lab config file, relative to the process working directory.
const ConfigPath = "config/lab.yaml"

// ConfigPathEnv names the environment variable that overrides ConfigPath.
const ConfigPathEnv = "LAB_CONFIG"

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config is everything the lab reads at startup. Fields missing from the file keep their Default values.
type Config struct {
	Window    WindowConfig    `yaml:"window"`
	Log       LogConfig       `yaml:"log"`
	Spring    SpringConfig    `yaml:"spring"`
	Camera    CameraConfig    `yaml:"camera"`
	Animation AnimationConfig `yaml:"animation"`
	Grid      GridConfig      `yaml:"grid"`
	Style     StyleConfig     `yaml:"style"`
	Edit      EditConfig      `yaml:"edit"`
	Seed      [][3]int        `yaml:"seed"`
}

// WindowConfig sizes the window. Flags on the command line override it.
// An orthographic camera maps one world unit to one pixel; Fovy only applies to perspective.
type WindowConfig struct {
	Title        string  `yaml:"title"`
	Width        int     `yaml:"width"`
	Height       int     `yaml:"height"`
	FPS          int     `yaml:"fps"`
	Orthographic bool    `yaml:"orthographic"`
	Fovy         float32 `yaml:"fovy"`
}

// LogConfig sets the minimum level, the log file (empty keeps lines in memory only) and how many
// lines the console keeps.
type LogConfig struct {
	Level    string `yaml:"level"`
	Path     string `yaml:"path"`
	Capacity int    `yaml:"capacity"`
}

// SpringConfig tunes the orientation spring.
type SpringConfig struct {
	Constant float32 `yaml:"constant"`
	// Damping of 0 means critical damping.
	Damping  float32 `yaml:"damping"`
	MaxDelta float32 `yaml:"max_delta"`
}

// CameraConfig places the camera around the origin and maps the pointer to a direction.
type CameraConfig struct {
	Distance    float32    `yaml:"distance"`
	InitialTilt [3]float32 `yaml:"initial_tilt"`
	StallRatio  float32    `yaml:"stall_ratio"`
	ZeroEps     float32    `yaml:"zero_eps"`
	Reference   [3]float32 `yaml:"reference"`
}

// AnimationConfig times the entrance sweep and the mode-switch crossfade.
type AnimationConfig struct {
	DurationMS     int        `yaml:"duration_ms"`
	DelayMagnitude float32    `yaml:"delay_magnitude"`
	DelayDirection [3]float32 `yaml:"delay_direction"`
	EnterFrom      [3]float32 `yaml:"enter_from"`
	EntranceCurve  Curve      `yaml:"entrance_curve"`
	SwitchCurve    Curve      `yaml:"switch_curve"`
	FillInCurve    Curve      `yaml:"fill_in_curve"`
	FillOutCurve   Curve      `yaml:"fill_out_curve"`
}

// GridConfig maps grid cells to world space: world = (cell + shift) * cell_size.
type GridConfig struct {
	CellSize float32    `yaml:"cell_size"`
	Shift    [3]float32 `yaml:"shift"`
}

// StyleConfig holds block opacities and colors.
type StyleConfig struct {
	FillOpacity   float32       `yaml:"fill_opacity"`
	StrokeOpacity float32       `yaml:"stroke_opacity"`
	EditFillRatio float32       `yaml:"edit_fill_ratio"`
	PreviewRatio  float32       `yaml:"preview_ratio"`
	Stroke        palette.Color `yaml:"stroke"`
	EditStroke    palette.Color `yaml:"edit_stroke"`
	Faces         FacesConfig   `yaml:"faces"`
}

// FacesConfig holds the fill color of each cube face.
type FacesConfig struct {
	Right  palette.Color `yaml:"right"`
	Left   palette.Color `yaml:"left"`
	Top    palette.Color `yaml:"top"`
	Bottom palette.Color `yaml:"bottom"`
	Front  palette.Color `yaml:"front"`
	Back   palette.Color `yaml:"back"`
}

// EditConfig holds edit-mode settings.
type EditConfig struct {
	// InsertMode is "preview" or "animated".
	InsertMode string `yaml:"insert_mode"`
}

// Default returns the stock configuration: the LAB letterforms, grey faces and a soft spring.
func Default() Config {
	return Config{
		Window: WindowConfig{Title: "voxel lab", Width: 1280, Height: 720, FPS: 60, Orthographic: true, Fovy: 45},
		Log:    LogConfig{Level: "info", Path: logger.LogFilePath, Capacity: logger.DefaultCapacity},
		Spring: SpringConfig{Constant: 50, MaxDelta: 0.1},
		Camera: CameraConfig{
			Distance:    200,
			InitialTilt: [3]float32{-0.4, -0.4, 0},
			StallRatio:  2000,
			ZeroEps:     1e-8,
			Reference:   [3]float32{0, 0, 1},
		},
		Animation: AnimationConfig{
			DurationMS:     200,
			DelayMagnitude: 5,
			DelayDirection: [3]float32{1, 1, 1},
			EnterFrom:      [3]float32{0, 10, 0},
			EntranceCurve:  []float32{0, 0, 0.58, 1},
			SwitchCurve:    []float32{0.25, 0.1, 0.25, 1},
			FillInCurve:    []float32{0.42, 0, 1, 1},
			FillOutCurve:   []float32{0, 0, 0.58, 1},
		},
		Grid: GridConfig{CellSize: 30, Shift: [3]float32{-5, -2, 0}},
		Style: StyleConfig{
			FillOpacity:   0.8,
			StrokeOpacity: 0.2,
			EditFillRatio: 0.25,
			PreviewRatio:  0.5,
			Stroke:        0x000000,
			EditStroke:    0x1E88E5,
			Faces: FacesConfig{
				Right: 0x999999, Left: 0xCCCCCC,
				Top: 0xEEEEEE, Bottom: 0x777777,
				Front: 0xDDDDDD, Back: 0xAAAAAA,
			},
		},
		Edit: EditConfig{InsertMode: "preview"},
		Seed: triples(voxel.LAB),
	}
}

// ResolvePath picks the config path: the flag value if set, then $LAB_CONFIG, then ConfigPath.
func ResolvePath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if p := os.Getenv(ConfigPathEnv); p != "" {
		return p
	}
	return ConfigPath
}

// Load reads the config at path on top of Default(). A missing file yields Default() and no error;
// a malformed or invalid file is an error.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	// Decoding onto the defaults leaves keys absent from the file untouched.
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg as YAML to path, creating the directory if needed.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// OverrideWindow copies the non-zero fields of w over the window settings.
func (c *Config) OverrideWindow(w WindowConfig) error {
	return copier.CopyWithOption(&c.Window, &w, copier.Option{IgnoreEmpty: true})
}

// Validate checks ranges the simulation depends on.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
		}
	}
	check(c.Spring.Constant > 0, "spring.constant must be positive, got %v", c.Spring.Constant)
	check(c.Spring.Damping >= 0, "spring.damping must not be negative, got %v", c.Spring.Damping)
	check(c.Spring.MaxDelta >= 0, "spring.max_delta must not be negative, got %v", c.Spring.MaxDelta)
	check(c.Camera.StallRatio > 0, "camera.stall_ratio must be positive, got %v", c.Camera.StallRatio)
	check(c.Camera.Reference != [3]float32{}, "camera.reference must not be zero")
	check(c.Animation.DurationMS > 0, "animation.duration_ms must be positive, got %d", c.Animation.DurationMS)
	check(c.Log.Capacity >= 0, "log.capacity must not be negative, got %d", c.Log.Capacity)
	check(len(c.Seed) > 0, "seed must list at least one block")
	check(c.Grid.CellSize > 0, "grid.cell_size must be positive, got %v", c.Grid.CellSize)
	for name, v := range map[string]float32{
		"style.fill_opacity":    c.Style.FillOpacity,
		"style.stroke_opacity":  c.Style.StrokeOpacity,
		"style.edit_fill_ratio": c.Style.EditFillRatio,
		"style.preview_ratio":   c.Style.PreviewRatio,
	} {
		check(v >= 0 && v <= 1, "%s must be in [0,1], got %v", name, v)
	}
	for name, curve := range map[string][]float32{
		"animation.entrance_curve": c.Animation.EntranceCurve,
		"animation.switch_curve":   c.Animation.SwitchCurve,
		"animation.fill_in_curve":  c.Animation.FillInCurve,
		"animation.fill_out_curve": c.Animation.FillOutCurve,
	} {
		check(len(curve) == 4, "%s needs 4 control values, got %d", name, len(curve))
	}
	_, ok := voxel.ParseInsertMode(c.Edit.InsertMode)
	check(ok, "edit.insert_mode must be preview or animated, got %q", c.Edit.InsertMode)
	return errors.Join(errs...)
}

// Curve is a timing curve in the config file: either a preset name (linear, ease, ease-in, ease-out,
// ease-in-out, drift) or four cubic-Bézier control values. It is always written back as values.
type Curve []float32

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *Curve) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		preset, ok := easing.ByName(value.Value)
		if !ok {
			return fmt.Errorf("%w: unknown curve %q", ErrInvalidConfig, value.Value)
		}
		*c = preset.Points()
		return nil
	}
	var points []float32
	if err := value.Decode(&points); err != nil {
		return err
	}
	*c = points
	return nil
}

func triples(coords []voxel.GridCoord) [][3]int {
	out := make([][3]int, len(coords))
	for i, c := range coords {
		out[i] = [3]int{c.X, c.Y, c.Z}
	}
	return out
}
