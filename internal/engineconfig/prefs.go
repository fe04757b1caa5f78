package engineconfig

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// PrefsPath is the engine preferences file, relative to the process working directory.
const PrefsPath = "config/prefs.yaml"

// EnginePrefs holds engine-only preferences (debug overlays). Persisted across runs.
// Lab settings live in Config.
type EnginePrefs struct {
	ShowFPS   bool `yaml:"show_fps"`
	ShowStats bool `yaml:"show_stats"`
}

// DefaultPrefs returns default engine preferences (debug overlays off).
func DefaultPrefs() EnginePrefs {
	return EnginePrefs{}
}

// LoadPrefs reads engine preferences from path. If the file is missing or invalid,
// returns DefaultPrefs() and does not create a file.
func LoadPrefs(path string) (EnginePrefs, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultPrefs(), nil
	}
	p := DefaultPrefs()
	if err := yaml.Unmarshal(data, &p); err != nil {
		return DefaultPrefs(), nil
	}
	return p, nil
}

// SavePrefs writes engine preferences to path, creating the config directory if needed.
func SavePrefs(path string, p EnginePrefs) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(p)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
