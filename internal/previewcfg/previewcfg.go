// Package previewcfg persists the preview tool's preferences. A missing or
// unreadable file silently yields defaults; nothing is written until Save.
package previewcfg

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Path is the preferences file, relative to the process working directory.
const Path = "config/preview.json"

// Prefs holds the preview preferences persisted across runs.
type Prefs struct {
	ShowFPS      bool   `json:"show_fps"`
	ShowMemAlloc bool   `json:"show_memalloc"`
	GridVisible  bool   `json:"grid_visible"`
	Mode         string `json:"mode,omitempty"`     // "mesh" or "voxel"
	MapSide      int    `json:"map_side,omitempty"` // surface map resolution
}

// Default returns the preferences used when no file exists.
func Default() Prefs {
	return Prefs{
		ShowFPS:     true,
		GridVisible: true,
		Mode:        "mesh",
	}
}

// Load reads preferences from the config file. Missing or invalid files
// return Default() without error and without creating a file.
func Load() (Prefs, error) {
	data, err := os.ReadFile(Path)
	if err != nil {
		return Default(), nil
	}
	var p Prefs
	if err := json.Unmarshal(data, &p); err != nil {
		return Default(), nil
	}
	return p, nil
}

// Save writes preferences, creating the config directory if needed.
func Save(p Prefs) error {
	if err := os.MkdirAll(filepath.Dir(Path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(p, "", "\t")
	if err != nil {
		return err
	}
	return os.WriteFile(Path, data, 0644)
}
