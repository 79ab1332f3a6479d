package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/jinzhu/copier"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"spinning-cube/internal/logger"
)

// DefaultPath is the prefs file read when no -config flag is given, relative to the working directory.
const DefaultPath = "config/cube.yaml"

// Desktop backends.
const (
	BackendRaylib = "raylib"
	BackendGLFW   = "glfw"
)

// Prefs holds host preferences: which window backend to open, its size and pacing,
// debug overlays, log location and optional shader files. Geometry and camera are fixed.
type Prefs struct {
	Backend      string `yaml:"backend" toml:"backend" json:"backend"`
	Width        int    `yaml:"width" toml:"width" json:"width"`
	Height       int    `yaml:"height" toml:"height" json:"height"`
	Title        string `yaml:"title" toml:"title" json:"title"`
	TargetFPS    int    `yaml:"target_fps" toml:"target_fps" json:"target_fps"`
	VSync        bool   `yaml:"vsync" toml:"vsync" json:"vsync"`
	ShowFPS      bool   `yaml:"show_fps" toml:"show_fps" json:"show_fps"`
	ShowMemAlloc bool   `yaml:"show_memalloc" toml:"show_memalloc" json:"show_memalloc"`
	LogPath      string `yaml:"log_path" toml:"log_path" json:"log_path"`
	// VertexShader and FragmentShader replace the embedded GLSL when set.
	VertexShader   string `yaml:"vertex_shader,omitempty" toml:"vertex_shader,omitempty" json:"vertex_shader,omitempty"`
	FragmentShader string `yaml:"fragment_shader,omitempty" toml:"fragment_shader,omitempty" json:"fragment_shader,omitempty"`
	// Canvas is the CSS selector of the drawing surface in the browser build.
	Canvas string `yaml:"canvas" toml:"canvas" json:"canvas"`
}

// Default returns the prefs used when no file exists: an 800x600 raylib window at 60 FPS.
func Default() Prefs {
	return Prefs{
		Backend:   BackendRaylib,
		Width:     800,
		Height:    600,
		Title:     "spinning cube",
		TargetFPS: 60,
		VSync:     true,
		LogPath:   logger.DefaultPath,
		Canvas:    "#glcanvas",
	}
}

// Validate reports the first unusable setting.
func (p Prefs) Validate() error {
	switch p.Backend {
	case BackendRaylib, BackendGLFW:
	default:
		return fmt.Errorf("config: unknown backend %q (want %s or %s)", p.Backend, BackendRaylib, BackendGLFW)
	}
	if p.Backend == BackendGLFW && !glfwBuilt {
		return fmt.Errorf("config: backend %s needs a binary built with -tags glfw", BackendGLFW)
	}
	if p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf("config: window size %dx%d must be positive", p.Width, p.Height)
	}
	if p.TargetFPS < 0 {
		return fmt.Errorf("config: target_fps %d must not be negative", p.TargetFPS)
	}
	return nil
}

type format int

const (
	formatYAML format = iota
	formatTOML
	formatJSON
)

func formatOf(path string) (format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return formatYAML, nil
	case ".toml":
		return formatTOML, nil
	case ".json":
		return formatJSON, nil
	}
	return 0, fmt.Errorf("config: unsupported file type %q", filepath.Ext(path))
}

// Load reads prefs from path. The format follows the extension (.yaml, .yml, .toml, .json).
// Keys absent from the file keep their Default values. A missing file is not an error.
func Load(path string) (Prefs, error) {
	p := Default()
	f, err := formatOf(path)
	if err != nil {
		return p, err
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return p, nil
	}
	if err != nil {
		return p, fmt.Errorf("config: %w", err)
	}
	switch f {
	case formatYAML:
		err = yaml.Unmarshal(data, &p)
	case formatTOML:
		err = toml.Unmarshal(data, &p)
	case formatJSON:
		err = json.Unmarshal(data, &p)
	}
	if err != nil {
		return Default(), fmt.Errorf("config: %s: %w", path, err)
	}
	return p, nil
}

// Save writes p to path in the format its extension names, creating the directory if needed.
func Save(path string, p Prefs) error {
	f, err := formatOf(path)
	if err != nil {
		return err
	}
	var data []byte
	switch f {
	case formatYAML:
		data, err = yaml.Marshal(p)
	case formatTOML:
		data, err = toml.Marshal(p)
	case formatJSON:
		data, err = json.MarshalIndent(p, "", "\t")
	}
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// Merge copies every non-zero field of override onto dst. Zero values (empty strings,
// 0, false) leave dst unchanged, so a partially filled override only touches what it sets.
func Merge(dst *Prefs, override Prefs) error {
	if err := copier.CopyWithOption(dst, &override, copier.Option{IgnoreEmpty: true}); err != nil {
		return fmt.Errorf("config: merge: %w", err)
	}
	return nil
}
