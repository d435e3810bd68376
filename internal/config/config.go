// Package config loads the window settings from config/window.yaml.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/jinzhu/copier"
	"gopkg.in/yaml.v3"

	"nsac/internal/logger"
	"nsac/internal/window"
)

// DefaultPath is the config file, relative to the process working directory.
const DefaultPath = "config/window.yaml"

// Environment overrides, read after .env has been loaded.
const (
	EnvConfig  = "NSAC_CONFIG"
	EnvBackend = "NSAC_BACKEND"
)

const (
	BackendRaylib   = "raylib"
	BackendEbiten   = "ebiten"
	BackendTerminal = "terminal"
	BackendHeadless = "headless"
)

// Backends lists the accepted values of Config.Backend.
var Backends = []string{BackendRaylib, BackendEbiten, BackendTerminal, BackendHeadless}

// Validation errors, matched with errors.Is.
var (
	ErrUnknownBackend = errors.New("config: unknown backend")
	ErrInvalid        = errors.New("config: invalid value")
)

// Headless controls the in-memory display.
type Headless struct {
	// Frames is how many frames run before a close event is injected.
	Frames   int    `yaml:"frames"`
	Snapshot string `yaml:"snapshot,omitempty"`
}

// Config holds everything the entry point needs to build a display and a loop.
type Config struct {
	Title      string   `yaml:"title"`
	Width      int      `yaml:"width"`
	Height     int      `yaml:"height"`
	Color      Color    `yaml:"color" copier:"-"`
	Backend    string   `yaml:"backend"`
	TargetFPS  int      `yaml:"target_fps"`
	ShowFPS    bool     `yaml:"show_fps"`
	ShowMem    bool     `yaml:"show_mem"`
	ShowFrames bool     `yaml:"show_frames"`
	LogPath    string   `yaml:"log_path"`
	Headless   Headless `yaml:"headless" copier:"-"`
}

// file is Config as decoded from disk. Color is a pointer because every
// channel value, including all zeros, is a legitimate color.
type file struct {
	Title      string   `yaml:"title"`
	Width      int      `yaml:"width"`
	Height     int      `yaml:"height"`
	Color      *Color   `yaml:"color" copier:"-"`
	Backend    string   `yaml:"backend"`
	TargetFPS  int      `yaml:"target_fps"`
	ShowFPS    bool     `yaml:"show_fps"`
	ShowMem    bool     `yaml:"show_mem"`
	ShowFrames bool     `yaml:"show_frames"`
	LogPath    string   `yaml:"log_path"`
	Headless   Headless `yaml:"headless" copier:"-"`
}

// Default is a 900x500 white window with no frame cap.
func Default() Config {
	return Config{
		Title:     window.DefaultTitle,
		Width:     window.DefaultWidth,
		Height:    window.DefaultHeight,
		Color:     Color(window.White),
		Backend:   BackendRaylib,
		TargetFPS: 0,
		LogPath:   logger.DefaultPath,
		Headless:  Headless{Frames: 1},
	}
}

// Load reads path and overlays the values it sets onto Default(). A missing
// file yields Default(); a malformed one is an error.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %q: %w", path, err)
	}
	if err := cfg.Merge(data); err != nil {
		return cfg, fmt.Errorf("config %q: %w", path, err)
	}
	return cfg, nil
}

// Merge decodes YAML and copies every non-empty field over c. Boolean fields
// can only be switched on this way.
func (c *Config) Merge(data []byte) error {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	if err := copier.CopyWithOption(c, &f, copier.Option{IgnoreEmpty: true}); err != nil {
		return fmt.Errorf("merge: %w", err)
	}
	if f.Color != nil {
		c.Color = *f.Color
	}
	if f.Headless.Frames != 0 {
		c.Headless.Frames = f.Headless.Frames
	}
	if f.Headless.Snapshot != "" {
		c.Headless.Snapshot = f.Headless.Snapshot
	}
	return nil
}

// ApplyEnv applies environment overrides using lookup (os.LookupEnv in main).
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvBackend); ok && v != "" {
		c.Backend = v
	}
}

// Validate rejects settings no display can honor.
func (c Config) Validate() error {
	if !slices.Contains(Backends, c.Backend) {
		return fmt.Errorf("%w: %q (want one of %v)", ErrUnknownBackend, c.Backend, Backends)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: size %dx%d", ErrInvalid, c.Width, c.Height)
	}
	if c.TargetFPS < 0 {
		return fmt.Errorf("%w: target_fps %d", ErrInvalid, c.TargetFPS)
	}
	if c.Headless.Frames < 1 {
		return fmt.Errorf("%w: headless.frames %d", ErrInvalid, c.Headless.Frames)
	}
	return nil
}
