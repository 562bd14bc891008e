package app

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Flags are the on/off window and context options.
type Flags struct {
	Fullscreen    bool `yaml:"fullscreen"`
	VSync         bool `yaml:"vsync"`
	CursorVisible bool `yaml:"cursor_visible"`
	Stereo        bool `yaml:"stereo"`
	// Debug requests a debug context and logs its messages.
	Debug  bool `yaml:"debug"`
	Robust bool `yaml:"robust"`
}

// Config describes the window a demo wants. The host owns the current copy
// and keeps Width and Height up to date as the window is resized.
type Config struct {
	Title        string `yaml:"title"`
	Width        int    `yaml:"width"`
	Height       int    `yaml:"height"`
	MajorVersion int    `yaml:"major_version"`
	MinorVersion int    `yaml:"minor_version"`
	Samples      int    `yaml:"samples"`
	// MaxFPS caps the frame rate when positive.
	MaxFPS      int   `yaml:"max_fps"`
	ShowOverlay bool  `yaml:"show_overlay"`
	Flags       Flags `yaml:"flags"`
}

// DefaultConfig returns an 800x600 windowed 4.5 core context.
func DefaultConfig() Config {
	return Config{
		Title:        "OpenGL SuperBible Example",
		Width:        800,
		Height:       600,
		MajorVersion: 4,
		MinorVersion: 5,
		Flags:        Flags{CursorVisible: true},
	}
}

// Validate rejects configurations no window can satisfy.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Width, c.Height)
	}
	if c.MajorVersion < 3 || (c.MajorVersion == 3 && c.MinorVersion < 2) {
		return fmt.Errorf("core profile needs OpenGL 3.2 or later, got %d.%d", c.MajorVersion, c.MinorVersion)
	}
	if c.Samples < 0 || c.MaxFPS < 0 {
		return fmt.Errorf("samples and max_fps must not be negative")
	}
	return nil
}

// ApplyOverrides decodes a YAML document over cfg. Keys that are absent
// keep their values; unknown keys are an error.
func ApplyOverrides(cfg *Config, r io.Reader) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode config overrides: %w", err)
	}
	return nil
}

// ConfigError reports a window or context that could not be created.
type ConfigError struct {
	Err error
}

func (e *ConfigError) Error() string { return fmt.Sprintf("could not create window: %v", e.Err) }
func (e *ConfigError) Unwrap() error { return e.Err }
