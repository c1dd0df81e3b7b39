// Package config holds the application settings shared by the command line
// tools, the desktop viewers and the preview server.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// DefaultPath is where settings are read from when no path is given
const DefaultPath = "fenster.toml"

// Settings configures the application
type Settings struct {
	Fenster struct {
		LogLevel  string `toml:"log_level"` // debug, info, warn or error
		SentryDsn string `toml:"sentry_dsn"`
		Catalog   string `toml:"catalog"` // optional catalog file
	} `toml:"fenster"`

	Window struct {
		Width  int `toml:"width"`
		Height int `toml:"height"`
		FPS    int `toml:"fps"`
	} `toml:"window"`

	Animation struct {
		Duration Duration `toml:"duration"`
	} `toml:"animation"`

	Camera struct {
		AutoRotate      bool    `toml:"auto_rotate"`
		AutoRotateStep  float64 `toml:"auto_rotate_step"` // degrees per frame
		DragSensitivity float64 `toml:"drag_sensitivity"` // degrees per pixel
		FOV             float64 `toml:"fov"`              // degrees
	} `toml:"camera"`

	Server struct {
		Address     string `toml:"address"`
		ImageWidth  int    `toml:"image_width"`
		ImageHeight int    `toml:"image_height"`
	} `toml:"server"`
}

// Duration is a time.Duration written as a string like "1.2s"
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", text, err)
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// DefaultSettings returns settings with prefilled default values
func DefaultSettings() Settings {
	s := Settings{}

	s.Fenster.LogLevel = "info"

	s.Window.Width = 1280
	s.Window.Height = 800
	s.Window.FPS = 60

	s.Animation.Duration = Duration{1200 * time.Millisecond}

	s.Camera.AutoRotate = false
	s.Camera.AutoRotateStep = 0.5
	s.Camera.DragSensitivity = 0.5
	s.Camera.FOV = 45

	s.Server.Address = ":8080"
	s.Server.ImageWidth = 800
	s.Server.ImageHeight = 600

	return s
}

// Validate reports settings the application cannot run with
func (s Settings) Validate() error {
	if _, err := ParseLogLevel(s.Fenster.LogLevel); err != nil {
		return err
	}
	if s.Window.Width <= 0 || s.Window.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", s.Window.Width, s.Window.Height)
	}
	if s.Window.FPS <= 0 {
		return fmt.Errorf("invalid fps %d", s.Window.FPS)
	}
	if s.Animation.Duration.Duration < 0 {
		return fmt.Errorf("invalid animation duration %s", s.Animation.Duration)
	}
	if s.Camera.FOV <= 0 || s.Camera.FOV >= 180 {
		return fmt.Errorf("invalid field of view %g", s.Camera.FOV)
	}
	if s.Server.ImageWidth <= 0 || s.Server.ImageHeight <= 0 {
		return fmt.Errorf("invalid image size %dx%d", s.Server.ImageWidth, s.Server.ImageHeight)
	}
	return nil
}

// FrameInterval is the time between two frames at the configured rate
func (s Settings) FrameInterval() time.Duration {
	return time.Second / time.Duration(s.Window.FPS)
}

// ParseLogLevel returns the slog.Level for a level name
func ParseLogLevel(level string) (slog.Level, error) {
	switch level {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unrecognized log level: %q", level)
	}
}

// NewLogger creates a text logger on stderr at the configured level
func (s Settings) NewLogger() (*slog.Logger, error) {
	level, err := ParseLogLevel(s.Fenster.LogLevel)
	if err != nil {
		return nil, err
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})), nil
}

// Load returns the defaults when path is empty and Read(path) otherwise
func Load(path string) (Settings, error) {
	if path == "" {
		return DefaultSettings(), nil
	}
	return Read(path)
}

// Read loads settings from path. A missing file is created with the
// default values. Keys absent from the file keep their defaults.
func Read(path string) (Settings, error) {
	if path == "" {
		path = DefaultPath
	}

	s := DefaultSettings()
	_, err := toml.DecodeFile(path, &s)
	if errors.Is(err, fs.ErrNotExist) {
		if err := Write(path, s); err != nil {
			return Settings{}, err
		}
		return s, nil
	}
	if err != nil {
		return Settings{}, fmt.Errorf("failed to read settings %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, fmt.Errorf("invalid settings %s: %w", path, err)
	}
	return s, nil
}

// Write stores settings as TOML, creating parent directories
func Write(path string, s Settings) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to write settings %s: %w", path, err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(s); err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	return nil
}
