// Package config loads the renderer settings from a config file, the
// environment and command line flags through viper.
package config

import (
	"math"

	errorsmod "cosmossdk.io/errors"
	"github.com/spf13/viper"

	"wirecube/internal/frame"
)

const codespace = "config"

var (
	ErrInvalidConfig = errorsmod.Register(codespace, 2, "invalid configuration")
	ErrUnknownColor  = errorsmod.Register(codespace, 3, "unknown color")
)

// EnvPrefix is prepended to environment variable names, e.g. WIRECUBE_WIDTH
const EnvPrefix = "WIRECUBE"

const (
	RotationXDuplicateZ = "duplicate-z"
	RotationXAxis       = "x-axis"
)

type Config struct {
	Width      int     `mapstructure:"width"`
	Height     int     `mapstructure:"height"`
	Title      string  `mapstructure:"title"`
	AngleStep  float64 `mapstructure:"angle_step"`
	Scale      float64 `mapstructure:"scale"`
	PointSize  float64 `mapstructure:"point_size"`
	Background string  `mapstructure:"background"`
	Foreground string  `mapstructure:"foreground"`
	RotationX  string  `mapstructure:"rotation_x"`
	Antialias  bool    `mapstructure:"antialias"`
	VSync      bool    `mapstructure:"vsync"`

	// headless rendering
	Frames     int `mapstructure:"frames"`
	FrameDelay int `mapstructure:"frame_delay"` // 1/100 s, GIF only
}

// Default returns the built-in settings: 800x600, white on black, step 0.01
func Default() Config {
	return Config{
		Width:      800,
		Height:     600,
		Title:      "Wirecube",
		AngleStep:  0.01,
		Scale:      100,
		PointSize:  2,
		Background: "#000",
		Foreground: "#fff",
		RotationX:  RotationXDuplicateZ,
		Antialias:  false,
		VSync:      true,
		Frames:     360,
		FrameDelay: 2,
	}
}

// SetDefaults registers every default on v so that config files, env and
// flags only need to override what they change.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("width", d.Width)
	v.SetDefault("height", d.Height)
	v.SetDefault("title", d.Title)
	v.SetDefault("angle_step", d.AngleStep)
	v.SetDefault("scale", d.Scale)
	v.SetDefault("point_size", d.PointSize)
	v.SetDefault("background", d.Background)
	v.SetDefault("foreground", d.Foreground)
	v.SetDefault("rotation_x", d.RotationX)
	v.SetDefault("antialias", d.Antialias)
	v.SetDefault("vsync", d.VSync)
	v.SetDefault("frames", d.Frames)
	v.SetDefault("frame_delay", d.FrameDelay)
}

// Load reads the settings held by v and validates them
func Load(v *viper.Viper) (Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, errorsmod.Wrapf(ErrInvalidConfig, "decode: %v", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate rejects settings the updater cannot run with
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errorsmod.Wrapf(ErrInvalidConfig, "surface size %dx%d", c.Width, c.Height)
	}
	for name, f := range map[string]float64{
		"angle_step": c.AngleStep,
		"scale":      c.Scale,
		"point_size": c.PointSize,
	} {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return errorsmod.Wrapf(ErrInvalidConfig, "%s must be finite, got %v", name, f)
		}
	}
	if c.AngleStep <= 0 {
		return errorsmod.Wrapf(ErrInvalidConfig, "angle_step %v must be positive", c.AngleStep)
	}
	if c.PointSize < 0 {
		return errorsmod.Wrapf(ErrInvalidConfig, "point_size %v is negative", c.PointSize)
	}
	if c.RotationX != RotationXDuplicateZ && c.RotationX != RotationXAxis {
		return errorsmod.Wrapf(ErrInvalidConfig, "rotation_x %q, want %q or %q", c.RotationX, RotationXDuplicateZ, RotationXAxis)
	}
	if c.Frames < 0 || c.FrameDelay < 0 {
		return errorsmod.Wrapf(ErrInvalidConfig, "frames %d, frame_delay %d", c.Frames, c.FrameDelay)
	}
	return nil
}

// ValidateRender checks the settings the headless render needs on top of Validate
func (c Config) ValidateRender() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.Frames == 0 {
		return errorsmod.Wrap(ErrInvalidConfig, "render needs at least one frame")
	}
	return nil
}

// Options converts the settings into updater options
func (c Config) Options() (frame.Options, error) {
	bg, err := ParseColor(c.Background)
	if err != nil {
		return frame.Options{}, errorsmod.Wrap(err, "background")
	}
	fg, err := ParseColor(c.Foreground)
	if err != nil {
		return frame.Options{}, errorsmod.Wrap(err, "foreground")
	}

	opts := frame.Options{
		Width:      float64(c.Width),
		Height:     float64(c.Height),
		AngleStep:  c.AngleStep,
		Scale:      c.Scale,
		PointSize:  c.PointSize,
		Background: bg,
		Foreground: fg,
		RotationX:  frame.RotationXDuplicateZ,
	}
	if c.RotationX == RotationXAxis {
		opts.RotationX = frame.RotationXAxis
	}
	return opts, nil
}
