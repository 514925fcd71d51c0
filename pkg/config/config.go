// Package config loads sortviz settings from a TOML file.
//
// Every field has a default, so an empty or missing file yields the stock
// 1200x800 canvas with 50ms frames:
//
//	[view]
//	width = 1200
//	height = 800
//
//	[layout]
//	top_y = 100
//	h_spacing = 300
//	v_spacing = 120
//
//	[animation]
//	delay_ms = 50
//	hold_extra_ms = 50
//
//	[viewport]
//	overscroll = 50
//
//	[input]
//	max_values = 64
package config

import (
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/sortviz/pkg/anim"
	"github.com/matzehuels/sortviz/pkg/calltree"
	"github.com/matzehuels/sortviz/pkg/errors"
	"github.com/matzehuels/sortviz/pkg/sequence"
	"github.com/matzehuels/sortviz/pkg/viewport"
)

// Config holds all settings.
type Config struct {
	View      ViewConfig      `toml:"view"`
	Layout    LayoutConfig    `toml:"layout"`
	Animation AnimationConfig `toml:"animation"`
	Viewport  ViewportConfig  `toml:"viewport"`
	Input     InputConfig     `toml:"input"`
}

// ViewConfig is the size of the logical canvas window.
type ViewConfig struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

// LayoutConfig spaces the call tree.
type LayoutConfig struct {
	TopY       float64 `toml:"top_y"`
	HSpacing   float64 `toml:"h_spacing"`
	VSpacing   float64 `toml:"v_spacing"`
	BoxSize    float64 `toml:"box_size"`
	BoxGap     float64 `toml:"box_gap"`
	Padding    float64 `toml:"padding"`
	NodeHeight float64 `toml:"node_height"`
}

// AnimationConfig paces frames.
type AnimationConfig struct {
	DelayMs     int `toml:"delay_ms"`
	StepMs      int `toml:"step_ms"`
	MaxDelayMs  int `toml:"max_delay_ms"`
	HoldExtraMs int `toml:"hold_extra_ms"`

	// delaySet records that delay_ms appeared in the file, so an explicit
	// 0 survives SetDefaults.
	delaySet bool
}

// ViewportConfig bounds panning and scrolling.
type ViewportConfig struct {
	Overscroll   float64 `toml:"overscroll"`
	BottomMargin float64 `toml:"bottom_margin"`
	ScrollStep   float64 `toml:"scroll_step"`
}

// InputConfig limits user-entered sequences.
type InputConfig struct {
	MaxValues int `toml:"max_values"`
}

// Default returns a config with every default applied.
func Default() *Config {
	c := &Config{}
	c.SetDefaults()
	return c
}

// Load reads the TOML file at path over the defaults. An empty path
// returns the defaults. Unknown keys are rejected.
func Load(path string) (*Config, error) {
	c := &Config{}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read %s", path)
		}
		if err := Decode(data, c); err != nil {
			return nil, err
		}
	}
	c.SetDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Decode parses TOML data into c without applying defaults.
func Decode(data []byte, c *Config) error {
	md, err := toml.Decode(string(data), c)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "unknown config key %q", undecoded[0].String())
	}
	c.Animation.delaySet = md.IsDefined("animation", "delay_ms")
	return nil
}

// SetDefaults fills every zero field with its default. The horizontal
// spacing defaults to a quarter of the view width. A delay_ms decoded from
// a file is kept even when it is 0.
func (c *Config) SetDefaults() {
	setDefault(&c.View.Width, viewport.DefaultLimits.ViewWidth)
	setDefault(&c.View.Height, viewport.DefaultLimits.ViewHeight)

	setDefault(&c.Layout.TopY, 100)
	setDefault(&c.Layout.HSpacing, c.View.Width/4)
	setDefault(&c.Layout.VSpacing, 120)
	setDefault(&c.Layout.BoxSize, calltree.DefaultMetrics.BoxSize)
	setDefault(&c.Layout.BoxGap, calltree.DefaultMetrics.BoxGap)
	setDefault(&c.Layout.Padding, calltree.DefaultMetrics.Padding)
	setDefault(&c.Layout.NodeHeight, calltree.DefaultMetrics.NodeHeight)

	if !c.Animation.delaySet {
		setDefault(&c.Animation.DelayMs, anim.DefaultDelayMs)
	}
	setDefault(&c.Animation.StepMs, anim.DefaultStepMs)
	setDefault(&c.Animation.MaxDelayMs, anim.MaxDelayMs)
	setDefault(&c.Animation.HoldExtraMs, anim.DefaultHoldMs)

	setDefault(&c.Viewport.Overscroll, viewport.DefaultLimits.Overscroll)
	setDefault(&c.Viewport.BottomMargin, viewport.DefaultLimits.BottomMargin)
	setDefault(&c.Viewport.ScrollStep, viewport.DefaultLimits.ScrollStep)

	setDefault(&c.Input.MaxValues, sequence.DefaultMaxValues)
}

func setDefault[T int | float64](field *T, def T) {
	if *field == 0 {
		*field = def
	}
}

// Validate rejects settings no canvas can honour.
func (c *Config) Validate() error {
	if c.View.Width <= 0 || c.View.Height <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "view size must be positive, got %vx%v", c.View.Width, c.View.Height)
	}
	if c.Layout.HSpacing < 0 || c.Layout.VSpacing < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "layout spacing must not be negative")
	}
	if c.Layout.BoxSize <= 0 || c.Layout.NodeHeight <= 0 || c.Layout.BoxGap < 0 || c.Layout.Padding < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "layout box metrics out of range")
	}
	a := c.Animation
	if a.MaxDelayMs <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "animation.max_delay_ms must be positive, got %d", a.MaxDelayMs)
	}
	if a.DelayMs < 0 || a.DelayMs > a.MaxDelayMs {
		return errors.New(errors.ErrCodeInvalidConfig, "animation.delay_ms must be within [0, %d], got %d", a.MaxDelayMs, a.DelayMs)
	}
	if a.StepMs <= 0 || a.HoldExtraMs < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "animation steps out of range")
	}
	if c.Viewport.Overscroll < 0 || c.Viewport.BottomMargin < 0 || c.Viewport.ScrollStep <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "viewport allowances out of range")
	}
	if c.Input.MaxValues <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "input.max_values must be positive, got %d", c.Input.MaxValues)
	}
	return nil
}

// LayoutParams returns the tree layout parameters. The root is centered
// horizontally in the view.
func (c *Config) LayoutParams() calltree.Params {
	return calltree.Params{
		CenterX:  c.View.Width / 2,
		TopY:     c.Layout.TopY,
		HSpacing: c.Layout.HSpacing,
		VSpacing: c.Layout.VSpacing,
		Metrics: calltree.Metrics{
			BoxSize:    c.Layout.BoxSize,
			BoxGap:     c.Layout.BoxGap,
			Padding:    c.Layout.Padding,
			NodeHeight: c.Layout.NodeHeight,
		},
	}
}

// ViewportLimits returns the viewport clamping limits.
func (c *Config) ViewportLimits() viewport.Limits {
	return viewport.Limits{
		ViewWidth:    c.View.Width,
		ViewHeight:   c.View.Height,
		Overscroll:   c.Viewport.Overscroll,
		BottomMargin: c.Viewport.BottomMargin,
		ScrollStep:   c.Viewport.ScrollStep,
	}
}

// Delay returns the initial frame delay.
func (c *Config) Delay() *anim.Delay {
	return anim.NewDelay(c.Animation.DelayMs, c.Animation.MaxDelayMs)
}

// HoldExtra returns the extra time added to held frames.
func (c *Config) HoldExtra() time.Duration {
	return time.Duration(c.Animation.HoldExtraMs) * time.Millisecond
}
