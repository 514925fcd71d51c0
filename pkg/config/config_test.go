package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/sortviz/pkg/errors"
)

func TestDefault(t *testing.T) {
	c := Default()
	if err := c.Validate(); err != nil {
		t.Fatalf("Default().Validate() error: %v", err)
	}
	p := c.LayoutParams()
	if p.CenterX != 600 || p.TopY != 100 || p.HSpacing != 300 || p.VSpacing != 120 {
		t.Errorf("LayoutParams() = %+v, want center 600, top 100, spacing 300/120", p)
	}
	if got := c.Delay().Millis(); got != 50 {
		t.Errorf("Delay().Millis() = %d, want 50", got)
	}
	l := c.ViewportLimits()
	if l.ViewWidth != 1200 || l.Overscroll != 50 || l.BottomMargin != 100 {
		t.Errorf("ViewportLimits() = %+v", l)
	}
}

func TestLoadEmptyPath(t *testing.T) {
	c, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error: %v", err)
	}
	if c.Input.MaxValues != 64 {
		t.Errorf("MaxValues = %d, want 64", c.Input.MaxValues)
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sortviz.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadOverrides(t *testing.T) {
	path := writeConfig(t, `
[view]
width = 1600

[animation]
delay_ms = 200
max_delay_ms = 500
`)
	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if c.LayoutParams().CenterX != 800 {
		t.Errorf("CenterX = %v, want 800", c.LayoutParams().CenterX)
	}
	// Spacing follows the view width unless set explicitly.
	if c.Layout.HSpacing != 400 {
		t.Errorf("HSpacing = %v, want 400", c.Layout.HSpacing)
	}
	d := c.Delay()
	if d.Adjust(1000) != 500 {
		t.Errorf("delay not clamped to max_delay_ms")
	}
	if c.View.Height != 800 {
		t.Errorf("Height = %v, want default 800", c.View.Height)
	}
}

func TestLoadZeroDelay(t *testing.T) {
	tests := []struct {
		name string
		body string
		want int
	}{
		{name: "explicit zero", body: "[animation]\ndelay_ms = 0", want: 0},
		{name: "unset", body: "[animation]\nstep_ms = 25", want: 50},
		{name: "explicit value", body: "[animation]\ndelay_ms = 10", want: 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Load(writeConfig(t, tt.body))
			if err != nil {
				t.Fatalf("Load() error: %v", err)
			}
			if c.Animation.DelayMs != tt.want {
				t.Errorf("DelayMs = %d, want %d", c.Animation.DelayMs, tt.want)
			}
			if got := c.Delay().Millis(); got != tt.want {
				t.Errorf("Delay().Millis() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "syntax", body: "[view\nwidth = 1"},
		{name: "unknown key", body: "[view]\ndepth = 3"},
		{name: "negative width", body: "[view]\nwidth = -5"},
		{name: "delay over max", body: "[animation]\ndelay_ms = 2000"},
		{name: "negative max values", body: "[input]\nmax_values = -1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			if !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("Load() error = %v, want INVALID_CONFIG", err)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("Load(missing) error = %v, want INVALID_CONFIG", err)
	}
}
